package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dft/dsp/sequence"
)

// inputFlags are the sequence inputs shared by the operation commands.
type inputFlags struct {
	preset       string
	second       string
	secondPreset string
	size         int
}

func (f *inputFlags) register(cmd *cobra.Command, withSecond bool) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "use a named preset as the input sequence")
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "N: transform size, period or block size")
	if withSecond {
		cmd.Flags().StringVarP(&f.second, "second", "H", "", "second sequence h (impulse response)")
		cmd.Flags().StringVar(&f.secondPreset, "second-preset", "", "use a named preset as h")
	}
}

// primary resolves the input sequence: positional text, then --preset,
// then the built-in default.
func (f *inputFlags) primary(args []string) (sequence.Sequence, error) {
	return resolveSequence(args, f.preset, sequence.Default)
}

// secondary resolves h: --second, then --second-preset, then the default.
func (f *inputFlags) secondary() (sequence.Sequence, error) {
	var args []string
	if f.second != "" {
		args = []string{f.second}
	}
	return resolveSequence(args, f.secondPreset, sequence.DefaultSecond)
}

func resolveSequence(args []string, preset string, def func() sequence.Sequence) (sequence.Sequence, error) {
	switch {
	case len(args) > 0 && preset != "":
		return nil, fmt.Errorf("give either a sequence or --preset, not both")
	case len(args) > 0:
		s, err := sequence.Parse(strings.Join(args, ","))
		if err != nil {
			return nil, err
		}
		if len(s) == 0 {
			return nil, fmt.Errorf("empty input sequence")
		}
		return s, nil
	case preset != "":
		return sequence.Preset(preset)
	default:
		return def(), nil
	}
}

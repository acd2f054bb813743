package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/dft"
	"github.com/cwbudde/algo-dft/dsp/engine"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/signal"
)

var titleCaser = cases.Title(language.English)

// newOperationCmd builds the subcommand for one registry operation.
func (a *app) newOperationCmd(op engine.Operation) *cobra.Command {
	var (
		in      inputFlags
		k       int
		sample  int
		inverse bool
		padded  bool
	)

	cmd := &cobra.Command{
		Use:   op.ID + " [sequence]",
		Short: op.FullName,
		Long:  fmt.Sprintf("%s: %s.\n\n  %s", op.FullName, op.Description, op.Formula),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := engine.Request{Op: op.ID, Size: in.size, K: k, Sample: sample, Inverse: inverse}
			if padded {
				req.Options = append(req.Options, core.WithPaddedBins())
			}

			if !op.NeedsK {
				x, err := in.primary(args)
				if err != nil {
					return err
				}
				req.X = x
			} else if len(args) > 0 {
				return fmt.Errorf("%s takes no sequence", op.ID)
			}
			if op.NeedsSecond {
				h, err := in.secondary()
				if err != nil {
					return err
				}
				req.H = h
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			res, err := a.runner().Run(ctx, req)
			if err != nil {
				return err
			}
			return renderResult(a.out(cmd), a.cfg.Output, a.cfg.Precision, res)
		},
	}

	if op.NeedsK {
		cmd.Flags().IntVarP(&in.size, "size", "n", 0, "N: transform size")
		cmd.Flags().IntVarP(&k, "k", "k", 0, "frequency index k")
		cmd.Flags().IntVar(&sample, "sample", 0, "time index n")
		cmd.Flags().BoolVar(&inverse, "inverse", false, "use e^(+j2πkn/N)")
	} else {
		in.register(cmd, op.NeedsSecond)
	}
	if op.ID == engine.OpFFT {
		cmd.Flags().BoolVar(&padded, "padded", false, "for non power-of-two N, return the first N bins of the padded transform")
	}
	return cmd
}

func (a *app) newTermsCmd() *cobra.Command {
	var (
		in      inputFlags
		k       int
		inverse bool
	)
	cmd := &cobra.Command{
		Use:   "terms [sequence]",
		Short: "Show the per-sample products that make up one output bin",
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := in.primary(args)
			if err != nil {
				return err
			}
			opts := a.cfg.engineOptions()
			if in.size != 0 {
				opts = append(opts, core.WithSize(in.size))
			}
			b, err := dft.Terms(x, k, inverse, opts...)
			if err != nil {
				return err
			}
			return renderBreakdown(a.out(cmd), a.cfg.Output, a.cfg.Precision, b)
		},
	}
	in.register(cmd, false)
	cmd.Flags().IntVarP(&k, "k", "k", 0, "output bin")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "expand the IDFT bin instead")
	return cmd
}

func (a *app) newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops := engine.Operations()
			if ok, err := encode(a.out(cmd), a.cfg.Output, ops); ok {
				return err
			}

			tw := tabwriter.NewWriter(a.out(cmd), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "ID\tName\tInputs\tFormula\n"); err != nil {
				return fmt.Errorf("failed to write output header: %w", err)
			}
			for _, op := range ops {
				if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.ID, op.FullName, inputsLabel(op), op.Formula); err != nil {
					return fmt.Errorf("failed to write output row: %w", err)
				}
			}
			return tw.Flush()
		},
	}
}

func inputsLabel(op engine.Operation) string {
	var parts []string
	switch {
	case op.NeedsK:
		parts = append(parts, "k, n")
	case op.NeedsSecond:
		parts = append(parts, "two sequences")
	default:
		parts = append(parts, "sequence")
	}
	if op.NeedsSize {
		parts = append(parts, "N")
	}
	return titleCaser.String(strings.Join(parts, " + "))
}

func (a *app) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List preset sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := sequence.PresetNames()
			presets := make(map[string]string, len(names))
			for _, name := range names {
				presets[name], _ = sequence.PresetText(name)
			}
			if ok, err := encode(a.out(cmd), a.cfg.Output, presets); ok {
				return err
			}

			tw := tabwriter.NewWriter(a.out(cmd), 0, 0, 2, ' ', 0)
			for _, name := range names {
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", name, presets[name]); err != nil {
					return fmt.Errorf("failed to write output row: %w", err)
				}
			}
			return tw.Flush()
		},
	}
}

var generators = map[string]string{
	"impulse":     "1 at --pos, 0 elsewhere",
	"step":        "all ones",
	"exponential": "complex tone e^(+j2πkm/N) at bin --k",
	"noise":       "uniform complex noise seeded by --seed",
}

func generateHelp(kinds []string) string {
	var b strings.Builder
	b.WriteString("Print a test sequence in the input grammar, ready to pass to another command.\n\nGenerators:\n")
	for _, kind := range kinds {
		fmt.Fprintf(&b, "  %-12s %s\n", kind, generators[kind])
	}
	return b.String()
}

func (a *app) newGenerateCmd() *cobra.Command {
	var (
		n         int
		pos       int
		k         int
		seed      int64
		amplitude float64
	)

	kinds := make([]string, 0, len(generators))
	for kind := range generators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	cmd := &cobra.Command{
		Use:       "generate <" + strings.Join(kinds, "|") + ">",
		Short:     "Print a test sequence in the input grammar",
		Long:      generateHelp(kinds),
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				x   sequence.Sequence
				err error
			)
			switch args[0] {
			case "impulse":
				x, err = signal.Impulse(n, pos)
			case "step":
				x, err = signal.Step(n)
			case "exponential":
				x, err = signal.Exponential(k, n)
			case "noise":
				x, err = signal.NewGenerator(signal.WithSeed(seed)).Noise(amplitude, n)
			default:
				return fmt.Errorf("unknown generator %q (%s)", args[0], strings.Join(kinds, ", "))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out(cmd), sequence.Format(x, a.cfg.Precision))
			return err
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 8, "sequence length")
	cmd.Flags().IntVar(&pos, "pos", 0, "impulse position")
	cmd.Flags().IntVarP(&k, "k", "k", 1, "exponential bin")
	cmd.Flags().Int64Var(&seed, "seed", 1, "noise seed")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1, "noise amplitude")
	return cmd
}

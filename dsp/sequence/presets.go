package sequence

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned by Preset for names that are not registered.
var ErrUnknownPreset = errors.New("sequence: unknown preset")

var presets = map[string]string{
	"basic":   "(1,0), (0,-1), (2,3), (0,0)",
	"impulse": "(1,0), (0,0), (0,0), (0,0)",
	"step":    "(1,0), (1,0), (1,0), (1,0)",
	"complex": "(1,1), (2,-1), (0,2), (-1,0)",
}

// Preset returns a copy of the named sample sequence.
func Preset(name string) (Sequence, error) {
	text, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return MustParse(text), nil
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetText returns the source text of a preset.
func PresetText(name string) (string, bool) {
	text, ok := presets[name]
	return text, ok
}

// Default is the demo input sequence [(1,0), (0,-1), (2,3), (0,0)].
func Default() Sequence {
	return Sequence{1, -1i, 2 + 3i, 0}
}

// DefaultSecond is the demo second operand for convolutions, four ones.
func DefaultSecond() Sequence {
	return Sequence{1, 1, 1, 1}
}

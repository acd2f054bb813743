package sequence

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// Sequence is an ordered, 0-indexed list of complex samples. Position is the
// time or frequency index.
type Sequence []complex128

// FromReal builds a sequence with zero imaginary parts.
func FromReal(values []float64) Sequence {
	out := make(Sequence, len(values))
	for i, v := range values {
		out[i] = complex(v, 0)
	}
	return out
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Resize returns a new sequence of length n: samples beyond len(s) are zero,
// samples at or past n are dropped. s is left untouched.
func (s Sequence) Resize(n int) Sequence {
	return core.Resized(s, n)
}

// At returns s[i], or 0 when i is outside the sequence.
func (s Sequence) At(i int) complex128 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// Validate reports whether s can be fed to a transform: it must hold at least
// one sample and every sample must be finite.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: sequence must contain at least one sample", core.ErrValidation)
	}
	for i, c := range s {
		if !core.IsFinite(c) {
			return fmt.Errorf("%w: sample %d is not finite: %v", core.ErrValidation, i, c)
		}
	}
	return nil
}

package dft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// Twiddle is the evaluated rotation factor W_N^kn = e^(∓j2πkn/N).
type Twiddle struct {
	K         int     `json:"k" yaml:"k"`
	Sample    int     `json:"n" yaml:"n"`
	Size      int     `json:"N" yaml:"N"`
	Angle     float64 `json:"angle" yaml:"angle"`
	Re        float64 `json:"re" yaml:"re"`
	Im        float64 `json:"im" yaml:"im"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Phase     float64 `json:"phase" yaml:"phase"`
	Inverse   bool    `json:"inverse" yaml:"inverse"`
}

// Complex returns the rounded factor as a complex number.
func (t Twiddle) Complex() complex128 {
	return complex(t.Re, t.Im)
}

// TwiddleFactor evaluates W_N^kn for the forward transform, or its conjugate
// e^(+j2πkn/N) when inverse is set. Angle is exact radians; Re, Im and Phase
// (degrees) are rounded with the configured precision.
func TwiddleFactor(k, n, size int, inverse bool, opts ...core.Option) (Twiddle, error) {
	if size <= 0 {
		return Twiddle{}, fmt.Errorf("%w: N must be a positive integer, got %d", core.ErrInvalidSize, size)
	}
	cfg := core.ApplyOptions(opts...)

	angle := 2 * math.Pi * float64(k) * float64(n) / float64(size)
	if !inverse {
		angle = -angle
	}
	if angle == 0 {
		angle = 0
	}

	return Twiddle{
		K:         k,
		Sample:    n,
		Size:      size,
		Angle:     angle,
		Re:        cfg.Round(math.Cos(angle)),
		Im:        cfg.Round(math.Sin(angle)),
		Magnitude: 1,
		Phase:     cfg.Round(angle * 180 / math.Pi),
		Inverse:   inverse,
	}, nil
}

// roots returns e^(sign·j2πm/n) for m in [0, n). Since W_N^kn only depends
// on kn mod N, one table of n entries covers the whole N×N product space.
func roots(n int, sign float64) []complex128 {
	out := make([]complex128, n)
	step := sign * 2 * math.Pi / float64(n)
	for m := range out {
		s, c := math.Sincos(step * float64(m))
		out[m] = complex(c, s)
	}
	return out
}

// rootIndex maps the product k·m onto the root table, handling negative k.
func rootIndex(k, m, n int) int {
	idx := (k * m) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

package dft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

const (
	forward = -1.0
	inverse = 1.0
)

// DFT computes X[k] = Σ x[n]·e^(-j2πkn/N) for k in [0, N).
// N defaults to len(x); core.WithSize overrides it.
func DFT(x sequence.Sequence, opts ...core.Option) ([]spectrum.Record, error) {
	cfg := core.ApplyOptions(opts...)
	if err := x.Validate(); err != nil {
		return nil, err
	}
	n, err := cfg.ResolveSize(len(x))
	if err != nil {
		return nil, err
	}
	return spectrum.Records(direct(x, n, forward), opts...), nil
}

// IDFT computes x[n] = (1/N)·Σ X[k]·e^(+j2πkn/N) for n in [0, N).
// N defaults to len(X); core.WithSize overrides it.
func IDFT(X sequence.Sequence, opts ...core.Option) ([]spectrum.Record, error) {
	cfg := core.ApplyOptions(opts...)
	if err := X.Validate(); err != nil {
		return nil, err
	}
	n, err := cfg.ResolveSize(len(X))
	if err != nil {
		return nil, err
	}
	return spectrum.Records(scaledInverse(X, n), opts...), nil
}

// Transform is DFT without rounding: it returns the raw N-point spectrum.
func Transform(x sequence.Sequence, n int) ([]complex128, error) {
	if err := checkRaw(x, n); err != nil {
		return nil, err
	}
	return direct(x, n, forward), nil
}

// Inverse is IDFT without rounding. The 1/N scale is applied.
func Inverse(X sequence.Sequence, n int) ([]complex128, error) {
	if err := checkRaw(X, n); err != nil {
		return nil, err
	}
	return scaledInverse(X, n), nil
}

func checkRaw(x sequence.Sequence, n int) error {
	if err := x.Validate(); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%w: N must be a positive integer, got %d", core.ErrInvalidSize, n)
	}
	return nil
}

// direct evaluates the N-point sum with the given exponent sign. The input
// is read through At, which supplies the implicit zero padding.
func direct(x sequence.Sequence, n int, sign float64) []complex128 {
	w := roots(n, sign)
	limit := min(len(x), n)

	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for m := 0; m < limit; m++ {
			sum += x[m] * w[rootIndex(k, m, n)]
		}
		out[k] = sum
	}
	return out
}

func scaledInverse(X sequence.Sequence, n int) []complex128 {
	out := direct(X, n, inverse)
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

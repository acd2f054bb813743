package conv

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

// Circular computes the N-point circular convolution
//
//	y[n] = Σ x[k]·h[(n-k+N) mod N],  k in [0, N)
//
// N defaults to max(len(x), len(h)) and is set with core.WithSize. Both
// inputs are zero-padded or truncated to N.
func Circular(x, h sequence.Sequence, opts ...core.Option) ([]spectrum.Record, error) {
	cfg := core.ApplyOptions(opts...)
	if err := validatePair(x, h); err != nil {
		return nil, err
	}
	n, err := cfg.ResolveSize(max(len(x), len(h)))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	DirectCircularTo(out, x.Resize(n), h.Resize(n))
	return spectrum.Records(out, opts...), nil
}

// Linear computes the full linear convolution of x and h, of length
// len(x)+len(h)-1. The size option is ignored.
func Linear(x, h sequence.Sequence, opts ...core.Option) ([]spectrum.Record, error) {
	if err := validatePair(x, h); err != nil {
		return nil, err
	}
	out := make([]complex128, len(x)+len(h)-1)
	DirectTo(out, x, h)
	return spectrum.Records(out, opts...), nil
}

// DirectTo writes the linear convolution of a and b to dst.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []complex128) {
	l, m := len(a), len(b)
	for n := range dst {
		var sum complex128
		for k := max(0, n-m+1); k < min(n+1, l); k++ {
			sum += a[k] * b[n-k]
		}
		dst[n] = sum
	}
}

// DirectCircularTo writes the circular convolution of a and b to dst.
// All three slices must have the same length.
func DirectCircularTo(dst, a, b []complex128) {
	n := len(dst)
	for i := range dst {
		var sum complex128
		for k := 0; k < n; k++ {
			sum += a[k] * b[(i-k+n)%n]
		}
		dst[i] = sum
	}
}

func validatePair(x, h sequence.Sequence) error {
	if err := x.Validate(); err != nil {
		return fmt.Errorf("conv: input: %w", err)
	}
	if err := h.Validate(); err != nil {
		return fmt.Errorf("conv: kernel: %w", err)
	}
	return nil
}

package fft

import (
	"math/cmplx"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

// FFT computes the N-point spectrum of x. N defaults to len(x) and is set
// with core.WithSize; the input is zero-padded or truncated to N.
func FFT(x sequence.Sequence, opts ...core.Option) ([]spectrum.Record, error) {
	values, err := Transform(x, opts...)
	if err != nil {
		return nil, err
	}
	return spectrum.Records(values, opts...), nil
}

// Transform is FFT without rounding.
func Transform(x sequence.Sequence, opts ...core.Option) ([]complex128, error) {
	cfg := core.ApplyOptions(opts...)
	if err := x.Validate(); err != nil {
		return nil, err
	}
	n, err := cfg.ResolveSize(len(x))
	if err != nil {
		return nil, err
	}
	return transform(x.Resize(n), cfg)
}

// Inverse computes the scaled inverse transform x[n] = (1/N)·Σ X[k]·e^(+j2πkn/N)
// without rounding, using conj(FFT(conj(X)))/N. The padded-bins option does not
// apply: the result is always the exact N-point inverse.
func Inverse(X sequence.Sequence, opts ...core.Option) ([]complex128, error) {
	cfg := core.ApplyOptions(opts...)
	if err := X.Validate(); err != nil {
		return nil, err
	}
	n, err := cfg.ResolveSize(len(X))
	if err != nil {
		return nil, err
	}
	cfg.PaddedBins = false

	buf := X.Resize(n)
	for i, v := range buf {
		buf[i] = cmplx.Conj(v)
	}
	out, err := transform(buf, cfg)
	if err != nil {
		return nil, err
	}
	scale := 1 / float64(n)
	for i, v := range out {
		out[i] = complex(real(v)*scale, -imag(v)*scale)
	}
	return out, nil
}

// transform runs on buf, which already has the nominal length N and is
// owned by the caller.
func transform(buf []complex128, cfg core.Config) ([]complex128, error) {
	kernel := cfg.Kernel
	if kernel == nil {
		kernel = Radix2()
	}

	n := len(buf)
	switch {
	case core.IsPowerOf2(n):
		if err := kernel.Forward(buf); err != nil {
			return nil, err
		}
		return buf, nil
	case cfg.PaddedBins:
		padded := core.Resized(buf, core.NextPowerOf2(n))
		if err := kernel.Forward(padded); err != nil {
			return nil, err
		}
		return padded[:n:n], nil
	default:
		return bluestein(buf, kernel)
	}
}

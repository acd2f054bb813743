package fft

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// bluestein computes the exact n-point DFT of x for any n using a
// power-of-two kernel. With w[k] = e^(-jπk²/n):
//
//	X[k] = w[k] · Σ (x[m]·w[m]) · conj(w[k-m])
//
// which is a circular convolution of length m ≥ 2n-1.
func bluestein(x []complex128, kernel core.Kernel) ([]complex128, error) {
	n := len(x)
	m := core.NextPowerOf2(2*n - 1)

	chirp := make([]complex128, n)
	for k := range chirp {
		// k² mod 2n keeps the angle small for large k.
		kk := (k * k) % (2 * n)
		s, c := math.Sincos(-math.Pi * float64(kk) / float64(n))
		chirp[k] = complex(c, s)
	}

	a := make([]complex128, m)
	for k := 0; k < n; k++ {
		a[k] = x[k] * chirp[k]
	}

	b := make([]complex128, m)
	b[0] = cmplx.Conj(chirp[0])
	for k := 1; k < n; k++ {
		b[k] = cmplx.Conj(chirp[k])
		b[m-k] = b[k]
	}

	if err := kernel.Forward(a); err != nil {
		return nil, err
	}
	if err := kernel.Forward(b); err != nil {
		return nil, err
	}
	for i := range a {
		a[i] *= b[i]
	}
	if err := inverseInPlace(a, kernel); err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	for k := range out {
		out[k] = a[k] * chirp[k]
	}
	return out, nil
}

// inverseInPlace computes the scaled inverse transform with a forward kernel:
// ifft(X) = conj(fft(conj(X))) / len(X).
func inverseInPlace(data []complex128, kernel core.Kernel) error {
	for i, v := range data {
		data[i] = cmplx.Conj(v)
	}
	if err := kernel.Forward(data); err != nil {
		return err
	}
	scale := 1 / float64(len(data))
	for i, v := range data {
		data[i] = complex(real(v)*scale, -imag(v)*scale)
	}
	return nil
}

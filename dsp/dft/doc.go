// Package dft implements the direct O(N²) discrete Fourier transform, its
// inverse, and the twiddle factor W_N^kn they are built from.
//
// These routines are the reference against which the fft package is checked.
// Every call validates its input eagerly and returns freshly allocated,
// rounded [spectrum.Record] values:
//
//	X, err := dft.DFT(x)                      // N = len(x)
//	X, err := dft.DFT(x, core.WithSize(8))    // zero-pad to 8
//	x2, err := dft.IDFT(spectrum.Values(X))
//
// A size smaller than the input truncates it; a larger size zero-pads.
package dft

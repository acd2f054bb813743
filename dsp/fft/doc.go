// Package fft implements the radix-2 decimation-in-time fast Fourier
// transform and uses it for every transform size.
//
// Power-of-two sizes run the textbook algorithm directly: bit-reversal
// permutation followed by log2(N) stages of butterflies. Other sizes are
// evaluated exactly with Bluestein's chirp-z algorithm, which re-expresses an
// N-point DFT as a circular convolution of power-of-two length, so FFT and
// dft.DFT agree for every N. core.WithPaddedBins restores the classic
// shortcut of zero-padding to the next power of two and returning the first N
// bins of that larger transform.
//
// The power-of-two kernel is pluggable through core.WithKernel: [Radix2] is
// the in-package implementation, [Planned] delegates to algo-fft plans.
package fft

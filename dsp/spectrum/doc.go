// Package spectrum turns raw complex engine output into result records.
//
// The package does not transform anything itself. It takes the complex values
// produced by the dft, fft and conv packages and derives the rounded
// rectangular and polar fields callers display and compare.
package spectrum

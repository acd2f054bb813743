// Package conv provides circular, linear, and block convolution of complex
// sequences.
//
// The package offers two families of routines:
//
//   - Direct convolution: Circular and Linear evaluate the defining sums in
//     O(N*M) time. They are the reference the block methods are checked
//     against.
//   - Block convolution: OverlapSave and OverlapAdd split the input into
//     windows of a fixed block size N, multiply each window's N-point FFT
//     with the precomputed kernel spectrum, and stitch the inverse
//     transforms back together.
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	y, err := conv.Linear(x, h)
//	y, err := conv.Circular(x, h, core.WithSize(8))
//	y, err := conv.OverlapSaveConvolve(x, h, 8)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(h, 16)
//	y, err := c.Process(x)
//
// The block size N may be any integer not smaller than the kernel length M.
// Each block yields N-M+1 new output samples.
package conv

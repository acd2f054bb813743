package conv

import (
	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

// OverlapSave implements FFT-based convolution using the overlap-save method.
//
// The algorithm:
// 1. Prepend M-1 zeros to the input
// 2. Take windows of N samples with stride N-M+1
// 3. Circularly convolve each window with the kernel via FFT
// 4. Discard the first M-1 samples of each result (wrap-around)
// 5. Concatenate the remaining N-M+1 samples
//
// Output length is ceil((L+M-1)/(N-M+1))·(N-M+1). The first L+M-1 samples
// equal the linear convolution; the rest is the zero tail of the last block.
type OverlapSave struct {
	block
}

// NewOverlapSave creates an overlap-save convolver for kernel h with block
// size N. N must be at least len(h). core.WithKernel selects the FFT kernel.
func NewOverlapSave(h sequence.Sequence, blockSize int, opts ...core.Option) (*OverlapSave, error) {
	b, err := newBlock(h, blockSize, opts...)
	if err != nil {
		return nil, err
	}
	return &OverlapSave{block: b}, nil
}

// OutputLen returns the number of samples Process produces for an input of
// length l.
func (os *OverlapSave) OutputLen(l int) int {
	return os.blocks(l+os.kernelLen-1) * os.step
}

// Process convolves x with the kernel and returns the unrounded output.
func (os *OverlapSave) Process(x sequence.Sequence) ([]complex128, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	overlap := os.kernelLen - 1
	padded := make([]complex128, overlap+len(x))
	copy(padded[overlap:], x)

	numBlocks := os.blocks(len(x) + overlap)
	output := make([]complex128, 0, numBlocks*os.step)
	window := make([]complex128, os.blockSize)

	for blockIdx := range numBlocks {
		start := blockIdx * os.step
		core.Zero(window)
		if start < len(padded) {
			core.CopyInto(window, padded[start:])
		}

		y, err := os.filter(window)
		if err != nil {
			return nil, err
		}
		output = append(output, y[overlap:]...)
	}

	return output, nil
}

// OverlapSaveConvolve performs one-shot overlap-save convolution of x with h
// using block size N and returns rounded records. Precision and kernel
// options apply; the size option is ignored.
func OverlapSaveConvolve(x, h sequence.Sequence, blockSize int, opts ...core.Option) ([]spectrum.Record, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	os, err := NewOverlapSave(h, blockSize, opts...)
	if err != nil {
		return nil, err
	}
	y, err := os.Process(x)
	if err != nil {
		return nil, err
	}
	return spectrum.Records(y, opts...), nil
}

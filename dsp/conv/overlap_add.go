package conv

import (
	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

// OverlapAdd implements FFT-based convolution using the overlap-add method.
//
// The algorithm:
// 1. Divide the input into non-overlapping blocks of N-M+1 samples
// 2. Zero-pad each block to N
// 3. Convolve via FFT multiplication with the kernel spectrum
// 4. Add each N-sample result into the output at the block's start
//
// Output length is (blocks-1)·(N-M+1)+N. The first L+M-1 samples equal the
// linear convolution.
type OverlapAdd struct {
	block
}

// NewOverlapAdd creates an overlap-add convolver for kernel h with block
// size N. N must be at least len(h). core.WithKernel selects the FFT kernel.
func NewOverlapAdd(h sequence.Sequence, blockSize int, opts ...core.Option) (*OverlapAdd, error) {
	b, err := newBlock(h, blockSize, opts...)
	if err != nil {
		return nil, err
	}
	return &OverlapAdd{block: b}, nil
}

// OutputLen returns the number of samples Process produces for an input of
// length l.
func (oa *OverlapAdd) OutputLen(l int) int {
	return (oa.blocks(l)-1)*oa.step + oa.blockSize
}

// Process convolves x with the kernel and returns the unrounded output.
func (oa *OverlapAdd) Process(x sequence.Sequence) ([]complex128, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	var acc accumulator
	window := make([]complex128, oa.blockSize)

	for blockIdx := range oa.blocks(len(x)) {
		start := blockIdx * oa.step
		end := min(start+oa.step, len(x))

		core.Zero(window)
		copy(window, x[start:end])

		y, err := oa.filter(window)
		if err != nil {
			return nil, err
		}
		if err := acc.add(start, y); err != nil {
			return nil, err
		}
	}

	return acc.values(), nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution of x with h
// using block size N and returns rounded records. Precision and kernel
// options apply; the size option is ignored.
func OverlapAddConvolve(x, h sequence.Sequence, blockSize int, opts ...core.Option) ([]spectrum.Record, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	oa, err := NewOverlapAdd(h, blockSize, opts...)
	if err != nil {
		return nil, err
	}
	y, err := oa.Process(x)
	if err != nil {
		return nil, err
	}
	return spectrum.Records(y, opts...), nil
}

package conv

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/fft"
	"github.com/cwbudde/algo-dft/dsp/sequence"
)

// block holds what overlap-save and overlap-add share: the kernel spectrum
// H = FFT(h padded to N) and the FFT kernel used for every window.
type block struct {
	kernelFFT []complex128
	kernel    core.Kernel
	blockSize int
	kernelLen int
	step      int
}

func newBlock(h sequence.Sequence, blockSize int, opts ...core.Option) (block, error) {
	if err := h.Validate(); err != nil {
		return block{}, fmt.Errorf("conv: kernel: %w", err)
	}
	if blockSize <= 0 {
		return block{}, fmt.Errorf("%w: block size must be a positive integer, got %d", core.ErrInvalidSize, blockSize)
	}
	if blockSize < len(h) {
		return block{}, fmt.Errorf("%w: block size %d is smaller than kernel length %d", core.ErrInvalidSize, blockSize, len(h))
	}

	b := block{
		kernel:    core.ApplyOptions(opts...).Kernel,
		blockSize: blockSize,
		kernelLen: len(h),
		step:      blockSize - len(h) + 1,
	}

	H, err := b.forward(h)
	if err != nil {
		return block{}, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}
	b.kernelFFT = H
	return b, nil
}

// forward returns the exact N-point FFT of window.
func (b *block) forward(window []complex128) ([]complex128, error) {
	return fft.Transform(window, core.WithSize(b.blockSize), core.WithKernel(b.kernel))
}

// filter returns IFFT(FFT(window)·H), the N-point circular convolution of
// window with the kernel. Nothing is rounded.
func (b *block) filter(window []complex128) ([]complex128, error) {
	X, err := b.forward(window)
	if err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	for i := range X {
		X[i] *= b.kernelFFT[i]
	}
	y, err := fft.Inverse(X, core.WithKernel(b.kernel))
	if err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}
	return y, nil
}

// BlockSize returns the FFT block size N.
func (b *block) BlockSize() int {
	return b.blockSize
}

// KernelLen returns the kernel length M.
func (b *block) KernelLen() int {
	return b.kernelLen
}

// Step returns the number of new output samples per block, N-M+1.
func (b *block) Step() int {
	return b.step
}

// blocks returns ceil(total/step).
func (b *block) blocks(total int) int {
	return (total + b.step - 1) / b.step
}

package fft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dft/dsp/core"
)

type radix2Kernel struct{}

// Radix2 returns the iterative radix-2 Cooley-Tukey kernel.
func Radix2() core.Kernel {
	return radix2Kernel{}
}

// Forward transforms data in place. len(data) must be a power of two.
func (radix2Kernel) Forward(data []complex128) error {
	size := len(data)
	if !core.IsPowerOf2(size) {
		return fmt.Errorf("%w: radix-2 kernel needs a power-of-two length, got %d", core.ErrInvalidSize, size)
	}
	if size == 1 {
		return nil
	}

	bitReverse(data)

	// w[m] = e^(-j2πm/size). A stage of length L uses e^(-j2πj/L), which is
	// w[j·size/L].
	w := make([]complex128, size/2)
	step := -2 * math.Pi / float64(size)
	for m := range w {
		s, c := math.Sincos(step * float64(m))
		w[m] = complex(c, s)
	}

	for stageLen := 2; stageLen <= size; stageLen <<= 1 {
		half := stageLen / 2
		stride := size / stageLen
		for i := 0; i < size; i += stageLen {
			for j := 0; j < half; j++ {
				even := data[i+j]
				t := w[j*stride] * data[i+j+half]
				data[i+j] = even + t
				data[i+j+half] = even - t
			}
		}
	}
	return nil
}

package fft

import (
	"fmt"
	"sync"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// plannedKernel runs power-of-two transforms on cached algo-fft plans.
type plannedKernel struct {
	mu    sync.Mutex
	plans map[int]*algofft.Plan[complex128]
}

// Planned returns a kernel backed by algo-fft. Plans are created lazily per
// size and reused; the kernel is safe for concurrent use.
func Planned() core.Kernel {
	return &plannedKernel{plans: make(map[int]*algofft.Plan[complex128])}
}

// Forward transforms data in place. len(data) must be a power of two.
func (k *plannedKernel) Forward(data []complex128) error {
	size := len(data)
	if !core.IsPowerOf2(size) {
		return fmt.Errorf("%w: planned kernel needs a power-of-two length, got %d", core.ErrInvalidSize, size)
	}
	if size == 1 {
		return nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	plan, ok := k.plans[size]
	if !ok {
		var err error
		plan, err = algofft.NewPlan64(size)
		if err != nil {
			return fmt.Errorf("fft: failed to create FFT plan: %w", err)
		}
		k.plans[size] = plan
	}

	if err := plan.Forward(data, data); err != nil {
		return fmt.Errorf("fft: forward FFT failed: %w", err)
	}
	return nil
}

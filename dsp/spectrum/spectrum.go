package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex value.
//
// This function uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// PhaseDegrees returns atan2(im, re) in degrees, in (-180, 180] for
// non-negative-zero inputs.
func PhaseDegrees(c complex128) float64 {
	return math.Atan2(imag(c), real(c)) * 180 / math.Pi
}

// Phase returns PhaseDegrees for each complex value.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = PhaseDegrees(c)
	}
	return out
}

// round returns a copy of in with both parts rounded.
func round(in []complex128, decimals int) []complex128 {
	out := make([]complex128, len(in))
	for i, c := range in {
		out[i] = complex(core.Round(real(c), decimals), core.Round(imag(c), decimals))
	}
	return out
}

package testutil

import (
	"math"
	"math/rand"
)

// DeterministicTone generates e^(j2π·cycles·n/length), a complex tone that
// lands on a single DFT bin when cycles is an integer.
func DeterministicTone(cycles float64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		s, c := math.Sincos(step * float64(i))
		out[i] = complex(amplitude*c, amplitude*s)
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed for
// reproducibility. Both parts lie in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value complex128, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.
func Ones(n int) []complex128 {
	return DC(1, n)
}

// LinearReference is the textbook O(L·M) linear convolution used as an
// oracle in tests.
func LinearReference(x, h []complex128) []complex128 {
	if len(x) == 0 || len(h) == 0 {
		return nil
	}
	out := make([]complex128, len(x)+len(h)-1)
	for i, a := range x {
		for j, b := range h {
			out[i+j] += a * b
		}
	}
	return out
}

package core

import (
	"math"
	"math/cmplx"
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Round rounds value to the given number of decimal places, halves away
// from zero. Negative zero is normalized to +0 so that derived phases stay
// within (-180, 180].
func Round(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	r := math.Round(value*factor) / factor
	if r == 0 {
		return 0
	}
	return r
}

// IsFinite reports whether both parts of c are finite.
func IsFinite(c complex128) bool {
	return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

package fft

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}
	return result
}

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// bitReverse moves every element of data to its bit-reversed index.
// Each pair is swapped once, from the lower index.
func bitReverse(data []complex128) {
	bits := log2(len(data))
	for i := range data {
		j := ReverseBits(i, bits)
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}
}

package core

// Zero sets all values in buf to 0.
func Zero(buf []complex128) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []complex128) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// Resized returns a new slice of length n holding src, truncated or
// zero-filled as needed. src is never modified.
func Resized(src []complex128, n int) []complex128 {
	if n <= 0 {
		return nil
	}
	out := make([]complex128, n)
	CopyInto(out, src)
	return out
}

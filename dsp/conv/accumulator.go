package conv

import "fmt"

// accumulator is a growable output buffer indexed by absolute sample
// position. Writes past the current end extend it with zeros.
type accumulator struct {
	data []complex128
}

// add sums values into the buffer starting at pos.
func (a *accumulator) add(pos int, values []complex128) error {
	if pos < 0 {
		return fmt.Errorf("conv: accumulator position %d out of range", pos)
	}
	if end := pos + len(values); end > len(a.data) {
		if end > cap(a.data) {
			grown := make([]complex128, end, max(end, 2*cap(a.data)))
			copy(grown, a.data)
			a.data = grown
		} else {
			a.data = a.data[:end]
		}
	}
	for i, v := range values {
		a.data[pos+i] += v
	}
	return nil
}

// values returns the accumulated samples.
func (a *accumulator) values() []complex128 {
	return a.data
}

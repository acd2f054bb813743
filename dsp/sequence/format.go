package sequence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// Format renders s in the parser grammar, rounding each part to precision
// decimals: "(1,0), (0,-1)".
func Format(s Sequence, precision int) string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		b.WriteString(formatPart(real(c), precision))
		b.WriteByte(',')
		b.WriteString(formatPart(imag(c), precision))
		b.WriteByte(')')
	}
	return b.String()
}

// FormatComplex renders c in engineering notation with a fixed number of
// decimals, e.g. "1.000 + j0.500" or "1.000 - j0.500".
func FormatComplex(c complex128, precision int) string {
	re := core.Round(real(c), precision)
	im := core.Round(imag(c), precision)
	sign := "+"
	if im < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%.*f %s j%.*f", precision, re, sign, precision, math.Abs(im))
}

func formatPart(v float64, precision int) string {
	return strconv.FormatFloat(core.Round(v, precision), 'f', -1, 64)
}

package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleRecords() {
	for _, r := range spectrum.Records([]complex128{3 + 2i, -2i}) {
		fmt.Printf("%d: %.3f %+.3fj |%.3f| %.2f°\n", r.Index, r.Re, r.Im, r.Magnitude, r.Phase)
	}
	// Output:
	// 0: 3.000 +2.000j |3.606| 33.69°
	// 1: 0.000 -2.000j |2.000| -90.00°
}

package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/internal/testutil"
)

func BenchmarkLinear(b *testing.B) {
	x := sequence.Sequence(testutil.DeterministicNoise(1, 1, 256))
	h := sequence.Sequence(testutil.DeterministicNoise(2, 1, 16))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Linear(x, h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBlock(b *testing.B) {
	x := sequence.Sequence(testutil.DeterministicNoise(1, 1, 1024))
	h := sequence.Sequence(testutil.DeterministicNoise(2, 1, 16))

	for _, n := range []int{32, 64, 100} {
		os, _ := NewOverlapSave(h, n)
		oa, _ := NewOverlapAdd(h, n)

		b.Run(fmt.Sprintf("overlap-save/N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := os.Process(x); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("overlap-add/N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := oa.Process(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

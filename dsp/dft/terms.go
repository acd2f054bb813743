package dft

import (
	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

// Term is one summand of a single output bin.
type Term struct {
	Index   int
	Sample  complex128
	Twiddle complex128
	Product complex128
	Partial complex128
}

// Breakdown lists the products that make up bin K of an N-point DFT (or of
// the IDFT when Inverse is set), in summation order.
type Breakdown struct {
	K       int
	Size    int
	Inverse bool
	Terms   []Term
	// Sum is the unscaled total of all products.
	Sum complex128
	// Result is the rounded output bin: Sum, or Sum/N for the inverse.
	Result spectrum.Record
}

// Terms expands output bin k of DFT(x) or IDFT(x) into its per-sample
// products x[n]·W_N^kn. The size option applies as for DFT.
func Terms(x sequence.Sequence, k int, inv bool, opts ...core.Option) (Breakdown, error) {
	cfg := core.ApplyOptions(opts...)
	if err := x.Validate(); err != nil {
		return Breakdown{}, err
	}
	n, err := cfg.ResolveSize(len(x))
	if err != nil {
		return Breakdown{}, err
	}

	sign := forward
	if inv {
		sign = inverse
	}
	w := roots(n, sign)

	b := Breakdown{K: k, Size: n, Inverse: inv, Terms: make([]Term, n)}
	for m := range b.Terms {
		sample := x.At(m)
		tw := w[rootIndex(k, m, n)]
		product := sample * tw
		b.Sum += product
		b.Terms[m] = Term{
			Index:   m,
			Sample:  sample,
			Twiddle: tw,
			Product: product,
			Partial: b.Sum,
		}
	}

	result := b.Sum
	if inv {
		result /= complex(float64(n), 0)
	}
	rec := spectrum.Records([]complex128{result}, opts...)[0]
	rec.Index = k
	b.Result = rec
	return b, nil
}

package dft

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/sequence"
)

func TestTermsSumToBin(t *testing.T) {
	x := sequence.Default()
	X, err := DFT(x)
	if err != nil {
		t.Fatal(err)
	}

	for k := range X {
		b, err := Terms(x, k, false)
		if err != nil {
			t.Fatalf("Terms(k=%d) error = %v", k, err)
		}
		if len(b.Terms) != len(x) || b.Size != len(x) || b.K != k {
			t.Fatalf("unexpected breakdown shape: %+v", b)
		}
		if b.Result != X[k] {
			t.Fatalf("Terms(k=%d).Result = %+v, want %+v", k, b.Result, X[k])
		}
		last := b.Terms[len(b.Terms)-1]
		if last.Partial != b.Sum {
			t.Fatalf("final partial %v != sum %v", last.Partial, b.Sum)
		}
		for _, term := range b.Terms {
			if cmplx.Abs(term.Product-term.Sample*term.Twiddle) > 1e-15 {
				t.Fatalf("term %d product mismatch", term.Index)
			}
		}
	}
}

func TestTermsInverse(t *testing.T) {
	X := sequence.Sequence{4, 0, 0, 0}
	b, err := Terms(X, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	if b.Sum != 4 {
		t.Fatalf("sum = %v, want 4", b.Sum)
	}
	if b.Result.Re != 1 || b.Result.Im != 0 || b.Result.Index != 2 {
		t.Fatalf("result = %+v, want index 2 value 1", b.Result)
	}
}

func TestTermsPadded(t *testing.T) {
	b, err := Terms(sequence.Sequence{1, 1}, 1, false, core.WithSize(4))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Terms) != 4 || b.Terms[3].Sample != 0 {
		t.Fatalf("expected zero-padded terms, got %+v", b.Terms)
	}
	if b.Result.Re != 1 || b.Result.Im != -1 {
		t.Fatalf("result = %+v, want 1-1j", b.Result)
	}
}

func TestTermsErrors(t *testing.T) {
	if _, err := Terms(nil, 0, false); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("Terms(nil) error = %v", err)
	}
	if _, err := Terms(sequence.Sequence{1}, 0, false, core.WithSize(0)); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("Terms(size 0) error = %v", err)
	}
}

package signal

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/dft"
	"github.com/cwbudde/algo-dft/internal/testutil"
)

func TestNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(WithSeed(42))
	g2 := NewGenerator(WithSeed(42))

	n1, err := g1.Noise(1, 16)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}
	n2, err := g2.Noise(1, 16)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if abs := max(real(n1[i]), -real(n1[i]), imag(n1[i]), -imag(n1[i])); abs > 1 {
			t.Fatalf("sample %d = %v exceeds amplitude", i, n1[i])
		}
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	if g.Seed() != 1 {
		t.Fatalf("default Seed()=%d, want 1", g.Seed())
	}
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.Noise(1, 8)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.Noise(1, 8)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestExponentialIsSingleBin(t *testing.T) {
	for _, tt := range []struct{ k, n, bin int }{{1, 8, 1}, {3, 5, 3}, {9, 4, 1}, {0, 3, 0}} {
		x, err := Exponential(tt.k, tt.n)
		if err != nil {
			t.Fatalf("Exponential() error = %v", err)
		}
		X, err := dft.Transform(x, tt.n)
		if err != nil {
			t.Fatalf("dft.Transform() error = %v", err)
		}
		want := make([]complex128, tt.n)
		want[tt.bin] = complex(float64(tt.n), 0)
		testutil.RequireComplexNearlyEqual(t, X, want, 1e-9)
	}
}

func TestImpulseAndStep(t *testing.T) {
	x, err := Impulse(4, 2)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, x, testutil.Impulse(4, 2), 0)

	s, err := Step(3)
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, s, testutil.Ones(3), 0)
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]complex128{-0.5, 1i, 0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if cmplx.Abs(out[1]-0.5i) > 1e-15 {
		t.Fatalf("peak = %v, want 0.5i", out[1])
	}
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator()
	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"noise length", func() error { _, err := g.Noise(1, 0); return err }, core.ErrInvalidSize},
		{"noise amplitude", func() error { _, err := g.Noise(-1, 4); return err }, core.ErrValidation},
		{"impulse position", func() error { _, err := Impulse(4, 4); return err }, core.ErrValidation},
		{"step length", func() error { _, err := Step(-1); return err }, core.ErrInvalidSize},
		{"exponential length", func() error { _, err := Exponential(1, 0); return err }, core.ErrInvalidSize},
		{"normalize empty", func() error { _, err := Normalize(nil, 1); return err }, core.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

package conv

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/fft"
	"github.com/cwbudde/algo-dft/dsp/sequence"
	"github.com/cwbudde/algo-dft/internal/testutil"
)

type processor interface {
	Process(x sequence.Sequence) ([]complex128, error)
	OutputLen(l int) int
}

func newProcessors(t *testing.T, h sequence.Sequence, n int, opts ...core.Option) map[string]processor {
	t.Helper()
	os, err := NewOverlapSave(h, n, opts...)
	if err != nil {
		t.Fatalf("NewOverlapSave() error = %v", err)
	}
	oa, err := NewOverlapAdd(h, n, opts...)
	if err != nil {
		t.Fatalf("NewOverlapAdd() error = %v", err)
	}
	return map[string]processor{"overlap-save": os, "overlap-add": oa}
}

func TestBlockMatchesLinear(t *testing.T) {
	tests := []struct {
		name string
		l, m int
		n    int
	}{
		{name: "N equals M", l: 10, m: 3, n: 3},
		{name: "power of two", l: 20, m: 5, n: 8},
		{name: "odd block", l: 17, m: 4, n: 7},
		{name: "short input", l: 2, m: 4, n: 16},
		{name: "single tap", l: 9, m: 1, n: 4},
		{name: "long kernel", l: 50, m: 31, n: 64},
	}

	for _, tt := range tests {
		x := sequence.Sequence(testutil.DeterministicNoise(int64(tt.l), 1, tt.l))
		h := sequence.Sequence(testutil.DeterministicNoise(int64(tt.m)+100, 1, tt.m))
		want := testutil.LinearReference(x, h)

		for kernelName, kernel := range map[string]core.Kernel{"radix2": fft.Radix2(), "planned": fft.Planned()} {
			for name, p := range newProcessors(t, h, tt.n, core.WithKernel(kernel)) {
				t.Run(tt.name+"/"+name+"/"+kernelName, func(t *testing.T) {
					got, err := p.Process(x)
					if err != nil {
						t.Fatalf("Process() error = %v", err)
					}
					if len(got) != p.OutputLen(tt.l) {
						t.Fatalf("len = %d, want %d", len(got), p.OutputLen(tt.l))
					}
					testutil.RequireFinite(t, got)
					testutil.RequireComplexNearlyEqual(t, got[:len(want)], want, 1e-9)
					for i, v := range got[len(want):] {
						if cmplx.Abs(v) > 1e-9 {
							t.Fatalf("tail[%d] = %v, want 0", i, v)
						}
					}
				})
			}
		}
	}
}

func TestOutputLen(t *testing.T) {
	// L=4, M=2, N=3: step 2.
	h := sequence.Sequence{1, 1}
	os, _ := NewOverlapSave(h, 3)
	oa, _ := NewOverlapAdd(h, 3)

	if got := os.OutputLen(4); got != 6 { // ceil(5/2)·2
		t.Errorf("overlap-save OutputLen = %d, want 6", got)
	}
	if got := oa.OutputLen(4); got != 5 { // (2-1)·2+3
		t.Errorf("overlap-add OutputLen = %d, want 5", got)
	}
	if os.Step() != 2 || os.BlockSize() != 3 || os.KernelLen() != 2 {
		t.Errorf("accessors = (%d, %d, %d), want (2, 3, 2)", os.Step(), os.BlockSize(), os.KernelLen())
	}
}

func TestBlockConvolveRecords(t *testing.T) {
	x := sequence.Sequence{1, 2, 3, 4}
	h := sequence.Sequence{1, 1}

	saved, err := OverlapSaveConvolve(x, h, 3)
	if err != nil {
		t.Fatalf("OverlapSaveConvolve() error = %v", err)
	}
	testutil.RequireRecords(t, saved, []complex128{1, 3, 5, 7, 4, 0}, testutil.RecordTolerance)

	added, err := OverlapAddConvolve(x, h, 3)
	if err != nil {
		t.Fatalf("OverlapAddConvolve() error = %v", err)
	}
	testutil.RequireRecords(t, added, []complex128{1, 3, 5, 7, 4}, testutil.RecordTolerance)
}

func TestBlockErrors(t *testing.T) {
	x := sequence.Sequence{1, 2, 3}
	tests := []struct {
		name string
		x, h sequence.Sequence
		n    int
		want error
	}{
		{name: "N smaller than M", x: x, h: sequence.Sequence{1, 1, 1}, n: 2, want: core.ErrInvalidSize},
		{name: "zero N", x: x, h: sequence.Sequence{1}, n: 0, want: core.ErrInvalidSize},
		{name: "negative N", x: x, h: sequence.Sequence{1}, n: -3, want: core.ErrInvalidSize},
		{name: "empty x", x: nil, h: sequence.Sequence{1}, n: 4, want: core.ErrValidation},
		{name: "empty h", x: x, h: nil, n: 4, want: core.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := OverlapSaveConvolve(tt.x, tt.h, tt.n); !errors.Is(err, tt.want) {
				t.Errorf("OverlapSaveConvolve() error = %v, want %v", err, tt.want)
			}
			if _, err := OverlapAddConvolve(tt.x, tt.h, tt.n); !errors.Is(err, tt.want) {
				t.Errorf("OverlapAddConvolve() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAccumulator(t *testing.T) {
	var acc accumulator
	if err := acc.add(2, []complex128{1, 1}); err != nil {
		t.Fatalf("add() error = %v", err)
	}
	if err := acc.add(0, []complex128{1, 1, 1}); err != nil {
		t.Fatalf("add() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, acc.values(), []complex128{1, 1, 2, 1}, 0)

	if err := acc.add(-1, []complex128{1}); err == nil {
		t.Fatal("add(-1) succeeded, want error")
	}
}

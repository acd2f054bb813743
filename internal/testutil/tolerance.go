package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/spectrum"
)

// RecordTolerance is the comparison slack for values rounded to 3 decimals.
const RecordTolerance = 1.5e-3

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// any element pair is further apart than eps.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRecords fails t unless records are indexed 0..n-1, internally
// consistent, and carry values within eps of want. Magnitude is stored
// rounded, so its consistency check never uses less than RecordTolerance.
func RequireRecords(t *testing.T, got []spectrum.Record, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Index != i {
			t.Fatalf("record %d has index %d", i, r.Index)
		}
		if d := cmplx.Abs(r.Complex() - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, r.Complex(), want[i], d, eps)
		}
		if math.Abs(r.Magnitude-math.Hypot(r.Re, r.Im)) > max(eps, RecordTolerance) {
			t.Fatalf("index %d: magnitude %v inconsistent with (%v, %v)", i, r.Magnitude, r.Re, r.Im)
		}
		if r.Phase <= -180 || r.Phase > 180 {
			t.Fatalf("index %d: phase %v outside (-180, 180]", i, r.Phase)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []complex128) {
	t.Helper()
	for i, v := range data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.1, 3.0})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersAcceptEqualSlices(t *testing.T) {
	a := []float64{1, 2, 3}
	RequireSliceNearlyEqual(t, a, a, 0)
	RequireSliceRelative(t, a, []float64{1, 2, 3 + 1e-12}, 1e-9)
	RequireFinite(t, a)
}

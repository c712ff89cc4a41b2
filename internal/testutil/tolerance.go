package testutil

import (
	"fmt"
	"math"
	"testing"
)

// MaxAbsDiff returns the largest |a[i]-b[i]| and the index where it occurs.
func MaxAbsDiff(a, b []float32) (float64, int, error) {
	if len(a) != len(b) {
		return 0, -1, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	worst, at := 0.0, -1
	for i := range a {
		if d := math.Abs(float64(a[i]) - float64(b[i])); d > worst || at < 0 {
			worst, at = d, i
		}
	}
	return worst, at, nil
}

// RequireSliceNearlyEqual fails t unless got and want have equal length and
// agree within the absolute tolerance eps everywhere. The worst offender is
// reported.
func RequireSliceNearlyEqual(t *testing.T, got, want []float32, eps float64) {
	t.Helper()
	worst, at, err := MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if worst > eps {
		t.Fatalf("index %d: got %v, want %v (|diff| %g > %g)", at, got[at], want[at], worst, eps)
	}
}

// RequireFinite fails t on the first NaN or infinity in data.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

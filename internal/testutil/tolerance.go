package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t when |got − want| > eps.
func RequireNearlyEqual(t testing.TB, what string, got, want, eps float64) {
	t.Helper()
	if d := math.Abs(got - want); !(d <= eps) {
		t.Fatalf("%s = %v, want %v (diff %v > %v)", what, got, want, d, eps)
	}
}

// RequireSliceNearlyEqual fails t when the slices differ in length or any
// pair of elements differs by more than eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); !(d <= eps) {
			t.Fatalf("[%d] = %v, want %v (diff %v > %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t on the first NaN or infinity in data.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("[%d] = %v, want finite", i, v)
		}
	}
}

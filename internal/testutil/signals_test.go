package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1, 48)
	if len(s) != 48 || s[0] != 0 {
		t.Fatalf("len %d, s[0] = %v", len(s), s[0])
	}
	RequireNearlyEqual(t, "s[12]", s[12], 1, 1e-12)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 64)
	b := DeterministicNoise(42, 0.5, 64)
	RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("a[%d] = %v outside [-0.5, 0.5)", i, v)
		}
	}

	c := DeterministicNoise(43, 0.5, 64)
	if a[0] == c[0] && a[1] == c[1] {
		t.Fatal("different seeds produced the same noise")
	}
}

func TestExponentialDecay(t *testing.T) {
	ir := ExponentialDecay(1000, 0.5, 1)
	if len(ir) != 1000 || ir[0] != 1 {
		t.Fatalf("len %d, ir[0] = %v", len(ir), ir[0])
	}
	// 60 dB down at rt60, 30 dB at half of it.
	RequireNearlyEqual(t, "ir[500]", ir[500], 1e-3, 1e-12)
	RequireFinite(t, ir)
	if math.Abs(20*math.Log10(ir[250])+30) > 1e-9 {
		t.Fatalf("ir[250] = %v, want -30 dB", ir[250])
	}
}

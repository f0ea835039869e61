package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("non-positive eps should fall back to the default")
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{name: "zero", x: 0, want: true},
		{name: "negative", x: -3.5, want: true},
		{name: "nan", x: math.NaN(), want: false},
		{name: "+inf", x: math.Inf(1), want: false},
		{name: "-inf", x: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.x); got != tt.want {
				t.Fatalf("IsFinite(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestDBPowerConversions(t *testing.T) {
	// 3 dB power ~ 2x linear power
	p := DBPowerToLinear(3)
	if !NearlyEqual(p, 2.0, 0.01) {
		t.Fatalf("DBPowerToLinear(3) = %v, want ~2.0", p)
	}

	db := LinearPowerToDB(p)
	if !NearlyEqual(db, 3.0, 1e-10) {
		t.Fatalf("LinearPowerToDB(DBPowerToLinear(3)) = %v, want 3", db)
	}

	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}

func TestGuardedPowerToDBStaysFinite(t *testing.T) {
	for _, p := range []float64{0, 1e-30, 1e-12, 1} {
		got := GuardedPowerToDB(p, LogFloor)
		if !IsFinite(got) {
			t.Fatalf("GuardedPowerToDB(%g) = %v, want finite", p, got)
		}
	}
	if got := GuardedPowerToDB(0, 0); !NearlyEqual(got, -120, 1e-9) {
		t.Fatalf("GuardedPowerToDB(0, 0) = %v, want -120", got)
	}
}

func TestSinc(t *testing.T) {
	if Sinc(0) != 1 {
		t.Fatalf("Sinc(0) = %v, want 1", Sinc(0))
	}
	for _, n := range []float64{1, 2, -3} {
		if got := Sinc(n); math.Abs(got) > 1e-15 {
			t.Fatalf("Sinc(%v) = %v, want 0", n, got)
		}
	}
	if got := Sinc(0.5); !NearlyEqual(got, 2/math.Pi, 1e-12) {
		t.Fatalf("Sinc(0.5) = %v, want %v", got, 2/math.Pi)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); !NearlyEqual(got, math.Pi, 1e-15) {
		t.Fatalf("Radians(180) = %v, want pi", got)
	}
}

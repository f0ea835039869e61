package transmission

import (
	"errors"
	"math"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/mauromussin/opened-window/internal/testutil"
	"github.com/mauromussin/opened-window/sim/fdtd"
)

func TestInsertionLoss(t *testing.T) {
	ref := testutil.DeterministicSine(0.05, 1, 1, 256)
	half := make([]float64, len(ref))
	for i, v := range ref {
		half[i] = v / 2
	}

	got, err := InsertionLoss(ref, half)
	if err != nil {
		t.Fatal(err)
	}
	if want := 20 * math.Log10(2); math.Abs(got-want) > 1e-9 {
		t.Fatalf("InsertionLoss = %g, want %g", got, want)
	}

	if got, err := InsertionLoss(ref, ref); err != nil || got != 0 {
		t.Fatalf("InsertionLoss(x, x) = %g, %v", got, err)
	}
}

func TestInsertionLossErrors(t *testing.T) {
	x := []float64{1, 2, 3}
	tests := []struct {
		name     string
		ref, obs []float64
		want     error
	}{
		{"empty", nil, x, ErrEmpty},
		{"length", x, x[:2], ErrLengthMismatch},
		{"silent", x, make([]float64, 3), ErrSilent},
	}
	for _, tt := range tests {
		if _, err := InsertionLoss(tt.ref, tt.obs); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestPowerSpectrumMatchesReferenceFFT(t *testing.T) {
	x := testutil.DeterministicNoise(7, 1, 100)

	got, err := PowerSpectrum(x)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 65 {
		t.Fatalf("bins = %d, want 65", len(got))
	}

	w := window.Hann(len(x))
	padded := make([]float64, 128)
	for i := range x {
		padded[i] = x[i] * w[i]
	}
	bins := fft.FFTReal(padded)

	want := make([]float64, len(got))
	for k := range want {
		re, im := real(bins[k]), imag(bins[k])
		want[k] = re*re + im*im
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestPowerSpectrumPeak(t *testing.T) {
	// 16 cycles in 256 samples sits exactly on bin 16.
	x := testutil.DeterministicSine(1.0/16, 1, 1, 256)

	p, err := PowerSpectrum(x)
	if err != nil {
		t.Fatal(err)
	}

	peak := 0
	for k := range p {
		if p[k] > p[peak] {
			peak = k
		}
	}
	if peak != 16 {
		t.Fatalf("peak bin = %d, want 16", peak)
	}
	if r := BinRate(peak, 256); math.Abs(r-2*math.Pi/16) > 1e-12 {
		t.Fatalf("BinRate = %g", r)
	}
}

func TestPowerSpectrumErrors(t *testing.T) {
	if _, err := PowerSpectrum(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v", err)
	}
	if _, err := PowerSpectrum([]float64{1}); !errors.Is(err, ErrTooShort) {
		t.Fatalf("err = %v", err)
	}
}

func TestInsertionLossAt(t *testing.T) {
	ref := testutil.DeterministicSine(0.4/(2*math.Pi), 1, 1, 300)
	obs := make([]float64, len(ref))
	for i, v := range ref {
		obs[i] = v / 10
	}

	got, err := InsertionLossAt(ref, obs, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-20) > 1e-6 {
		t.Fatalf("InsertionLossAt = %g, want 20", got)
	}

	for _, rate := range []float64{0, -1, 4, math.NaN()} {
		if _, err := InsertionLossAt(ref, obs, rate); !errors.Is(err, ErrRate) {
			t.Errorf("rate %g: err = %v", rate, err)
		}
	}
}

func TestApertureProbe(t *testing.T) {
	run := func(thickness int) []float64 {
		cfg := fdtd.DefaultConfig()
		cfg.WallThickness = thickness
		cfg.Probes = []fdtd.Cell{{X: 60, Y: 40}}

		s, err := fdtd.Configure(cfg)
		if err != nil {
			t.Fatal(err)
		}
		s.Run()

		p, err := s.Probe(0)
		if err != nil {
			t.Fatal(err)
		}
		return p
	}

	free, walled := run(0), run(fdtd.DefaultWallThickness)

	il, err := InsertionLoss(free, walled)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(il) || math.IsInf(il, 0) {
		t.Fatalf("insertion loss = %g", il)
	}

	narrow, err := InsertionLossAt(free, walled, fdtd.DefaultCarrier)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(narrow) || math.IsInf(narrow, 0) {
		t.Fatalf("narrowband insertion loss = %g", narrow)
	}
}

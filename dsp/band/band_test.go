package band

import (
	"errors"
	"math"
	"testing"

	"github.com/mauromussin/opened-window/dsp/core"
)

var scenarioLevels = []float64{106, 105, 102, 100, 98, 95, 90}

func mustCanonical(t *testing.T, levels ...float64) Spectrum {
	t.Helper()
	s, err := Canonical(levels...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSpectrumValidation(t *testing.T) {
	tests := []struct {
		name   string
		freqs  []float64
		levels []float64
		want   error
	}{
		{name: "empty", freqs: nil, levels: nil, want: ErrEmpty},
		{name: "length", freqs: []float64{100, 200}, levels: []float64{1}, want: ErrShapeMismatch},
		{name: "order", freqs: []float64{200, 100}, levels: []float64{1, 2}, want: ErrFrequencyOrder},
		{name: "duplicate", freqs: []float64{100, 100}, levels: []float64{1, 2}, want: ErrFrequencyOrder},
		{name: "zero freq", freqs: []float64{0, 100}, levels: []float64{1, 2}, want: ErrFrequencyOrder},
		{name: "nan freq", freqs: []float64{math.NaN()}, levels: []float64{1}, want: ErrFrequencyOrder},
		{name: "nan level", freqs: []float64{100}, levels: []float64{math.NaN()}, want: ErrLevel},
		{name: "inf level", freqs: []float64{100}, levels: []float64{math.Inf(1)}, want: ErrLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpectrum(tt.freqs, tt.levels)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, core.ErrConfig) {
				t.Fatalf("err = %v, want configuration error class", err)
			}
		})
	}
}

func TestNewSpectrumAcceptsAnyFiniteLevel(t *testing.T) {
	s, err := NewSpectrum([]float64{100, 1000}, []float64{-400, 1e4})
	if err != nil {
		t.Fatal(err)
	}
	if s.Level(0) != -400 || s.Level(1) != 1e4 {
		t.Fatalf("levels = %v", s.Levels())
	}
}

func TestSpectrumIsImmutable(t *testing.T) {
	freqs := []float64{100, 200}
	levels := []float64{50, 60}
	s, err := NewSpectrum(freqs, levels)
	if err != nil {
		t.Fatal(err)
	}

	freqs[0], levels[0] = 1, 1
	if s.Freq(0) != 100 || s.Level(0) != 50 {
		t.Fatal("spectrum aliases constructor input")
	}

	out := s.Levels()
	out[1] = 0
	if s.Level(1) != 60 {
		t.Fatal("Levels() aliases internal storage")
	}
}

func TestCanonical(t *testing.T) {
	s7 := mustCanonical(t, scenarioLevels...)
	if s7.Len() != 7 || s7.Freq(6) != 4000 {
		t.Fatalf("7-band spectrum: len %d, last %g", s7.Len(), s7.Freq(s7.Len()-1))
	}

	s8 := mustCanonical(t, append(core.Clone(scenarioLevels), 88)...)
	if s8.Len() != 8 || s8.Freq(7) != 5000 {
		t.Fatalf("8-band spectrum: len %d, last %g", s8.Len(), s8.Freq(s8.Len()-1))
	}

	if _, err := Canonical(1, 2, 3); !errors.Is(err, ErrBandCount) {
		t.Fatalf("err = %v, want ErrBandCount", err)
	}
}

func TestCanonicalCenters(t *testing.T) {
	if got := CanonicalCenters(false); len(got) != 7 || got[6] != 4000 {
		t.Fatalf("CanonicalCenters(false) = %v", got)
	}
	got := CanonicalCenters(true)
	got[0] = 0
	if CanonicalCenters(true)[0] != 100 {
		t.Fatal("CanonicalCenters returned shared storage")
	}
}

func TestBroadbandDBAScenario(t *testing.T) {
	s := mustCanonical(t, scenarioLevels...)
	w, err := AWeighting(s.Freqs())
	if err != nil {
		t.Fatal(err)
	}

	got, err := BroadbandDBA(s, w)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-103.01) > 0.01 {
		t.Fatalf("BroadbandDBA = %.4f, want ~103.01", got)
	}
}

func TestBroadbandDBAShapeMismatch(t *testing.T) {
	s := mustCanonical(t, scenarioLevels...)
	w, err := NewWeighting([]float64{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	_, err = BroadbandDBA(s, w)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
	if !errors.Is(err, core.ErrConfig) {
		t.Fatalf("err = %v, want configuration error class", err)
	}

	if _, err := NewModel(s, w); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("NewModel err = %v, want ErrShapeMismatch", err)
	}
}

func TestBroadbandDBAMonotonicInEachBand(t *testing.T) {
	base := mustCanonical(t, scenarioLevels...)
	w, err := AWeighting(base.Freqs())
	if err != nil {
		t.Fatal(err)
	}
	ref, err := BroadbandDBA(base, w)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < base.Len(); i++ {
		for _, bump := range []float64{0.01, 1, 10, 40} {
			raised, err := base.WithLevel(i, base.Level(i)+bump)
			if err != nil {
				t.Fatal(err)
			}
			got, err := BroadbandDBA(raised, w)
			if err != nil {
				t.Fatal(err)
			}
			if !(got > ref) {
				t.Fatalf("raising band %d by %g dB: %v <= %v", i, bump, got, ref)
			}
		}
	}
}

func TestBroadbandIsEnergeticNotArithmetic(t *testing.T) {
	s, err := NewSpectrum([]float64{500, 1000}, []float64{90, 90})
	if err != nil {
		t.Fatal(err)
	}
	w, err := NewWeighting([]float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}

	got, err := BroadbandDBA(s, w)
	if err != nil {
		t.Fatal(err)
	}
	want := 90 + 10*math.Log10(2)
	if !core.NearlyEqual(got, want, 1e-12) {
		t.Fatalf("two equal bands: %v, want %v", got, want)
	}
	if !core.NearlyEqual(Sum([]float64{90, 90}), want, 1e-12) {
		t.Fatalf("Sum = %v, want %v", Sum([]float64{90, 90}), want)
	}
}

func TestAWeightingUnknownBand(t *testing.T) {
	if _, err := AWeighting([]float64{100, 1001}); !errors.Is(err, core.ErrConfig) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestWithLevelIndex(t *testing.T) {
	s := mustCanonical(t, scenarioLevels...)
	if _, err := s.WithLevel(7, 0); !errors.Is(err, ErrIndex) {
		t.Fatalf("err = %v, want ErrIndex", err)
	}
	if _, err := s.WithLevel(0, math.NaN()); !errors.Is(err, ErrLevel) {
		t.Fatalf("err = %v, want ErrLevel", err)
	}
}

func TestShift(t *testing.T) {
	s := mustCanonical(t, scenarioLevels...)
	w, err := AWeighting(s.Freqs())
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewModel(s, w)
	if err != nil {
		t.Fatal(err)
	}

	shifted, err := m.Reduce(s.Shift(-10))
	if err != nil {
		t.Fatal(err)
	}
	if !core.NearlyEqual(shifted, m.BroadbandDBA()-10, 1e-12) {
		t.Fatalf("shifted = %v, want %v", shifted, m.BroadbandDBA()-10)
	}
}

func TestEdges(t *testing.T) {
	lo, hi := Edges(1000, 1)
	if math.Abs(lo-707.9) > 0.05 || math.Abs(hi-1412.5) > 0.05 {
		t.Fatalf("octave edges = %.2f, %.2f", lo, hi)
	}
	lo3, hi3 := Edges(1000, 3)
	if math.Abs(lo3-891.3) > 0.05 || math.Abs(hi3-1122.0) > 0.05 {
		t.Fatalf("third-octave edges = %.2f, %.2f", lo3, hi3)
	}
	loDefault, _ := Edges(1000, 0)
	if loDefault != lo {
		t.Fatal("fraction 0 should mean full octave")
	}
}

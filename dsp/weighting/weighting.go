package weighting

import (
	"fmt"
	"math"

	"github.com/mauromussin/opened-window/dsp/core"
)

// IEC 61672 analog prototype pole frequencies (Hz).
const (
	f1 = 20.598997 // double pole for A and C
	f2 = 107.65265 // single pole for A
	f4 = 737.86223 // single pole for A
	f5 = 12194.217 // double pole for A and C
)

// ErrUnknownFrequency is returned when a band centre has no tabulated value.
var ErrUnknownFrequency = core.ConfigError("weighting: frequency is not a nominal 1/3-octave centre")

// Type identifies a frequency weighting curve.
type Type int

const (
	// TypeA is the A-weighting curve per IEC 61672.
	// It approximates the 40-phon equal-loudness contour and is the
	// weighting behind every dB(A) figure.
	TypeA Type = iota

	// TypeC is the C-weighting curve per IEC 61672.
	// It approximates the 100-phon equal-loudness contour.
	TypeC

	// TypeZ is the Z-weighting (zero-weighting) per IEC 61672.
	// It applies no frequency weighting.
	TypeZ
)

// String returns a human-readable name for the weighting type.
func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeC:
		return "C"
	case TypeZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// MagnitudeDB returns the analog weighting response in dB at freqHz,
// normalized to 0 dB at 1 kHz.
//
// The analog prototypes are:
//
//	R_A(f) = f5² f⁴ / ((f²+f1²) sqrt((f²+f2²)(f²+f4²)) (f²+f5²))
//	R_C(f) = f5² f² / ((f²+f1²) (f²+f5²))
//
// Returns -Inf for freqHz <= 0 on A and C.
func MagnitudeDB(t Type, freqHz float64) float64 {
	if t == TypeZ {
		return 0
	}

	if freqHz <= 0 {
		return math.Inf(-1)
	}

	var r func(float64) float64

	switch t {
	case TypeA:
		r = responseA
	case TypeC:
		r = responseC
	default:
		return math.NaN()
	}

	return core.LinearToDB(r(freqHz) / r(1000))
}

func responseA(f float64) float64 {
	ff := f * f

	return f5 * f5 * ff * ff /
		((ff + f1*f1) * math.Sqrt((ff+f2*f2)*(ff+f4*f4)) * (ff + f5*f5))
}

func responseC(f float64) float64 {
	ff := f * f

	return f5 * f5 * ff / ((ff + f1*f1) * (ff + f5*f5))
}

// Nominal returns the tabulated weighting at a nominal 1/3-octave centre.
// The second result is false when freqHz is not a nominal centre.
func Nominal(t Type, freqHz float64) (float64, bool) {
	idx := nominalIndex(freqHz)
	if idx < 0 {
		return 0, false
	}

	switch t {
	case TypeA:
		return aTable[idx], true
	case TypeC:
		return cTable[idx], true
	case TypeZ:
		return 0, true
	default:
		return 0, false
	}
}

// Corrections returns the tabulated weighting for each band centre in
// freqs, position-aligned with it.
func Corrections(t Type, freqs []float64) ([]float64, error) {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		v, ok := Nominal(t, f)
		if !ok {
			return nil, fmt.Errorf("%w: %g Hz", ErrUnknownFrequency, f)
		}
		out[i] = v
	}

	return out, nil
}

func nominalIndex(freqHz float64) int {
	for i, f := range nominalCenters {
		if f == freqHz {
			return i
		}
	}

	return -1
}

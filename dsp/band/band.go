package band

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mauromussin/opened-window/dsp/core"
	"github.com/mauromussin/opened-window/dsp/weighting"
)

// Errors returned by spectrum construction and summation.
var (
	ErrEmpty          = core.ConfigError("band: spectrum is empty")
	ErrShapeMismatch  = core.ConfigError("band: length mismatch")
	ErrFrequencyOrder = core.ConfigError("band: frequencies must be positive and strictly increasing")
	ErrLevel          = core.ConfigError("band: level must be finite")
	ErrBandCount      = core.ConfigError("band: canonical spectrum needs 7 or 8 levels")
	ErrIndex          = core.ConfigError("band: index out of range")
)

// octaveRatio is G = 10^(3/10) per IEC 61260.
var octaveRatio = math.Pow(10, 0.3)

// canonicalCenters is the recognized band set. The last entry (5 kHz) is
// optional.
var canonicalCenters = []float64{100, 125, 250, 500, 1000, 2000, 4000, 5000}

// CanonicalCenters returns the canonical band centres in Hz, with or
// without the optional 5 kHz band.
func CanonicalCenters(withOptional bool) []float64 {
	n := len(canonicalCenters)
	if !withOptional {
		n--
	}

	return core.Clone(canonicalCenters[:n])
}

// Spectrum is an immutable sequence of band levels in dB at strictly
// increasing centre frequencies in Hz.
type Spectrum struct {
	freqs  []float64
	levels []float64
}

// NewSpectrum validates and copies freqs and levels into a Spectrum.
func NewSpectrum(freqs, levels []float64) (Spectrum, error) {
	if len(freqs) == 0 {
		return Spectrum{}, ErrEmpty
	}

	if len(freqs) != len(levels) {
		return Spectrum{}, fmt.Errorf("%w: %d frequencies, %d levels", ErrShapeMismatch, len(freqs), len(levels))
	}

	for i, f := range freqs {
		if !(f > 0) || math.IsInf(f, 0) || (i > 0 && f <= freqs[i-1]) {
			return Spectrum{}, fmt.Errorf("%w: %g Hz at index %d", ErrFrequencyOrder, f, i)
		}
	}

	for i, l := range levels {
		if !core.IsFinite(l) {
			return Spectrum{}, fmt.Errorf("%w: %v dB at %g Hz", ErrLevel, l, freqs[i])
		}
	}

	return Spectrum{freqs: core.Clone(freqs), levels: core.Clone(levels)}, nil
}

// Canonical builds a spectrum on the canonical band set. Seven levels map
// to 100 Hz to 4 kHz, eight levels add the optional 5 kHz band.
func Canonical(levels ...float64) (Spectrum, error) {
	switch len(levels) {
	case len(canonicalCenters) - 1, len(canonicalCenters):
		return NewSpectrum(canonicalCenters[:len(levels)], levels)
	default:
		return Spectrum{}, fmt.Errorf("%w: got %d", ErrBandCount, len(levels))
	}
}

// Len returns the number of bands.
func (s Spectrum) Len() int { return len(s.freqs) }

// Freq returns the centre frequency of band i.
func (s Spectrum) Freq(i int) float64 { return s.freqs[i] }

// Level returns the level of band i.
func (s Spectrum) Level(i int) float64 { return s.levels[i] }

// Freqs returns a copy of the centre frequencies.
func (s Spectrum) Freqs() []float64 { return core.Clone(s.freqs) }

// Levels returns a copy of the band levels.
func (s Spectrum) Levels() []float64 { return core.Clone(s.levels) }

// WithLevel returns a copy of s with band i set to level.
func (s Spectrum) WithLevel(i int, level float64) (Spectrum, error) {
	if i < 0 || i >= len(s.levels) {
		return Spectrum{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(s.levels))
	}

	levels := core.Clone(s.levels)
	levels[i] = level

	return NewSpectrum(s.freqs, levels)
}

// Shift returns a copy of s with every level offset by db.
func (s Spectrum) Shift(db float64) Spectrum {
	levels := core.Clone(s.levels)
	for i := range levels {
		levels[i] += db
	}

	return Spectrum{freqs: core.Clone(s.freqs), levels: levels}
}

// Weighting is a position-aligned list of per-band corrections in dB.
type Weighting struct {
	corrections []float64
}

// NewWeighting copies a caller-supplied correction table.
func NewWeighting(corrections []float64) (Weighting, error) {
	if len(corrections) == 0 {
		return Weighting{}, ErrEmpty
	}

	for i, c := range corrections {
		if !core.IsFinite(c) {
			return Weighting{}, fmt.Errorf("%w: correction %v at index %d", ErrLevel, c, i)
		}
	}

	return Weighting{corrections: core.Clone(corrections)}, nil
}

// AWeighting returns the IEC 61672 A-weighting table for freqs.
func AWeighting(freqs []float64) (Weighting, error) {
	corr, err := weighting.Corrections(weighting.TypeA, freqs)
	if err != nil {
		return Weighting{}, err
	}

	return NewWeighting(corr)
}

// Len returns the number of corrections.
func (w Weighting) Len() int { return len(w.corrections) }

// Corrections returns a copy of the correction table.
func (w Weighting) Corrections() []float64 { return core.Clone(w.corrections) }

// BroadbandDBA reduces s to one weighted level:
//
//	10·log10( Σ 10^((L_i + W_i)/10) )
//
// It fails with [ErrShapeMismatch] when s and w differ in length.
func BroadbandDBA(s Spectrum, w Weighting) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmpty
	}

	if s.Len() != w.Len() {
		return 0, fmt.Errorf("%w: %d bands, %d corrections", ErrShapeMismatch, s.Len(), w.Len())
	}

	powers := make([]float64, s.Len())
	for i, l := range s.levels {
		powers[i] = core.DBPowerToLinear(l + w.corrections[i])
	}

	return core.LinearPowerToDB(floats.Sum(powers)), nil
}

// Sum returns the energetic sum of levels in dB. An empty input yields -Inf.
func Sum(levels []float64) float64 {
	powers := make([]float64, len(levels))
	for i, l := range levels {
		powers[i] = core.DBPowerToLinear(l)
	}

	return core.LinearPowerToDB(floats.Sum(powers))
}

// Edges returns the lower and upper edge frequencies of the 1/fraction
// octave band centred on center. A non-positive fraction means full octave.
func Edges(center float64, fraction int) (lower, upper float64) {
	if fraction <= 0 {
		fraction = 1
	}

	halfBW := math.Pow(octaveRatio, 1/(2*float64(fraction)))

	return center / halfBW, center * halfBW
}

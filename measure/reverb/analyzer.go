package reverb

import (
	"errors"
	"math"
)

// Errors returned by impulse response analysis.
var (
	ErrEmptyIR           = errors.New("reverb: impulse response is empty")
	ErrInvalidSampleRate = errors.New("reverb: sample rate must be positive")
	ErrNoDecay           = errors.New("reverb: insufficient decay for RT calculation")
)

// schroederFloorDB is the level assigned to zero remaining energy.
const schroederFloorDB = -200

// Metrics holds the decay figures of one impulse response.
type Metrics struct {
	RT60      float64 // reverberation time in seconds (T30, or T20 when T30 is unavailable)
	EDT       float64 // early decay time in seconds (0 to -10 dB)
	T20       float64 // RT from -5 to -25 dB slope
	T30       float64 // RT from -5 to -35 dB slope
	PeakIndex int     // sample index of IR peak (absolute maximum)
}

// Analyzer computes decay metrics from impulse response data.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates an analyzer with the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze computes decay metrics from an impulse response, starting at its
// absolute peak. It fails with [ErrNoDecay] when neither T30 nor T20 can be
// regressed.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if len(ir) == 0 {
		return Metrics{}, ErrEmptyIR
	}

	if !(a.SampleRate > 0) {
		return Metrics{}, ErrInvalidSampleRate
	}

	peakIdx := findPeak(ir)
	schroeder := schroederIntegral(ir[peakIdx:])

	m := Metrics{
		PeakIndex: peakIdx,
		EDT:       a.reverbTime(schroeder, 0, -10),
		T20:       a.reverbTime(schroeder, -5, -25),
		T30:       a.reverbTime(schroeder, -5, -35),
	}

	switch {
	case m.T30 > 0:
		m.RT60 = m.T30
	case m.T20 > 0:
		m.RT60 = m.T20
	default:
		return m, ErrNoDecay
	}

	return m, nil
}

// SchroederIntegral returns the normalized backward-integrated energy decay
// of ir in dB:
//
//	S(t) = 10·log10( ∫_t^∞ h²(τ) dτ / ∫_0^∞ h²(τ) dτ )
func SchroederIntegral(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}

	return schroederIntegral(ir), nil
}

func schroederIntegral(ir []float64) []float64 {
	n := len(ir)
	result := make([]float64, n)

	var cumSum float64
	for i := n - 1; i >= 0; i-- {
		cumSum += ir[i] * ir[i]
		result[i] = cumSum
	}

	totalEnergy := result[0]
	if totalEnergy <= 0 {
		for i := range result {
			result[i] = schroederFloorDB
		}
		return result
	}

	for i := range result {
		ratio := result[i] / totalEnergy
		if ratio <= 0 {
			result[i] = schroederFloorDB
		} else {
			result[i] = 10 * math.Log10(ratio)
		}
	}

	return result
}

// reverbTime regresses the Schroeder curve between startDB and endDB and
// extrapolates the slope to -60 dB. Returns 0 when the range is not reached.
func (a *Analyzer) reverbTime(schroeder []float64, startDB, endDB float64) float64 {
	startIdx, endIdx := -1, -1

	for i, v := range schroeder {
		if startIdx < 0 && v <= startDB {
			startIdx = i
		}

		if startIdx >= 0 && v <= endDB {
			endIdx = i
			break
		}
	}

	if startIdx < 0 || endIdx <= startIdx {
		return 0
	}

	var sumX, sumY, sumXX, sumXY float64

	n := endIdx - startIdx + 1
	for i := startIdx; i <= endIdx; i++ {
		x := float64(i - startIdx)
		y := schroeder[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	nf := float64(n)

	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	// dB per sample
	slope := (nf*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0
	}

	return -60.0 / (slope * a.SampleRate)
}

func findPeak(ir []float64) int {
	peakIdx := 0
	peak := 0.0

	for i, v := range ir {
		if av := math.Abs(v); av > peak {
			peak = av
			peakIdx = i
		}
	}

	return peakIdx
}

package facade

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/mauromussin/opened-window/dsp/core"
)

// ErrAngleGrid is returned for an empty or reversed angle grid.
var ErrAngleGrid = core.ConfigError("facade: angle grid needs start <= stop < 90 and step > 0")

// Result is the outcome of one evaluation. Levels are in dB(A).
type Result struct {
	Angle               float64 // incidence in degrees
	Exterior            float64 // level on the facade
	Interior            float64 // level at the receiver
	Attenuation         float64 // Exterior − Interior
	BaselineInterior    float64 // interior without directivity and diffraction
	BaselineAttenuation float64 // Exterior − BaselineInterior
	Bonus               float64 // Attenuation − BaselineAttenuation
	Bands               []BandResult
}

// BandResult holds the per-band terms of one evaluation, in dB unless
// stated otherwise.
type BandResult struct {
	Freq             float64 // Hz
	Incident         float64
	FacadeGain       float64
	Exterior         float64
	Fresnel          float64 // dimensionless
	Diffraction      float64
	Directivity      float64 // linear factor in [0, 1]
	Interior         float64
	BaselineInterior float64
}

// Angles returns start, start+step, ... up to and including stop when it
// lies on the grid.
func Angles(start, stop, step float64) ([]float64, error) {
	if !(step > 0) || !(start >= 0) || !(stop >= start) || !(stop < MaxAngle) {
		return nil, fmt.Errorf("%w: %g..%g step %g", ErrAngleGrid, start, stop, step)
	}

	n := int((stop-start)/step+1e-9) + 1
	if n == 1 {
		return []float64{start}, nil
	}

	return floats.Span(make([]float64, n), start, start+float64(n-1)*step), nil
}

// PolarGrid returns the 0°..89° grid at 1° steps.
func PolarGrid() []float64 {
	grid, _ := Angles(0, 89, 1)
	return grid
}

// Attenuations extracts the attenuation of each result.
func Attenuations(results []Result) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Attenuation
	}
	return out
}

// Extremes returns the results with the lowest and highest attenuation.
// ok is false for an empty input.
func Extremes(results []Result) (lo, hi Result, ok bool) {
	if len(results) == 0 {
		return Result{}, Result{}, false
	}

	att := Attenuations(results)

	return results[floats.MinIdx(att)], results[floats.MaxIdx(att)], true
}

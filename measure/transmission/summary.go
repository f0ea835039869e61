package transmission

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/mauromussin/opened-window/dsp/core"
)

// DefaultArrivalThresholdDB is the level below the peak at which a probe
// first counts as reached by the wave.
const DefaultArrivalThresholdDB = -20.0

// Summary holds the time-domain figures of one probe series.
type Summary struct {
	Length  int
	Energy  float64 // Σx²
	RMS     float64
	RMSdB   float64
	Peak    float64 // max |x|
	PeakPos int
	PeakdB  float64
	CrestdB float64 // peak over RMS
	Arrival int     // first index within the arrival threshold of the peak, -1 when silent
}

// Summarize computes the [Summary] of series. thresholdDB is the arrival
// level relative to the peak; a non-negative value selects
// [DefaultArrivalThresholdDB].
func Summarize(series []float64, thresholdDB float64) Summary {
	s := Summary{
		Length:  len(series),
		RMSdB:   math.Inf(-1),
		PeakdB:  math.Inf(-1),
		CrestdB: math.Inf(-1),
		Arrival: -1,
	}
	if len(series) == 0 {
		return s
	}
	if thresholdDB >= 0 {
		thresholdDB = DefaultArrivalThresholdDB
	}

	s.Energy = Energy(series)
	s.Peak = vecmath.MaxAbs(series)
	if s.Peak == 0 {
		return s
	}

	abs := make([]float64, len(series))
	for i, v := range series {
		abs[i] = math.Abs(v)
	}
	s.PeakPos = floats.MaxIdx(abs)

	s.RMS = math.Sqrt(s.Energy / float64(len(series)))
	s.RMSdB = core.LinearToDB(s.RMS)
	s.PeakdB = core.LinearToDB(s.Peak)
	s.CrestdB = s.PeakdB - s.RMSdB

	level := s.Peak * core.DBToLinear(thresholdDB)
	for i, a := range abs {
		if a >= level {
			s.Arrival = i
			break
		}
	}

	return s
}

package facade

import (
	"fmt"
	"math"
	"strings"

	"github.com/mauromussin/opened-window/dsp/core"
)

// DefaultSpeedOfSound is the speed of sound in air in m/s.
const DefaultSpeedOfSound = 343.0

const (
	// referenceSpreading normalizes point-source spreading to the level at
	// 1 m: 10·log10(4π) ≈ 11 dB.
	referenceSpreading = 11.0

	// empiricalFacadeGain is the pressure doubling in front of a
	// reflecting facade, before the typology correction.
	empiricalFacadeGain = 3.0

	// coherentGuard keeps the interference argument positive when R ≈ 1
	// and the cosine term is close to -1.
	coherentGuard = 1e-10
)

// Errors returned by model selection.
var (
	ErrGainModel    = core.ConfigError("facade: unknown facade gain model")
	ErrLossModel    = core.ConfigError("facade: unknown diffraction loss model")
	ErrSpeedOfSound = core.ConfigError("facade: speed of sound must be positive")
)

// GainModel selects the facade gain formulation.
type GainModel int

const (
	// GainEmpirical is +3 dB minus the typology offset.
	GainEmpirical GainModel = iota

	// GainCoherent is the image-source interference of the direct and the
	// facade-reflected wave: 10·log10(1 + R² + 2R·cos(kΔp)), R = sqrt(1−α).
	GainCoherent
)

// String returns the model name.
func (m GainModel) String() string {
	switch m {
	case GainEmpirical:
		return "empirical"
	case GainCoherent:
		return "coherent"
	default:
		return "unknown"
	}
}

// ParseGainModel resolves a gain model by name.
func ParseGainModel(name string) (GainModel, error) {
	for _, m := range []GainModel{GainEmpirical, GainCoherent} {
		if strings.EqualFold(strings.TrimSpace(name), m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrGainModel, name)
}

// Gain returns the facade gain in dB for wavenumber k.
func (m GainModel) Gain(g Geometry, k float64) float64 {
	if m == GainCoherent {
		r := math.Sqrt(1 - g.Absorption)
		return 10 * math.Log10(1+r*r+2*r*math.Cos(k*g.PathDifference)+coherentGuard)
	}
	return empiricalFacadeGain - g.Typology.Offset()
}

// LossModel selects the Maekawa diffraction loss formulation.
type LossModel int

const (
	// LossSimple is 10·log10(3 + 20N).
	LossSimple LossModel = iota

	// LossRefined is 20·log10(sqrt(2πN) / tanh(sqrt(2πN))).
	LossRefined
)

// String returns the model name.
func (m LossModel) String() string {
	switch m {
	case LossSimple:
		return "simple"
	case LossRefined:
		return "refined"
	default:
		return "unknown"
	}
}

// ParseLossModel resolves a loss model by name.
func ParseLossModel(name string) (LossModel, error) {
	for _, m := range []LossModel{LossSimple, LossRefined} {
		if strings.EqualFold(strings.TrimSpace(name), m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLossModel, name)
}

// Loss returns the diffraction loss in dB for Fresnel number n.
// It is 0 for n <= 0 and non-negative otherwise.
func (m LossModel) Loss(n float64) float64 {
	if !(n > 0) {
		return 0
	}

	if m == LossRefined {
		x := math.Sqrt(2 * math.Pi * n)
		// x/tanh(x) >= 1; rounding at tiny x must not turn it into a gain.
		return math.Max(0, 20*math.Log10(x/math.Tanh(x)))
	}
	return 10 * math.Log10(3+20*n)
}

// PathExcess returns the extra path δ = s·(1 − cos θ) that the jamb of
// thickness s imposes at incidence theta (radians).
func PathExcess(thickness, theta float64) float64 {
	return thickness * (1 - math.Cos(theta))
}

// FresnelNumber returns N = 2δf/c.
func FresnelNumber(delta, freq, c float64) float64 {
	return 2 * delta * freq / c
}

// Directivity returns the far-field slit factor sinc²(ψ/π), ψ = (k·w/2)·sin θ,
// for wavenumber k, aperture width w and incidence theta (radians).
func Directivity(k, width, theta float64) float64 {
	psi := k * width / 2 * math.Sin(theta)
	s := core.Sinc(psi / math.Pi)
	return s * s
}

// Wavenumber returns k = 2πf/c.
func Wavenumber(freq, c float64) float64 {
	return 2 * math.Pi * freq / c
}

// IncidentLevel returns the level at the 1 m reference point of a source of
// power level lw at distance d.
func IncidentLevel(lw, d float64) float64 {
	return lw - 20*math.Log10(d) - referenceSpreading
}

package facade

import (
	"fmt"
	"math"

	"github.com/mauromussin/opened-window/dsp/band"
	"github.com/mauromussin/opened-window/dsp/core"
	"github.com/mauromussin/opened-window/measure/reverb"
)

// ErrAngle is returned for incidence angles outside [0°, 90°).
var ErrAngle = core.ConfigError("facade: incidence angle must be in [0, 90) degrees")

// MaxAngle is the first excluded incidence angle in degrees. Grazing
// incidence is a singularity of the model and is never evaluated.
const MaxAngle = 90.0

type engineConfig struct {
	gain         GainModel
	loss         LossModel
	speedOfSound float64
	weighting    *band.Weighting
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithGainModel selects the facade gain formulation. Defaults to
// [GainEmpirical].
func WithGainModel(m GainModel) Option {
	return func(cfg *engineConfig) { cfg.gain = m }
}

// WithLossModel selects the diffraction loss formulation. Defaults to
// [LossSimple].
func WithLossModel(m LossModel) Option {
	return func(cfg *engineConfig) { cfg.loss = m }
}

// WithSpeedOfSound sets c in m/s. Defaults to [DefaultSpeedOfSound].
func WithSpeedOfSound(c float64) Option {
	return func(cfg *engineConfig) { cfg.speedOfSound = c }
}

// WithWeighting replaces the A-weighting table derived from the spectrum
// bands with a caller table. Its length must match every evaluated spectrum.
func WithWeighting(w band.Weighting) Option {
	return func(cfg *engineConfig) { cfg.weighting = &w }
}

// Engine evaluates the facade model. It holds no mutable state; one Engine
// may serve any number of evaluations.
type Engine struct {
	cfg engineConfig
}

// New builds an Engine. Invalid options are rejected, not replaced by
// defaults.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		gain:         GainEmpirical,
		loss:         LossSimple,
		speedOfSound: DefaultSpeedOfSound,
	}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	switch {
	case cfg.gain != GainEmpirical && cfg.gain != GainCoherent:
		return nil, fmt.Errorf("%w: %d", ErrGainModel, int(cfg.gain))
	case cfg.loss != LossSimple && cfg.loss != LossRefined:
		return nil, fmt.Errorf("%w: %d", ErrLossModel, int(cfg.loss))
	case !(cfg.speedOfSound > 0) || !core.IsFinite(cfg.speedOfSound):
		return nil, fmt.Errorf("%w: %g m/s", ErrSpeedOfSound, cfg.speedOfSound)
	}

	return &Engine{cfg: cfg}, nil
}

// GainModel returns the configured facade gain model.
func (e *Engine) GainModel() GainModel { return e.cfg.gain }

// LossModel returns the configured diffraction loss model.
func (e *Engine) LossModel() LossModel { return e.cfg.loss }

// Evaluate computes exterior and interior spectra at incidence angleDeg and
// reduces them to an attenuation in dB(A).
func (e *Engine) Evaluate(angleDeg float64, s band.Spectrum, g Geometry) (Result, error) {
	p, err := e.prepare(s, g)
	if err != nil {
		return Result{}, err
	}

	if err := checkAngle(angleDeg); err != nil {
		return Result{}, err
	}

	return e.evaluate(angleDeg, s, g, p)
}

// Sweep evaluates every angle in order. All inputs are validated before
// the first evaluation; the result has the length and order of angles.
func (e *Engine) Sweep(angles []float64, s band.Spectrum, g Geometry) ([]Result, error) {
	p, err := e.prepare(s, g)
	if err != nil {
		return nil, err
	}

	for _, a := range angles {
		if err := checkAngle(a); err != nil {
			return nil, err
		}
	}

	out := make([]Result, len(angles))
	for i, a := range angles {
		r, err := e.evaluate(a, s, g, p)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// prepared holds the per-call values that do not depend on the angle.
type prepared struct {
	model band.Model
	area  float64
}

func (e *Engine) prepare(s band.Spectrum, g Geometry) (prepared, error) {
	if err := g.Validate(); err != nil {
		return prepared{}, err
	}

	var (
		m   band.Model
		err error
	)
	if e.cfg.weighting != nil {
		m, err = band.NewModel(s, *e.cfg.weighting)
	} else {
		m, err = band.NewAModel(s)
	}
	if err != nil {
		return prepared{}, err
	}

	area, err := reverb.SabineArea(g.RoomVolume, g.RT60)
	if err != nil {
		return prepared{}, err
	}

	return prepared{model: m, area: area}, nil
}

func checkAngle(deg float64) error {
	if !(deg >= 0 && deg < MaxAngle) {
		return fmt.Errorf("%w: %g°", ErrAngle, deg)
	}
	return nil
}

func (e *Engine) evaluate(angleDeg float64, s band.Spectrum, g Geometry, p prepared) (Result, error) {
	theta := core.Radians(angleDeg)
	cosT := math.Cos(theta)
	c := e.cfg.speedOfSound

	freqs := s.Freqs()
	n := len(freqs)
	ext := make([]float64, n)
	in := make([]float64, n)
	base := make([]float64, n)
	bands := make([]BandResult, n)

	reverberant := 4 * cosT / p.area
	spreading := 2 * math.Pi * g.InteriorDistance * g.InteriorDistance
	delta := PathExcess(g.Thickness, theta)

	for i, f := range freqs {
		k := Wavenumber(f, c)
		incident := IncidentLevel(s.Level(i), g.SourceDistance)
		gain := e.cfg.gain.Gain(g, k)
		exterior := incident + gain

		fresnel := FresnelNumber(delta, f, c)
		loss := e.cfg.loss.Loss(fresnel)
		dir := Directivity(k, g.Width, theta)

		ext[i] = exterior
		in[i] = interiorLevel(exterior, dir, cosT, spreading, reverberant, loss)
		base[i] = interiorLevel(exterior, 1, cosT, spreading, reverberant, 0)

		bands[i] = BandResult{
			Freq:             f,
			Incident:         incident,
			FacadeGain:       gain,
			Exterior:         exterior,
			Fresnel:          fresnel,
			Diffraction:      loss,
			Directivity:      dir,
			Interior:         in[i],
			BaselineInterior: base[i],
		}
	}

	extDBA, err := reduce(freqs, ext, p.model)
	if err != nil {
		return Result{}, err
	}
	inDBA, err := reduce(freqs, in, p.model)
	if err != nil {
		return Result{}, err
	}
	baseDBA, err := reduce(freqs, base, p.model)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		Angle:               angleDeg,
		Exterior:            extDBA,
		Interior:            inDBA,
		Attenuation:         extDBA - inDBA,
		BaselineInterior:    baseDBA,
		BaselineAttenuation: extDBA - baseDBA,
		Bands:               bands,
	}
	r.Bonus = r.Attenuation - r.BaselineAttenuation

	return r, nil
}

// interiorLevel combines the direct beam and the reverberant intensity
// relative to the exterior level, then removes the diffraction loss.
func interiorLevel(exterior, dir, cosT, spreading, reverberant, loss float64) float64 {
	direct := dir * cosT / spreading
	return exterior + core.GuardedPowerToDB(direct+reverberant, core.LogFloor) - loss
}

func reduce(freqs, levels []float64, m band.Model) (float64, error) {
	s, err := band.NewSpectrum(freqs, levels)
	if err != nil {
		return 0, err
	}
	return m.Reduce(s)
}

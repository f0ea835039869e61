// Package scenario loads the YAML files describing a facade and a wave
// simulation run. Unset keys keep the built-in scenario values; unknown
// keys are rejected.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromussin/opened-window/dsp/band"
	"github.com/mauromussin/opened-window/sim/facade"
	"github.com/mauromussin/opened-window/sim/fdtd"
)

// ErrDecode wraps YAML syntax and unknown-key errors.
var ErrDecode = errors.New("scenario: decode")

// Scenario is the file layout.
type Scenario struct {
	Spectrum Spectrum `yaml:"spectrum"`
	Geometry Geometry `yaml:"geometry"`
	Model    Model    `yaml:"model"`
	Sweep    Sweep    `yaml:"sweep"`
	FDTD     FDTD     `yaml:"fdtd"`
}

// Spectrum lists octave band levels in dB. Without Freqs the levels map to
// the canonical centres (7 or 8 bands).
type Spectrum struct {
	Freqs  []float64 `yaml:"freqs,omitempty"`
	Levels []float64 `yaml:"levels"`
}

// Geometry mirrors facade.Geometry with a named typology.
type Geometry struct {
	Thickness        float64 `yaml:"thickness"`
	Width            float64 `yaml:"width"`
	Absorption       float64 `yaml:"absorption"`
	Typology         string  `yaml:"typology"`
	SourceDistance   float64 `yaml:"source_distance"`
	InteriorDistance float64 `yaml:"interior_distance"`
	RT60             float64 `yaml:"rt60"`
	RoomVolume       float64 `yaml:"room_volume"`
	PathDifference   float64 `yaml:"path_difference"`
}

// Model selects the facade formulations.
type Model struct {
	Gain         string  `yaml:"gain"`
	Loss         string  `yaml:"loss"`
	SpeedOfSound float64 `yaml:"speed_of_sound"`
}

// Sweep is the polar angle grid in degrees.
type Sweep struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

// FDTD mirrors fdtd.Config.
type FDTD struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	WallX         int     `yaml:"wall_x"`
	WallThickness int     `yaml:"wall_thickness"`
	Gap           int     `yaml:"gap"`
	GapCenter     int     `yaml:"gap_center"`
	SourceColumn  int     `yaml:"source_column"`
	Carrier       float64 `yaml:"carrier"`
	Envelope      float64 `yaml:"envelope"`
	PulseCenter   float64 `yaml:"pulse_center"`
	IncidenceDeg  float64 `yaml:"incidence"`
	Steps         int     `yaml:"steps"`
	Stride        int     `yaml:"stride"`
	Courant       float64 `yaml:"courant"`
	Probes        []Probe `yaml:"probes,omitempty"`
}

// Probe is a receiver cell.
type Probe struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Default returns the reference scenario: the 7-band road traffic
// spectrum, [facade.DefaultGeometry], the empirical gain with the simple
// loss, a 0–89° sweep and [fdtd.DefaultConfig] with a probe behind the
// aperture.
func Default() Scenario {
	g := facade.DefaultGeometry()
	c := fdtd.DefaultConfig()

	return Scenario{
		Spectrum: Spectrum{Levels: []float64{106, 105, 102, 100, 98, 95, 90}},
		Geometry: Geometry{
			Thickness:        g.Thickness,
			Width:            g.Width,
			Absorption:       g.Absorption,
			Typology:         g.Typology.String(),
			SourceDistance:   g.SourceDistance,
			InteriorDistance: g.InteriorDistance,
			RT60:             g.RT60,
			RoomVolume:       g.RoomVolume,
			PathDifference:   g.PathDifference,
		},
		Model: Model{
			Gain:         facade.GainEmpirical.String(),
			Loss:         facade.LossSimple.String(),
			SpeedOfSound: facade.DefaultSpeedOfSound,
		},
		Sweep: Sweep{Start: 0, Stop: 89, Step: 1},
		FDTD: FDTD{
			Width:         c.Width,
			Height:        c.Height,
			WallX:         c.WallX,
			WallThickness: c.WallThickness,
			Gap:           c.Gap,
			GapCenter:     c.GapCenter,
			SourceColumn:  c.SourceColumn,
			Carrier:       c.Carrier,
			Envelope:      c.Envelope,
			PulseCenter:   c.PulseCenter,
			IncidenceDeg:  c.IncidenceDeg,
			Steps:         c.Steps,
			Stride:        c.Stride,
			Courant:       c.Courant,
			Probes:        []Probe{{X: c.WallX + c.WallThickness + 9, Y: c.Height / 2}},
		},
	}
}

// Decode reads a scenario from r on top of [Default].
func Decode(r io.Reader) (Scenario, error) {
	sc := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return sc, nil
}

// Load decodes the scenario file at path.
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes sc as YAML.
func Encode(w io.Writer, sc Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}
	return enc.Close()
}

// BandSpectrum builds the octave band spectrum.
func (sc Scenario) BandSpectrum() (band.Spectrum, error) {
	if len(sc.Spectrum.Freqs) == 0 {
		return band.Canonical(sc.Spectrum.Levels...)
	}
	return band.NewSpectrum(sc.Spectrum.Freqs, sc.Spectrum.Levels)
}

// FacadeGeometry resolves the typology and validates the geometry.
func (sc Scenario) FacadeGeometry() (facade.Geometry, error) {
	typ, err := facade.ParseTypology(sc.Geometry.Typology)
	if err != nil {
		return facade.Geometry{}, err
	}

	g := facade.Geometry{
		Thickness:        sc.Geometry.Thickness,
		Width:            sc.Geometry.Width,
		Absorption:       sc.Geometry.Absorption,
		Typology:         typ,
		SourceDistance:   sc.Geometry.SourceDistance,
		InteriorDistance: sc.Geometry.InteriorDistance,
		RT60:             sc.Geometry.RT60,
		RoomVolume:       sc.Geometry.RoomVolume,
		PathDifference:   sc.Geometry.PathDifference,
	}

	return g, g.Validate()
}

// Engine builds the facade engine of the model section.
func (sc Scenario) Engine() (*facade.Engine, error) {
	gain, err := facade.ParseGainModel(sc.Model.Gain)
	if err != nil {
		return nil, err
	}
	loss, err := facade.ParseLossModel(sc.Model.Loss)
	if err != nil {
		return nil, err
	}

	return facade.New(
		facade.WithGainModel(gain),
		facade.WithLossModel(loss),
		facade.WithSpeedOfSound(sc.Model.SpeedOfSound),
	)
}

// Angles builds the sweep grid.
func (sc Scenario) Angles() ([]float64, error) {
	return facade.Angles(sc.Sweep.Start, sc.Sweep.Stop, sc.Sweep.Step)
}

// SimulationConfig builds and validates the FDTD configuration.
func (sc Scenario) SimulationConfig() (fdtd.Config, error) {
	f := sc.FDTD
	cfg := fdtd.Config{
		Width:         f.Width,
		Height:        f.Height,
		WallX:         f.WallX,
		WallThickness: f.WallThickness,
		Gap:           f.Gap,
		GapCenter:     f.GapCenter,
		SourceColumn:  f.SourceColumn,
		Carrier:       f.Carrier,
		Envelope:      f.Envelope,
		PulseCenter:   f.PulseCenter,
		IncidenceDeg:  f.IncidenceDeg,
		Steps:         f.Steps,
		Stride:        f.Stride,
		Courant:       f.Courant,
	}
	for _, p := range f.Probes {
		cfg.Probes = append(cfg.Probes, fdtd.Cell{X: p.X, Y: p.Y})
	}

	return cfg, cfg.Validate()
}

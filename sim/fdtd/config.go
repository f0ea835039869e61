package fdtd

import (
	"fmt"

	"github.com/mauromussin/opened-window/dsp/core"
)

// Scenario defaults.
const (
	DefaultWidth         = 120
	DefaultHeight        = 80
	DefaultWallX         = 45
	DefaultWallThickness = 6
	DefaultGap           = 16
	DefaultSourceColumn  = 5
	DefaultCarrier       = 0.4
	DefaultEnvelope      = 0.01
	DefaultPulseCenter   = 30.0
	DefaultSteps         = 150
	DefaultStride        = 6
	DefaultCourant       = 0.25

	// MaxCourant is the stability bound of the 2D 5-point scheme.
	MaxCourant = 0.5

	minGridSize = 3
)

// Errors returned by [Config.Validate].
var (
	ErrGridSize     = core.ConfigError("fdtd: grid must be at least 3×3")
	ErrWall         = core.ConfigError("fdtd: wall must lie inside the grid")
	ErrGap          = core.ConfigError("fdtd: aperture must fit inside the wall height")
	ErrSourceColumn = core.ConfigError("fdtd: source column must lie inside the grid, left of the wall")
	ErrCarrier      = core.ConfigError("fdtd: carrier rate must be positive")
	ErrEnvelope     = core.ConfigError("fdtd: envelope rate must be positive")
	ErrPulseCenter  = core.ConfigError("fdtd: pulse center must be finite")
	ErrIncidence    = core.ConfigError("fdtd: incidence must be in [0, 90) degrees")
	ErrSteps        = core.ConfigError("fdtd: step count must be positive")
	ErrStride       = core.ConfigError("fdtd: stride must be positive")
	ErrCourant      = core.ConfigError("fdtd: Courant coefficient must be in (0, 0.5]")
	ErrProbe        = core.ConfigError("fdtd: probe outside the grid")
)

// Cell addresses one grid cell.
type Cell struct {
	X, Y int
}

// Config describes one simulation. Lengths are in cells, times in steps.
type Config struct {
	Width, Height int

	WallX         int // first wall column
	WallThickness int // 0 disables the wall
	Gap           int // aperture height in rows
	GapCenter     int // aperture centre row; 0 selects Height/2

	SourceColumn int     // 0 selects DefaultSourceColumn
	Carrier      float64 // ω in rad/step
	Envelope     float64 // β in 1/step²
	PulseCenter  float64 // t₀ in steps
	IncidenceDeg float64

	Steps   int
	Stride  int // a frame is emitted after step t when t%Stride == 0
	Courant float64

	Probes []Cell // cells whose pressure is recorded every step
}

// DefaultConfig returns the 120×80 scenario: a 6 cell wall at column 45
// with a 16 row aperture centred at row 40, normal incidence, 150 steps.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		WallX:         DefaultWallX,
		WallThickness: DefaultWallThickness,
		Gap:           DefaultGap,
		GapCenter:     DefaultHeight / 2,
		SourceColumn:  DefaultSourceColumn,
		Carrier:       DefaultCarrier,
		Envelope:      DefaultEnvelope,
		PulseCenter:   DefaultPulseCenter,
		Steps:         DefaultSteps,
		Stride:        DefaultStride,
		Courant:       DefaultCourant,
	}
}

func (c Config) gapCenter() int {
	if c.GapCenter == 0 {
		return c.Height / 2
	}
	return c.GapCenter
}

func (c Config) sourceColumn() int {
	if c.SourceColumn == 0 {
		return DefaultSourceColumn
	}
	return c.SourceColumn
}

// gapRows returns the half-open row range of the aperture.
func (c Config) gapRows() (lo, hi int) {
	lo = c.gapCenter() - c.Gap/2
	return lo, lo + c.Gap
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	if c.Width < minGridSize || c.Height < minGridSize {
		return fmt.Errorf("%w: %d×%d", ErrGridSize, c.Width, c.Height)
	}

	if c.WallThickness < 0 || c.WallX < 0 || c.WallX+c.WallThickness > c.Width {
		return fmt.Errorf("%w: columns [%d, %d) in width %d", ErrWall, c.WallX, c.WallX+c.WallThickness, c.Width)
	}

	if lo, hi := c.gapRows(); c.Gap < 0 || c.Gap >= c.Height || lo < 0 || hi > c.Height {
		return fmt.Errorf("%w: rows [%d, %d) in height %d", ErrGap, lo, hi, c.Height)
	}

	if src := c.sourceColumn(); src < 0 || src >= c.Width || (c.WallThickness > 0 && src >= c.WallX) {
		return fmt.Errorf("%w: column %d, wall at %d", ErrSourceColumn, src, c.WallX)
	}

	switch {
	case !(c.Carrier > 0) || !core.IsFinite(c.Carrier):
		return fmt.Errorf("%w: %g", ErrCarrier, c.Carrier)
	case !(c.Envelope > 0) || !core.IsFinite(c.Envelope):
		return fmt.Errorf("%w: %g", ErrEnvelope, c.Envelope)
	case !core.IsFinite(c.PulseCenter):
		return fmt.Errorf("%w: %g", ErrPulseCenter, c.PulseCenter)
	case !(c.IncidenceDeg >= 0 && c.IncidenceDeg < 90):
		return fmt.Errorf("%w: %g°", ErrIncidence, c.IncidenceDeg)
	case c.Steps <= 0:
		return fmt.Errorf("%w: %d", ErrSteps, c.Steps)
	case c.Stride <= 0:
		return fmt.Errorf("%w: %d", ErrStride, c.Stride)
	case !(c.Courant > 0 && c.Courant <= MaxCourant):
		return fmt.Errorf("%w: %g", ErrCourant, c.Courant)
	}

	for i, p := range c.Probes {
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height {
			return fmt.Errorf("%w: probe %d at (%d, %d)", ErrProbe, i, p.X, p.Y)
		}
	}

	return nil
}

// FrameCount returns the number of frames a full run emits.
func (c Config) FrameCount() int {
	if c.Steps <= 0 || c.Stride <= 0 {
		return 0
	}
	return (c.Steps + c.Stride - 1) / c.Stride
}

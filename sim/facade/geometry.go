package facade

import (
	"fmt"
	"strings"

	"github.com/mauromussin/opened-window/dsp/core"
)

// Errors returned by geometry validation.
var (
	ErrThickness        = core.ConfigError("facade: jamb thickness must be non-negative")
	ErrWidth            = core.ConfigError("facade: aperture width must be positive")
	ErrAbsorption       = core.ConfigError("facade: absorption coefficient must be in [0, 1]")
	ErrSourceDistance   = core.ConfigError("facade: source distance must be positive")
	ErrInteriorDistance = core.ConfigError("facade: interior distance must be positive")
	ErrRT60             = core.ConfigError("facade: reverberation time must be positive")
	ErrRoomVolume       = core.ConfigError("facade: room volume must be positive")
	ErrPathDifference   = core.ConfigError("facade: path difference must be non-negative")
	ErrTypology         = core.ConfigError("facade: unknown facade typology")
)

// DefaultRoomVolume is the reference room volume in m³.
const DefaultRoomVolume = 50.0

// Typology is a named facade shape. Each maps to a fixed level offset that
// the empirical facade gain subtracts from +3 dB.
type Typology int

const (
	TypologyPlain Typology = iota
	TypologyBalcony
	TypologyTerrace
	TypologyGallery
	TypologyLoggia
)

var typologies = []struct {
	name   string
	offset float64
}{
	TypologyPlain:   {"plain", 0},
	TypologyBalcony: {"balcony", 1},
	TypologyTerrace: {"terrace", 1.5},
	TypologyGallery: {"gallery", 2},
	TypologyLoggia:  {"loggia", 3},
}

// Typologies lists every known typology in declaration order.
func Typologies() []Typology {
	out := make([]Typology, len(typologies))
	for i := range typologies {
		out[i] = Typology(i)
	}
	return out
}

func (t Typology) valid() bool { return t >= 0 && int(t) < len(typologies) }

// String returns the typology name.
func (t Typology) String() string {
	if !t.valid() {
		return "unknown"
	}
	return typologies[t].name
}

// Offset returns the shape-factor correction in dB.
func (t Typology) Offset() float64 {
	if !t.valid() {
		return 0
	}
	return typologies[t].offset
}

// ParseTypology resolves a typology by name, case-insensitively.
func ParseTypology(name string) (Typology, error) {
	for i, ty := range typologies {
		if strings.EqualFold(strings.TrimSpace(name), ty.name) {
			return Typology(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrTypology, name)
}

// Geometry is the facade, aperture and room description. All lengths are
// in metres.
type Geometry struct {
	Thickness        float64  // jamb thickness s
	Width            float64  // aperture width w
	Absorption       float64  // facade absorption α
	Typology         Typology // facade shape for the empirical gain
	SourceDistance   float64  // source to facade d_src
	InteriorDistance float64  // aperture to receiver d_int
	RT60             float64  // room reverberation time in seconds
	RoomVolume       float64  // room volume in m³
	PathDifference   float64  // direct/reflected path difference Δp for the coherent gain
}

// DefaultGeometry returns a 20 cm jamb, a 1 m window, a source 20 m away
// and a receiver 2 m inside a 50 m³ room with RT60 = 0.5 s.
func DefaultGeometry() Geometry {
	return Geometry{
		Thickness:        0.2,
		Width:            1.0,
		Absorption:       0.05,
		Typology:         TypologyPlain,
		SourceDistance:   20,
		InteriorDistance: 2.0,
		RT60:             0.5,
		RoomVolume:       DefaultRoomVolume,
		PathDifference:   0.5,
	}
}

// Validate reports the first out-of-domain parameter. Parameters that end
// up in a denominator must be strictly positive.
func (g Geometry) Validate() error {
	switch {
	case !(g.Thickness >= 0) || !core.IsFinite(g.Thickness):
		return fmt.Errorf("%w: %g m", ErrThickness, g.Thickness)
	case !(g.Width > 0) || !core.IsFinite(g.Width):
		return fmt.Errorf("%w: %g m", ErrWidth, g.Width)
	case !(g.Absorption >= 0 && g.Absorption <= 1):
		return fmt.Errorf("%w: %g", ErrAbsorption, g.Absorption)
	case !g.Typology.valid():
		return fmt.Errorf("%w: %d", ErrTypology, int(g.Typology))
	case !(g.SourceDistance > 0) || !core.IsFinite(g.SourceDistance):
		return fmt.Errorf("%w: %g m", ErrSourceDistance, g.SourceDistance)
	case !(g.InteriorDistance > 0) || !core.IsFinite(g.InteriorDistance):
		return fmt.Errorf("%w: %g m", ErrInteriorDistance, g.InteriorDistance)
	case !(g.RT60 > 0) || !core.IsFinite(g.RT60):
		return fmt.Errorf("%w: %g s", ErrRT60, g.RT60)
	case !(g.RoomVolume > 0) || !core.IsFinite(g.RoomVolume):
		return fmt.Errorf("%w: %g m³", ErrRoomVolume, g.RoomVolume)
	case !(g.PathDifference >= 0) || !core.IsFinite(g.PathDifference):
		return fmt.Errorf("%w: %g m", ErrPathDifference, g.PathDifference)
	}
	return nil
}

package fdtd

import "github.com/mauromussin/opened-window/dsp/core"

// Mask is the transmission mask: 1 where sound propagates, 0 inside the
// wall. It is immutable once built and shared by every frame of a session.
type Mask struct {
	width, height int
	data          []float64
	open          int
}

// NewMask builds the mask of a validated configuration.
func NewMask(cfg Config) (*Mask, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return buildMask(cfg), nil
}

func buildMask(cfg Config) *Mask {
	m := &Mask{
		width:  cfg.Width,
		height: cfg.Height,
		data:   make([]float64, cfg.Width*cfg.Height),
	}
	for i := range m.data {
		m.data[i] = 1
	}

	lo, hi := cfg.gapRows()
	for x := cfg.WallX; x < cfg.WallX+cfg.WallThickness; x++ {
		col := m.data[x*cfg.Height : (x+1)*cfg.Height]
		for y := range col {
			if y < lo || y >= hi {
				col[y] = 0
			}
		}
	}

	for _, v := range m.data {
		if v != 0 {
			m.open++
		}
	}

	return m
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// Open reports whether sound propagates through cell (x, y).
func (m *Mask) Open(x, y int) bool { return m.data[x*m.height+y] != 0 }

// OpenCells returns the number of propagating cells.
func (m *Mask) OpenCells() int { return m.open }

// Blocked returns the number of wall cells.
func (m *Mask) Blocked() int { return len(m.data) - m.open }

// Field returns the mask as a 0/1 field for rendering.
func (m *Mask) Field() Field {
	return newField(m.width, m.height, core.Clone(m.data))
}

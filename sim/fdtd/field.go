package fdtd

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/mauromussin/opened-window/dsp/core"
)

// Field is a Width×Height pressure snapshot stored column-major: the
// sample at (x, y) sits at index x·Height + y.
type Field struct {
	width, height int
	data          []float64
}

func newField(width, height int, data []float64) Field {
	return Field{width: width, height: height, data: data}
}

// Width returns the number of columns.
func (f Field) Width() int { return f.width }

// Height returns the number of rows.
func (f Field) Height() int { return f.height }

// At returns the pressure at column x, row y.
func (f Field) At(x, y int) float64 { return f.data[x*f.height+y] }

// Column returns a copy of column x.
func (f Field) Column(x int) []float64 {
	return core.Clone(f.data[x*f.height : (x+1)*f.height])
}

// Data returns a copy of the samples in storage order.
func (f Field) Data() []float64 { return core.Clone(f.data) }

// Energy returns Σp².
func (f Field) Energy() float64 { return vecmath.DotProduct(f.data, f.data) }

// MaxAbs returns the largest absolute pressure.
func (f Field) MaxAbs() float64 { return vecmath.MaxAbs(f.data) }

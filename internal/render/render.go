// Package render turns engine output into go-echarts charts collected on a
// single HTML page.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mauromussin/opened-window/sim/facade"
	"github.com/mauromussin/opened-window/sim/fdtd"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("render: no data")

// Charter is any chart that can be placed on a page.
type Charter = components.Charter

// diverging palette for signed pressure, negative to positive
var pressureColors = []string{"#313695", "#74add1", "#f7f7f7", "#f46d43", "#a50026"}

func initOpts(title string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		BackgroundColor: "#ffffff",
		Width:           "100%",
		Height:          "520px",
		PageTitle:       title,
	})
}

func tooltip() charts.GlobalOpts {
	return charts.WithTooltipOpts(opts.Tooltip{
		Show:    opts.Bool(true),
		Trigger: "axis",
	})
}

// Polar draws attenuation, baseline attenuation and bonus against the
// incidence angle.
func Polar(results []facade.Result, subtitle string) (*charts.Line, error) {
	if len(results) == 0 {
		return nil, ErrNoData
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts("Open window attenuation"),
		charts.WithTitleOpts(opts.Title{Title: "Attenuation vs incidence", Subtitle: subtitle}),
		tooltip(),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "8%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "θ (°)"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "dB",
			Type:      "value",
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	angles := make([]string, len(results))
	att := make([]opts.LineData, len(results))
	base := make([]opts.LineData, len(results))
	bonus := make([]opts.LineData, len(results))
	for i, r := range results {
		angles[i] = strconv.FormatFloat(r.Angle, 'f', -1, 64)
		att[i] = opts.LineData{Value: r.Attenuation}
		base[i] = opts.LineData{Value: r.BaselineAttenuation}
		bonus[i] = opts.LineData{Value: r.Bonus}
	}

	line.SetXAxis(angles).
		AddSeries("Attenuation", att).
		AddSeries("Baseline", base).
		AddSeries("Jamb bonus", bonus)

	return line, nil
}

// Bands draws the exterior and interior levels of one evaluation per
// octave band.
func Bands(r facade.Result) (*charts.Bar, error) {
	if len(r.Bands) == 0 {
		return nil, ErrNoData
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts("Octave bands"),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Band levels at %g°", r.Angle),
			Subtitle: fmt.Sprintf("exterior %.1f dB(A), interior %.1f dB(A)", r.Exterior, r.Interior),
		}),
		tooltip(),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "8%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hz"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "dB", Type: "value"}),
	)

	freqs := make([]string, len(r.Bands))
	ext := make([]opts.BarData, len(r.Bands))
	in := make([]opts.BarData, len(r.Bands))
	base := make([]opts.BarData, len(r.Bands))
	for i, b := range r.Bands {
		freqs[i] = strconv.FormatFloat(b.Freq, 'f', -1, 64)
		ext[i] = opts.BarData{Value: b.Exterior}
		in[i] = opts.BarData{Value: b.Interior}
		base[i] = opts.BarData{Value: b.BaselineInterior}
	}

	bar.SetXAxis(freqs).
		AddSeries("Exterior", ext).
		AddSeries("Interior", in).
		AddSeries("Baseline interior", base)

	return bar, nil
}

// Frame draws one pressure snapshot as a heatmap, wall cells left empty.
// The colour scale is symmetric around zero; scale <= 0 uses the frame
// maximum.
func Frame(f fdtd.Frame, scale float64) (*charts.HeatMap, error) {
	w, h := f.Field.Width(), f.Field.Height()
	if w == 0 || h == 0 {
		return nil, ErrNoData
	}
	if scale <= 0 {
		scale = f.Field.MaxAbs()
	}
	if scale == 0 {
		scale = 1
	}

	xs := make([]string, w)
	for x := range xs {
		xs[x] = strconv.Itoa(x)
	}
	ys := make([]string, h)
	for y := range ys {
		ys[y] = strconv.Itoa(y)
	}

	data := make([]opts.HeatMapData, 0, w*h)
	for x := range w {
		for y := range h {
			if f.Mask != nil && !f.Mask.Open(x, y) {
				continue
			}
			data = append(data, opts.HeatMapData{Value: [3]any{x, y, f.Field.At(x, y)}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		initOpts("Wave field"),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Pressure at step %d", f.Step)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(-scale),
			Max:        float32(scale),
			InRange:    &opts.VisualMapInRange{Color: pressureColors},
		}),
	)
	hm.SetXAxis(xs).AddSeries("p", data)

	return hm, nil
}

// Energy draws Σp² against the step index.
func Energy(steps []int, energy []float64) (*charts.Line, error) {
	if len(steps) == 0 || len(steps) != len(energy) {
		return nil, ErrNoData
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts("Field energy"),
		charts.WithTitleOpts(opts.Title{Title: "Field energy Σp²"}),
		tooltip(),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Σp²", Type: "value"}),
	)

	xs := make([]string, len(steps))
	ys := make([]opts.LineData, len(energy))
	for i := range steps {
		xs[i] = strconv.Itoa(steps[i])
		ys[i] = opts.LineData{Value: energy[i]}
	}
	line.SetXAxis(xs).AddSeries("energy", ys)

	return line, nil
}

// Page renders every chart, in order, as one HTML document.
func Page(w io.Writer, title string, cs ...Charter) error {
	if len(cs) == 0 {
		return ErrNoData
	}

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(cs...)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/mauromussin/opened-window/internal/logging"
	"github.com/mauromussin/opened-window/internal/render"
	"github.com/mauromussin/opened-window/internal/scenario"
	"github.com/mauromussin/opened-window/sim/facade"
)

// facadeFlags override the geometry and model sections of the scenario.
type facadeFlags struct {
	gain      string
	loss      string
	thickness float64
	width     float64
	typology  string
}

func (f *facadeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.gain, "gain", "", "facade gain model: empirical, coherent")
	fs.StringVar(&f.loss, "loss", "", "diffraction loss model: simple, refined")
	fs.Float64Var(&f.thickness, "thickness", 0, "jamb thickness in m")
	fs.Float64Var(&f.width, "width", 0, "aperture width in m")
	fs.StringVar(&f.typology, "typology", "", "facade typology: plain, balcony, terrace, gallery, loggia")
}

func (f *facadeFlags) apply(sc *scenario.Scenario, set map[string]bool) {
	if set["gain"] {
		sc.Model.Gain = f.gain
	}
	if set["loss"] {
		sc.Model.Loss = f.loss
	}
	if set["thickness"] {
		sc.Geometry.Thickness = f.thickness
	}
	if set["width"] {
		sc.Geometry.Width = f.width
	}
	if set["typology"] {
		sc.Geometry.Typology = f.typology
	}
}

// facadeInputs resolves everything an evaluation needs.
func facadeInputs(sc scenario.Scenario) (*facade.Engine, facade.Geometry, error) {
	g, err := sc.FacadeGeometry()
	if err != nil {
		return nil, facade.Geometry{}, err
	}
	e, err := sc.Engine()
	if err != nil {
		return nil, facade.Geometry{}, err
	}
	return e, g, nil
}

func runPolar(e *env, args []string) error {
	var (
		common commonFlags
		ff     facadeFlags
	)
	fs := flag.NewFlagSet("polar", flag.ContinueOnError)
	common.register(fs)
	ff.register(fs)
	step := fs.Float64("step", 0, "angle step in degrees (overrides the scenario)")
	format := fs.String("format", "table", "output format: table, csv")
	html := fs.String("html", "", "write the chart page to this file")

	sc, err := common.setup(e, fs, args)
	if err != nil {
		return err
	}
	defer logging.Sync(e.log)

	set := visited(fs)
	ff.apply(&sc, set)
	if set["step"] {
		sc.Sweep.Step = *step
	}

	spectrum, err := sc.BandSpectrum()
	if err != nil {
		return err
	}
	eng, g, err := facadeInputs(sc)
	if err != nil {
		return err
	}
	angles, err := sc.Angles()
	if err != nil {
		return err
	}

	results, err := eng.Sweep(angles, spectrum, g)
	if err != nil {
		return err
	}

	lo, hi, _ := facade.Extremes(results)
	e.log.Info("sweep done",
		zap.Int("angles", len(results)),
		zap.Stringer("gain", eng.GainModel()),
		zap.Stringer("loss", eng.LossModel()),
		zap.Float64("min_attenuation", lo.Attenuation),
		zap.Float64("max_attenuation", hi.Attenuation),
	)

	switch *format {
	case "table":
		err = writePolarTable(e.stdout, results)
	case "csv":
		err = writePolarCSV(e.stdout, results)
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, *format)
	}
	if err != nil {
		return err
	}

	if *html == "" {
		return nil
	}

	chart, err := render.Polar(results, fmt.Sprintf("%s gain, %s loss, s = %g m", eng.GainModel(), eng.LossModel(), g.Thickness))
	if err != nil {
		return err
	}
	return writePage(e, *html, "openwindow polar", chart)
}

func writePolarTable(w io.Writer, results []facade.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Angle [°]\tExterior [dB(A)]\tInterior [dB(A)]\tAttenuation [dB]\tBaseline [dB]\tBonus [dB]\t\n"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			r.Angle, r.Exterior, r.Interior, r.Attenuation, r.BaselineAttenuation, r.Bonus); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writePolarCSV(w io.Writer, results []facade.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"angle", "exterior", "interior", "attenuation", "baseline", "bonus"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			formatFloat(r.Angle),
			formatFloat(r.Exterior),
			formatFloat(r.Interior),
			formatFloat(r.Attenuation),
			formatFloat(r.BaselineAttenuation),
			formatFloat(r.Bonus),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// writePage renders charts to path.
func writePage(e *env, path, title string, cs ...render.Charter) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := render.Page(f, title, cs...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	e.log.Info("chart page written", zap.String("path", path), zap.Int("charts", len(cs)))
	return nil
}

package main

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/mauromussin/opened-window/internal/logging"
	"github.com/mauromussin/opened-window/internal/render"
)

func runBands(e *env, args []string) error {
	var (
		common commonFlags
		ff     facadeFlags
	)
	fs := flag.NewFlagSet("bands", flag.ContinueOnError)
	common.register(fs)
	ff.register(fs)
	angle := fs.Float64("angle", 30, "incidence angle in degrees, 0 <= θ < 90")
	html := fs.String("html", "", "write the chart page to this file")

	sc, err := common.setup(e, fs, args)
	if err != nil {
		return err
	}
	defer logging.Sync(e.log)

	ff.apply(&sc, visited(fs))

	spectrum, err := sc.BandSpectrum()
	if err != nil {
		return err
	}
	eng, g, err := facadeInputs(sc)
	if err != nil {
		return err
	}

	r, err := eng.Evaluate(*angle, spectrum, g)
	if err != nil {
		return err
	}
	e.log.Info("evaluated", zap.Float64("angle", r.Angle), zap.Float64("attenuation", r.Attenuation))

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Band [Hz]\tIncident [dB]\tGain [dB]\tExterior [dB]\tN\tLoss [dB]\tDirectivity\tInterior [dB]\tBaseline [dB]\t\n")
	for _, b := range r.Bands {
		fmt.Fprintf(tw, "%g\t%.2f\t%.2f\t%.2f\t%.4f\t%.2f\t%.4f\t%.2f\t%.2f\t\n",
			b.Freq, b.Incident, b.FacadeGain, b.Exterior, b.Fresnel, b.Diffraction, b.Directivity, b.Interior, b.BaselineInterior)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(e.stdout, "\nθ = %g°: exterior %.2f dB(A), interior %.2f dB(A), attenuation %.2f dB, bonus %.2f dB\n",
		r.Angle, r.Exterior, r.Interior, r.Attenuation, r.Bonus); err != nil {
		return err
	}

	if *html == "" {
		return nil
	}

	chart, err := render.Bands(r)
	if err != nil {
		return err
	}
	return writePage(e, *html, "openwindow bands", chart)
}

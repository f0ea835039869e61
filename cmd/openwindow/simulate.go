package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/mauromussin/opened-window/internal/logging"
	"github.com/mauromussin/opened-window/internal/render"
	"github.com/mauromussin/opened-window/measure/transmission"
	"github.com/mauromussin/opened-window/sim/fdtd"
)

func runFDTD(e *env, args []string) error {
	var common commonFlags
	fs := flag.NewFlagSet("fdtd", flag.ContinueOnError)
	common.register(fs)
	angle := fs.Float64("angle", 0, "incidence angle of the wavefront in degrees")
	thickness := fs.Int("thickness", 0, "wall thickness in cells")
	gap := fs.Int("gap", 0, "aperture height in cells")
	steps := fs.Int("steps", 0, "number of time steps")
	stride := fs.Int("stride", 0, "emit a frame every stride steps")
	maxFrames := fs.Int("html-frames", 6, "heatmaps on the chart page, spread over the run")
	html := fs.String("html", "", "write the chart page to this file")

	sc, err := common.setup(e, fs, args)
	if err != nil {
		return err
	}
	defer logging.Sync(e.log)

	set := visited(fs)
	if set["angle"] {
		sc.FDTD.IncidenceDeg = *angle
	}
	if set["thickness"] {
		sc.FDTD.WallThickness = *thickness
	}
	if set["gap"] {
		sc.FDTD.Gap = *gap
	}
	if set["steps"] {
		sc.FDTD.Steps = *steps
	}
	if set["stride"] {
		sc.FDTD.Stride = *stride
	}

	cfg, err := sc.SimulationConfig()
	if err != nil {
		return err
	}

	s, err := fdtd.Configure(cfg)
	if err != nil {
		return err
	}

	var (
		frames     []fdtd.Frame
		frameSteps []int
		energy     []float64
	)
	for f := range s.Frames() {
		frames = append(frames, f)
		frameSteps = append(frameSteps, f.Step)
		energy = append(energy, f.Field.Energy())
		e.log.Debug("frame",
			zap.Int("step", f.Step),
			zap.Float64("energy", energy[len(energy)-1]),
			zap.Float64("max_abs", f.Field.MaxAbs()),
		)
	}

	fmt.Fprintf(e.stdout, "grid %d×%d, wall at x=%d (%d cells), gap %d rows, θ = %g°\n",
		cfg.Width, cfg.Height, cfg.WallX, cfg.WallThickness, cfg.Gap, cfg.IncidenceDeg)
	fmt.Fprintf(e.stdout, "%d steps, %d frames, final energy %.6g\n", s.StepIndex(), len(frames), s.Energy())

	if err := reportProbes(e, cfg, s); err != nil {
		return err
	}

	if *html == "" {
		return nil
	}

	charts := make([]render.Charter, 0, *maxFrames+1)
	ec, err := render.Energy(frameSteps, energy)
	if err != nil {
		return err
	}
	charts = append(charts, ec)

	scale := 0.0
	for _, f := range frames {
		scale = max(scale, f.Field.MaxAbs())
	}
	for _, f := range pick(frames, *maxFrames) {
		hm, err := render.Frame(f, scale)
		if err != nil {
			return err
		}
		charts = append(charts, hm)
	}

	return writePage(e, *html, "openwindow fdtd", charts...)
}

// reportProbes compares every probe with a free-field run of the same
// configuration.
func reportProbes(e *env, cfg fdtd.Config, s *fdtd.Session) error {
	if len(cfg.Probes) == 0 {
		return nil
	}

	free := cfg
	free.WallThickness = 0
	ref, err := fdtd.Configure(free)
	if err != nil {
		return err
	}
	ref.Run()

	for i, p := range cfg.Probes {
		obs, err := s.Probe(i)
		if err != nil {
			return err
		}
		base, err := ref.Probe(i)
		if err != nil {
			return err
		}

		il, err := transmission.InsertionLoss(base, obs)
		if err != nil {
			fmt.Fprintf(e.stdout, "probe (%d, %d): %v\n", p.X, p.Y, err)
			continue
		}
		narrow, err := transmission.InsertionLossAt(base, obs, cfg.Carrier)
		if err != nil {
			fmt.Fprintf(e.stdout, "probe (%d, %d): insertion loss %.2f dB, carrier band: %v\n", p.X, p.Y, il, err)
			continue
		}

		sum := transmission.Summarize(obs, 0)
		fmt.Fprintf(e.stdout, "probe (%d, %d): insertion loss %.2f dB, at carrier %.2f dB, arrival step %d, peak %.1f dB\n",
			p.X, p.Y, il, narrow, sum.Arrival, sum.PeakdB)
		e.log.Info("probe",
			zap.Int("x", p.X),
			zap.Int("y", p.Y),
			zap.Float64("insertion_loss", il),
			zap.Float64("carrier_loss", narrow),
			zap.Int("arrival", sum.Arrival),
			zap.Float64("crest_db", sum.CrestdB),
		)
	}

	return nil
}

// pick returns at most n frames evenly spread over frames, always keeping
// the last one.
func pick(frames []fdtd.Frame, n int) []fdtd.Frame {
	if n <= 0 || len(frames) == 0 {
		return nil
	}
	if n >= len(frames) {
		return frames
	}

	out := make([]fdtd.Frame, 0, n)
	for i := range n {
		out = append(out, frames[(i+1)*len(frames)/n-1])
	}
	return out
}

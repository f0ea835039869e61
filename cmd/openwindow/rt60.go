package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/mauromussin/opened-window/internal/logging"
	"github.com/mauromussin/opened-window/measure/reverb"
)

func runRT60(e *env, args []string) error {
	var common commonFlags
	fs := flag.NewFlagSet("rt60", flag.ContinueOnError)
	common.register(fs)
	rate := fs.Float64("rate", 48000, "sample rate of the impulse response in Hz")
	volume := fs.Float64("volume", 0, "room volume in m³ (defaults to the scenario room)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: openwindow rt60 [flags] <ir.txt>\n\n")
		fmt.Fprintf(fs.Output(), "The file holds one sample per whitespace separated field.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	sc, err := common.setup(e, fs, args)
	if err != nil {
		return err
	}
	defer logging.Sync(e.log)

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%w: rt60 needs exactly one impulse response file", errUsage)
	}

	v := sc.Geometry.RoomVolume
	if visited(fs)["volume"] {
		v = *volume
	}

	ir, err := readSamples(fs.Arg(0))
	if err != nil {
		return err
	}
	e.log.Debug("impulse response loaded", zap.Int("samples", len(ir)), zap.Float64("rate", *rate))

	m, err := reverb.NewAnalyzer(*rate).Analyze(ir)
	if err != nil {
		return err
	}

	area, err := reverb.SabineArea(v, m.RT60)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "RT60 %.3f s (T20 %.3f s, T30 %.3f s), EDT %.3f s\n", m.RT60, m.T20, m.T30, m.EDT)
	fmt.Fprintf(e.stdout, "Sabine absorption area %.2f m² for %g m³\n", area, v)

	return nil
}

func readSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseSamples(f)
}

func parseSamples(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Command openwindow evaluates the noise attenuation of an open window in
// a thick wall.
//
// Usage:
//
//	openwindow <command> [flags]
//
// Commands:
//
//	polar   sweep the incidence angle and print the attenuation curve
//	bands   print the per-band breakdown at one angle
//	fdtd    run the 2D wave simulation through the aperture
//	rt60    estimate RT60 and EDT from an impulse response file
//	config  print the effective scenario as YAML
//
// Examples:
//
//	openwindow polar -loss refined -html polar.html
//	openwindow bands -angle 30 -config room.yaml
//	openwindow fdtd -angle 20 -thickness 4 -html field.html
//	openwindow rt60 -rate 48000 -volume 60 ir.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/mauromussin/opened-window/internal/logging"
	"github.com/mauromussin/opened-window/internal/scenario"
)

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(env *env, args []string) error
}

var commands = []command{
	{"polar", "sweep the incidence angle and print the attenuation curve", runPolar},
	{"bands", "print the per-band breakdown at one angle", runBands},
	{"fdtd", "run the 2D wave simulation through the aperture", runFDTD},
	{"rt60", "estimate RT60 and EDT from an impulse response file", runRT60},
	{"config", "print the effective scenario as YAML", runConfig},
}

// env carries the output streams and the logger of one invocation.
type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	name, rest := args[0], args[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}

		e := &env{stdout: stdout, stderr: stderr, log: zap.NewNop()}
		return c.run(e, rest)
	}

	if name == "-h" || name == "-help" || name == "help" {
		usage(stdout)
		return nil
	}

	usage(stderr)
	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: openwindow <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-7s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nRun 'openwindow <command> -h' for the flags of a command.\n")
}

// commonFlags are shared by every command.
type commonFlags struct {
	config   string
	logLevel string
	dev      bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "scenario YAML file (defaults to the built-in scenario)")
	fs.StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVar(&c.dev, "dev", false, "human readable console logs")
}

// setup parses args, builds the logger and loads the scenario.
func (c *commonFlags) setup(e *env, fs *flag.FlagSet, args []string) (scenario.Scenario, error) {
	fs.SetOutput(e.stderr)
	if err := fs.Parse(args); err != nil {
		return scenario.Scenario{}, err
	}

	log, err := logging.New(
		logging.WithLevel(c.logLevel),
		logging.WithDevelopment(c.dev),
		logging.WithFields(map[string]any{"cmd": fs.Name()}),
	)
	if err != nil {
		return scenario.Scenario{}, err
	}
	e.log = log

	if c.config == "" {
		return scenario.Default(), nil
	}

	sc, err := scenario.Load(c.config)
	if err != nil {
		return scenario.Scenario{}, err
	}
	log.Debug("scenario loaded", zap.String("path", c.config))

	return sc, nil
}

// visited returns the names of the flags set on the command line.
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func runConfig(e *env, args []string) error {
	var common commonFlags
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	common.register(fs)

	sc, err := common.setup(e, fs, args)
	if err != nil {
		return err
	}
	defer logging.Sync(e.log)

	return scenario.Encode(e.stdout, sc)
}

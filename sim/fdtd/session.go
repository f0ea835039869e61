package fdtd

import (
	"errors"
	"fmt"
	"iter"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/mauromussin/opened-window/dsp/core"
)

// Errors returned by a running session.
var (
	ErrCompleted  = errors.New("fdtd: session completed")
	ErrProbeIndex = errors.New("fdtd: probe index out of range")
)

// State is the lifecycle stage of a [Session].
type State int

const (
	// Configured sessions have validated input and a zero field.
	Configured State = iota
	// Running sessions have completed at least one step.
	Running
	// Completed sessions have performed every configured step.
	Completed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Configured:
		return "configured"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Frame is one emitted snapshot. Field is a private copy; Mask is shared
// and must not be modified.
type Frame struct {
	Step  int
	Field Field
	Mask  *Mask
}

// Session owns the solver state of one run. It is not safe for concurrent
// use.
type Session struct {
	cfg  Config
	mask *Mask

	prev, cur, next []float64

	src      int
	sinTheta float64
	step     int
	state    State
	probes   [][]float64
}

// Configure validates cfg and returns a session ready to run.
func Configure(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Probes = append([]Cell(nil), cfg.Probes...)
	n := cfg.Width * cfg.Height

	s := &Session{
		cfg:      cfg,
		mask:     buildMask(cfg),
		prev:     make([]float64, n),
		cur:      make([]float64, n),
		next:     make([]float64, n),
		src:      cfg.sourceColumn(),
		sinTheta: math.Sin(core.Radians(cfg.IncidenceDeg)),
		probes:   make([][]float64, len(cfg.Probes)),
	}
	for i := range s.probes {
		s.probes[i] = make([]float64, 0, cfg.Steps)
	}

	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	cfg := s.cfg
	cfg.Probes = append([]Cell(nil), s.cfg.Probes...)
	return cfg
}

// Mask returns the shared transmission mask.
func (s *Session) Mask() *Mask { return s.mask }

// State returns the lifecycle stage.
func (s *Session) State() State { return s.state }

// StepIndex returns the number of completed steps.
func (s *Session) StepIndex() int { return s.step }

// Step advances the field by one time step. ok is true when the step falls
// on the stride and frame holds its snapshot. Once every step has run, Step
// returns [ErrCompleted].
func (s *Session) Step() (frame Frame, ok bool, err error) {
	if s.state == Completed {
		return Frame{}, false, ErrCompleted
	}

	t := s.step
	s.inject(float64(t))
	s.update()

	s.prev, s.cur, s.next = s.cur, s.next, s.prev
	s.record()

	s.step++
	s.state = Running
	if s.step == s.cfg.Steps {
		s.state = Completed
	}

	if t%s.cfg.Stride != 0 {
		return Frame{}, false, nil
	}

	return Frame{Step: t, Field: s.Current(), Mask: s.mask}, true, nil
}

// Frames returns the frames of the remaining steps. The sequence is lazy:
// each step runs only when the consumer asks for the next frame, and
// stopping early leaves the session between two steps. Iterating again
// continues from there; a completed session yields nothing.
func (s *Session) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for s.state != Completed {
			frame, ok, err := s.Step()
			if err != nil {
				return
			}
			if ok && !yield(frame) {
				return
			}
		}
	}
}

// Run performs every remaining step and returns the emitted frames.
func (s *Session) Run() []Frame {
	frames := make([]Frame, 0, s.cfg.FrameCount())
	for f := range s.Frames() {
		frames = append(frames, f)
	}
	return frames
}

// Current returns a copy of the field after the last step.
func (s *Session) Current() Field {
	return newField(s.cfg.Width, s.cfg.Height, core.Clone(s.cur))
}

// Energy returns Σp² of the current field.
func (s *Session) Energy() float64 {
	return vecmath.DotProduct(s.cur, s.cur)
}

// Probe returns a copy of the pressure recorded at probe i, one sample per
// completed step.
func (s *Session) Probe(i int) ([]float64, error) {
	if i < 0 || i >= len(s.probes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrProbeIndex, i, len(s.probes))
	}
	return core.Clone(s.probes[i]), nil
}

// inject adds the source term at time t to the current field.
func (s *Session) inject(t float64) {
	h := s.cfg.Height
	col := s.cur[s.src*h : (s.src+1)*h]

	for y := range col {
		d := float64(y) * s.sinTheta
		arg := t - s.cfg.PulseCenter - d
		col[y] += math.Sin(s.cfg.Carrier*(t-d)) * math.Exp(-s.cfg.Envelope*arg*arg)
	}
}

// update writes the next field into s.next.
func (s *Session) update() {
	w, h := s.cfg.Width, s.cfg.Height
	lambda := s.cfg.Courant
	cur, prev, next := s.cur, s.prev, s.next

	for x := range w {
		left := ((x - 1 + w) % w) * h
		right := ((x + 1) % w) * h
		base := x * h

		for y := range h {
			up := (y - 1 + h) % h
			down := (y + 1) % h

			c := cur[base+y]
			lap := cur[left+y] + cur[right+y] + cur[base+up] + cur[base+down] - 4*c
			next[base+y] = 2*c - prev[base+y] + lambda*lap
		}
	}

	vecmath.MulBlockInPlace(next, s.mask.data)
	zeroBorder(next, w, h)
}

func zeroBorder(data []float64, w, h int) {
	core.Zero(data[:h])
	core.Zero(data[(w-1)*h:])
	for x := 1; x < w-1; x++ {
		data[x*h] = 0
		data[x*h+h-1] = 0
	}
}

func (s *Session) record() {
	h := s.cfg.Height
	for i, p := range s.cfg.Probes {
		s.probes[i] = append(s.probes[i], s.cur[p.X*h+p.Y])
	}
}

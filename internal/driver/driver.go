// Package driver performs caller-owned integration over the aggregate
// contract. The aggregate core only evaluates dynamics; advancing state
// through time belongs to the consumer, which is this package's job for
// the CLI and TUI.
package driver

import (
	"context"
	"fmt"

	"github.com/san-kum/narysim/internal/aggregate"
	"github.com/san-kum/narysim/internal/scalar"
)

// Sampled is a unit vector kind that can be flattened to plain values.
type Sampled interface {
	aggregate.Sized
	Values() []scalar.Real
}

// Steppable is a unit vector kind that can advance itself by an
// explicit-Euler increment.
type Steppable[V any] interface {
	Sampled
	Step(derivative V, dt float64) V
}

// Input produces the aggregate input vector for a given time.
type Input[U aggregate.Sized] func(t float64) *aggregate.Vector[U]

// Config holds the stepping parameters.
type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{Dt: 0.01, Duration: 10.0}
}

// Trace is the recorded history of a run: per step, the flattened
// aggregate state and output.
type Trace struct {
	Times      []float64
	States     [][]float64
	Outputs    [][]float64
	StepsTaken int
}

// Session holds a system together with its evolving aggregate state.
type Session[X Steppable[X], U aggregate.Sized, Y Sampled] struct {
	sys *aggregate.System[scalar.Real, X, U, Y]
	in  Input[U]
	x   *aggregate.Vector[X]
	t   float64
	dt  float64
}

// NewSession clones x0 as the working state; the caller's vector is not
// mutated by stepping.
func NewSession[X Steppable[X], U aggregate.Sized, Y Sampled](
	sys *aggregate.System[scalar.Real, X, U, Y],
	x0 *aggregate.Vector[X],
	in Input[U],
	dt float64,
) (*Session[X, U, Y], error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", dt)
	}
	n := sys.NumUnits()
	if c := x0.Count(); c >= 0 && c != n {
		return nil, fmt.Errorf("%w: initial state has %d units, system has %d",
			aggregate.ErrArityMismatch, c, n)
	}
	x := aggregate.NewVector[X](n)
	for i := 0; i < n; i++ {
		x.Set(i, x0.Get(i))
	}
	return &Session[X, U, Y]{sys: sys, in: in, x: x, dt: dt}, nil
}

// Time reports the current simulation time.
func (s *Session[X, U, Y]) Time() float64 { return s.t }

// Step evaluates output and dynamics at the current time, advances the
// state by one Euler step, and returns the pre-step flattened state and
// output.
func (s *Session[X, U, Y]) Step() ([]float64, []float64, error) {
	t := scalar.Real(s.t)
	u := s.in(s.t)

	y, err := s.sys.Output(t, s.x, u)
	if err != nil {
		return nil, nil, err
	}
	xdot, err := s.sys.Dynamics(t, s.x, u)
	if err != nil {
		return nil, nil, err
	}

	n := s.sys.NumUnits()
	state := flatten(s.x, n, s.sys.NumStates())
	output := flatten(y, n, s.sys.NumOutputs())

	for i := 0; i < n; i++ {
		s.x.Set(i, s.x.Get(i).Step(xdot.Get(i), s.dt))
	}
	s.t += s.dt

	return state, output, nil
}

// Run steps a fresh session for the configured duration, collecting a
// trace. Cancellation via ctx returns the partial trace with the context
// error, matching the evaluation-loop contract of the simulator this
// driver is modeled on.
func Run[X Steppable[X], U aggregate.Sized, Y Sampled](
	ctx context.Context,
	sys *aggregate.System[scalar.Real, X, U, Y],
	x0 *aggregate.Vector[X],
	in Input[U],
	cfg Config,
) (*Trace, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}

	sess, err := NewSession(sys, x0, in, cfg.Dt)
	if err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	trace := &Trace{
		Times:   make([]float64, 0, steps),
		States:  make([][]float64, 0, steps),
		Outputs: make([][]float64, 0, steps),
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return trace, ctx.Err()
		default:
		}

		t := sess.Time()
		state, output, err := sess.Step()
		if err != nil {
			return trace, err
		}

		trace.Times = append(trace.Times, t)
		trace.States = append(trace.States, state)
		trace.Outputs = append(trace.Outputs, output)
		trace.StepsTaken++
	}

	return trace, nil
}

func flatten[V Sampled](v *aggregate.Vector[V], n, rows int) []float64 {
	out := make([]float64, 0, rows)
	for i := 0; i < n; i++ {
		for _, s := range v.Get(i).Values() {
			out = append(out, float64(s))
		}
	}
	return out
}

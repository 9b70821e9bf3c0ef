package aggregate

import "fmt"

// Unit is the contract a unit system must satisfy to be composed. T is
// the scalar type; X, U, Y are the unit's state, input, and output vector
// kinds. Dynamics returns the time derivative of the state.
//
// TimeVarying and DirectFeedthrough are static properties of the unit's
// dynamics, assumed uniform across every unit in one aggregate.
type Unit[T any, X, U, Y Sized] interface {
	Dynamics(t T, x X, u U) (X, error)
	Output(t T, x X, u U) (Y, error)
	TimeVarying() bool
	DirectFeedthrough() bool
	StateDim() int
	InputDim() int
	OutputDim() int
}

// System aggregates multiple instances of one unit system type. The
// aggregate state, input, and output vectors are the concatenation of the
// respective unit vectors, in unit insertion order.
//
// The unit list is append-only. Units are held by reference, so the same
// instance may be shared with other systems or added more than once; a
// duplicate is simply evaluated once per occurrence.
type System[T any, X, U, Y Sized] struct {
	units []Unit[T, X, U, Y]
}

// NewSystem returns an empty aggregate.
func NewSystem[T any, X, U, Y Sized]() *System[T, X, U, Y] {
	return &System[T, X, U, Y]{}
}

// AddUnit appends unit to the end of the unit list.
func (s *System[T, X, U, Y]) AddUnit(unit Unit[T, X, U, Y]) {
	s.units = append(s.units, unit)
}

// NumUnits reports the number of registered units.
func (s *System[T, X, U, Y]) NumUnits() int { return len(s.units) }

// Dynamics evaluates each unit's dynamics against its slot of state and
// input and returns the concatenated derivatives in unit order.
//
// A state or input whose declared count is non-negative must match the
// unit count; a mismatch fails with [ErrArityMismatch] before any unit is
// invoked. The first unit error aborts the evaluation and is returned
// unchanged; no partial result is produced.
func (s *System[T, X, U, Y]) Dynamics(t T, state *Vector[X], input *Vector[U]) (*Vector[X], error) {
	if err := s.checkArity("state", state.Count()); err != nil {
		return nil, err
	}
	if err := s.checkArity("input", input.Count()); err != nil {
		return nil, err
	}
	xdot := NewVector[X](len(s.units))
	for i, unit := range s.units {
		d, err := unit.Dynamics(t, state.Get(i), input.Get(i))
		if err != nil {
			return nil, err
		}
		xdot.Set(i, d)
	}
	return xdot, nil
}

// Output evaluates each unit's output map. Same arity and failure
// contract as Dynamics.
func (s *System[T, X, U, Y]) Output(t T, state *Vector[X], input *Vector[U]) (*Vector[Y], error) {
	if err := s.checkArity("state", state.Count()); err != nil {
		return nil, err
	}
	if err := s.checkArity("input", input.Count()); err != nil {
		return nil, err
	}
	y := NewVector[Y](len(s.units))
	for i, unit := range s.units {
		out, err := unit.Output(t, state.Get(i), input.Get(i))
		if err != nil {
			return nil, err
		}
		y.Set(i, out)
	}
	return y, nil
}

func (s *System[T, X, U, Y]) checkArity(kind string, count int) error {
	if count >= 0 && count != len(s.units) {
		return fmt.Errorf("%w: %s has %d units, system has %d",
			ErrArityMismatch, kind, count, len(s.units))
	}
	return nil
}

// TimeVarying reports whether the aggregate's dynamics depend on time.
// Units are assumed homogeneous in this property, so only the first unit
// is consulted; an empty aggregate reports false.
func (s *System[T, X, U, Y]) TimeVarying() bool {
	return len(s.units) > 0 && s.units[0].TimeVarying()
}

// DirectFeedthrough reports whether output depends directly on input,
// sampled from the first unit under the same homogeneity assumption.
func (s *System[T, X, U, Y]) DirectFeedthrough() bool {
	return len(s.units) > 0 && s.units[0].DirectFeedthrough()
}

// NumStates reports the total flattened state width, summed over each
// live unit so that units of differing internal width stay sound.
func (s *System[T, X, U, Y]) NumStates() int {
	n := 0
	for _, unit := range s.units {
		n += unit.StateDim()
	}
	return n
}

// NumInputs reports the total flattened input width.
func (s *System[T, X, U, Y]) NumInputs() int {
	n := 0
	for _, unit := range s.units {
		n += unit.InputDim()
	}
	return n
}

// NumOutputs reports the total flattened output width.
func (s *System[T, X, U, Y]) NumOutputs() int {
	n := 0
	for _, unit := range s.units {
		n += unit.OutputDim()
	}
	return n
}

package units

import "github.com/san-kum/narysim/internal/scalar"

const (
	DefaultMass      = 1.0
	DefaultStiffness = 10.0
	DefaultDamping   = 0.5
)

// Oscillator is a damped spring-mass unit driven by a scalar force:
//
//	dPos/dt = Vel
//	dVel/dt = (-k*Pos - c*Vel + u) / m
//
// Output is the position, so there is no direct feedthrough.
type Oscillator[T scalar.Num[T]] struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

func NewOscillator[T scalar.Num[T]]() *Oscillator[T] {
	return &Oscillator[T]{
		Mass:      DefaultMass,
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
	}
}

func (o *Oscillator[T]) StateDim() int  { return 2 }
func (o *Oscillator[T]) InputDim() int  { return 1 }
func (o *Oscillator[T]) OutputDim() int { return 1 }

func (o *Oscillator[T]) Dynamics(t T, x Pair[T], u Sig[T]) (Pair[T], error) {
	acc := x.Pos.Scale(-o.Stiffness / o.Mass).
		Add(x.Vel.Scale(-o.Damping / o.Mass)).
		Add(u.V.Scale(1.0 / o.Mass))
	return Pair[T]{Pos: x.Vel, Vel: acc}, nil
}

func (o *Oscillator[T]) Output(t T, x Pair[T], u Sig[T]) (Sig[T], error) {
	return Sig[T]{V: x.Pos}, nil
}

func (o *Oscillator[T]) TimeVarying() bool       { return false }
func (o *Oscillator[T]) DirectFeedthrough() bool { return false }

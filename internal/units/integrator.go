package units

import "github.com/san-kum/narysim/internal/scalar"

// Integrator is a single-state unit: dx/dt = gain*u, y = x.
type Integrator[T scalar.Num[T]] struct {
	Gain float64
}

func NewIntegrator[T scalar.Num[T]]() *Integrator[T] {
	return &Integrator[T]{Gain: 1.0}
}

func (g *Integrator[T]) StateDim() int  { return 1 }
func (g *Integrator[T]) InputDim() int  { return 1 }
func (g *Integrator[T]) OutputDim() int { return 1 }

func (g *Integrator[T]) Dynamics(t T, x, u Sig[T]) (Sig[T], error) {
	return Sig[T]{V: u.V.Scale(g.Gain)}, nil
}

func (g *Integrator[T]) Output(t T, x, u Sig[T]) (Sig[T], error) {
	return x, nil
}

func (g *Integrator[T]) TimeVarying() bool       { return false }
func (g *Integrator[T]) DirectFeedthrough() bool { return false }

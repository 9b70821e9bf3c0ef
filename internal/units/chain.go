package units

import (
	"errors"
	"fmt"

	"github.com/san-kum/narysim/internal/scalar"
)

// ErrDimension indicates a state vector whose width does not match the
// unit's configuration.
var ErrDimension = errors.New("units: state dimension mismatch")

// Chain is an n-mass spring chain anchored at both ends, driven by a
// scalar force on the first mass. State layout is positions x[0:n]
// followed by velocities x[n:2n]; output is the n positions.
//
// Width is per instance, so chains of different lengths can coexist in
// one aggregate; size such aggregates by summing live dims.
type Chain[T scalar.Num[T]] struct {
	Masses    []float64
	Stiffness []float64 // n+1 springs for n masses
	Damping   []float64
}

func NewChain[T scalar.Num[T]](n int) *Chain[T] {
	masses := make([]float64, n)
	stiffness := make([]float64, n+1)
	damping := make([]float64, n)

	for i := 0; i < n; i++ {
		masses[i] = DefaultMass
		stiffness[i] = DefaultStiffness
		damping[i] = 0.2
	}
	stiffness[n] = DefaultStiffness

	return &Chain[T]{Masses: masses, Stiffness: stiffness, Damping: damping}
}

func (c *Chain[T]) StateDim() int  { return len(c.Masses) * 2 }
func (c *Chain[T]) InputDim() int  { return 1 }
func (c *Chain[T]) OutputDim() int { return len(c.Masses) }

func (c *Chain[T]) Dynamics(t T, x Vec[T], u Sig[T]) (Vec[T], error) {
	n := len(c.Masses)
	if len(x) != 2*n {
		return nil, fmt.Errorf("%w: chain of %d masses got state width %d",
			ErrDimension, n, len(x))
	}

	dx := make(Vec[T], 2*n)
	for i := 0; i < n; i++ {
		dx[i] = x[n+i]
	}

	for i := 0; i < n; i++ {
		pos, vel := x[i], x[n+i]

		var forceLeft, forceRight T
		if i == 0 {
			forceLeft = pos.Scale(-c.Stiffness[0])
		} else {
			forceLeft = pos.Sub(x[i-1]).Scale(-c.Stiffness[i])
		}

		if i == n-1 {
			forceRight = pos.Scale(-c.Stiffness[n])
		} else {
			forceRight = pos.Sub(x[i+1]).Scale(-c.Stiffness[i+1])
		}

		total := forceLeft.Add(forceRight).Add(vel.Scale(-c.Damping[i]))
		if i == 0 {
			total = total.Add(u.V)
		}
		dx[n+i] = total.Scale(1.0 / c.Masses[i])
	}

	return dx, nil
}

func (c *Chain[T]) Output(t T, x Vec[T], u Sig[T]) (Vec[T], error) {
	n := len(c.Masses)
	if len(x) != 2*n {
		return nil, fmt.Errorf("%w: chain of %d masses got state width %d",
			ErrDimension, n, len(x))
	}
	out := make(Vec[T], n)
	copy(out, x[:n])
	return out, nil
}

func (c *Chain[T]) TimeVarying() bool       { return false }
func (c *Chain[T]) DirectFeedthrough() bool { return false }

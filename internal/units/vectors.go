package units

import "github.com/san-kum/narysim/internal/scalar"

// Sig is a one-scalar unit vector.
type Sig[T scalar.Num[T]] struct {
	V T
}

func (Sig[T]) Rows() int { return 1 }

// Values returns the flattened scalars.
func (s Sig[T]) Values() []T { return []T{s.V} }

// Step advances by an explicit-Euler increment d*dt.
func (s Sig[T]) Step(d Sig[T], dt float64) Sig[T] {
	return Sig[T]{V: s.V.Add(d.V.Scale(dt))}
}

// Pair is a position/velocity unit vector of fixed width 2.
type Pair[T scalar.Num[T]] struct {
	Pos T
	Vel T
}

func (Pair[T]) Rows() int { return 2 }

func (p Pair[T]) Values() []T { return []T{p.Pos, p.Vel} }

func (p Pair[T]) Step(d Pair[T], dt float64) Pair[T] {
	return Pair[T]{
		Pos: p.Pos.Add(d.Pos.Scale(dt)),
		Vel: p.Vel.Add(d.Vel.Scale(dt)),
	}
}

// Vec is a slice-backed unit vector whose width is fixed per instance at
// construction, not per kind. Its zero value has width 0, so aggregate
// widths over Vec must be summed from live instances, never derived from
// a unit count.
type Vec[T scalar.Num[T]] []T

func (v Vec[T]) Rows() int { return len(v) }

func (v Vec[T]) Values() []T { return v }

func (v Vec[T]) Step(d Vec[T], dt float64) Vec[T] {
	out := make(Vec[T], len(v))
	for i := range v {
		out[i] = v[i].Add(d[i].Scale(dt))
	}
	return out
}

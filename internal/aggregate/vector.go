package aggregate

// Sized is implemented by every unit vector kind. Rows reports the
// flattened scalar width of one vector instance.
type Sized interface {
	Rows() int
}

// Unsized is the count sentinel for vectors whose arity is deliberately
// unconstrained. Arity validation is skipped for such vectors.
const Unsized = -1

// Vector is the concatenation of unit vectors of kind V, one slot per
// unit. Slot i always corresponds to unit i of the owning System; the
// order is fixed for the vector's lifetime and there is no resizing.
type Vector[V Sized] struct {
	count int
	slots []V
}

// NewVector returns a vector of n default-initialized slots with
// count = n. Panics on negative n.
func NewVector[V Sized](n int) *Vector[V] {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	return &Vector[V]{count: n, slots: make([]V, n)}
}

// VectorOf returns a vector over the given slots with count = len(slots).
func VectorOf[V Sized](slots ...V) *Vector[V] {
	return &Vector[V]{count: len(slots), slots: slots}
}

// UnsizedVector returns a vector over the given slots with count =
// [Unsized], exempting it from arity validation.
func UnsizedVector[V Sized](slots ...V) *Vector[V] {
	return &Vector[V]{count: Unsized, slots: slots}
}

// Count reports the declared number of unit slots, or [Unsized].
func (v *Vector[V]) Count() int { return v.count }

// Get returns the unit vector at slot i. Out-of-range access is a caller
// contract violation and panics.
func (v *Vector[V]) Get(i int) V { return v.slots[i] }

// Set overwrites slot i. Same range contract as Get.
func (v *Vector[V]) Set(i int, val V) { v.slots[i] = val }

// Rows reports the total flattened width: the sum of each stored unit
// vector's own width. Sound for unit kinds whose width varies per
// instance.
func (v *Vector[V]) Rows() int {
	total := 0
	for _, s := range v.slots {
		total += s.Rows()
	}
	return total
}

// RowsFromUnitCount reports the flattened width of n unit vectors of a
// fixed-width kind: n times the width the zero value of V reports.
//
// Only valid for kinds whose width is independent of instance data.
// Slice-backed kinds report zero width on their zero value; size those by
// summing live instances ([Vector.Rows] or System.NumStates) instead.
func RowsFromUnitCount[V Sized](n int) int {
	var zero V
	return n * zero.Rows()
}

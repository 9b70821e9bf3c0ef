package scalar

// Num constrains a scalar type to the arithmetic the unit systems need.
// Scale multiplies by a plain constant, which is how system parameters
// (masses, gains, stiffnesses) enter regardless of the scalar type.
type Num[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Scale(k float64) T
}

// Real is the plain-evaluation scalar.
type Real float64

func (a Real) Add(b Real) Real      { return a + b }
func (a Real) Sub(b Real) Real      { return a - b }
func (a Real) Mul(b Real) Real      { return a * b }
func (a Real) Neg() Real            { return -a }
func (a Real) Scale(k float64) Real { return a * Real(k) }

// Float returns the underlying float64.
func (a Real) Float() float64 { return float64(a) }

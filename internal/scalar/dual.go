package scalar

// Dual is a forward-mode differentiation scalar: V carries the value and
// D the derivative with respect to a single seed variable.
type Dual struct {
	V float64
	D float64
}

// Const returns a dual with zero derivative.
func Const(v float64) Dual { return Dual{V: v} }

// Var returns a dual seeded as the differentiation variable (derivative 1).
func Var(v float64) Dual { return Dual{V: v, D: 1} }

func (a Dual) Add(b Dual) Dual { return Dual{V: a.V + b.V, D: a.D + b.D} }
func (a Dual) Sub(b Dual) Dual { return Dual{V: a.V - b.V, D: a.D - b.D} }

// Mul applies the product rule.
func (a Dual) Mul(b Dual) Dual {
	return Dual{V: a.V * b.V, D: a.V*b.D + a.D*b.V}
}

func (a Dual) Neg() Dual            { return Dual{V: -a.V, D: -a.D} }
func (a Dual) Scale(k float64) Dual { return Dual{V: a.V * k, D: a.D * k} }

package aggregate_test

import (
	"testing"

	"github.com/san-kum/narysim/internal/aggregate"
	"github.com/san-kum/narysim/internal/scalar"
	"github.com/san-kum/narysim/internal/units"
)

// The same dispatch path must hold for differentiable and symbolic
// scalars, not just plain floats.

func TestSystem_DualScalars(t *testing.T) {
	type dsig = units.Sig[scalar.Dual]

	sys := aggregate.NewSystem[scalar.Dual, dsig, dsig, dsig]()
	unit := units.NewIntegrator[scalar.Dual]()
	unit.Gain = 3.0
	sys.AddUnit(unit)

	// Seed the input as the differentiation variable.
	state := aggregate.VectorOf(dsig{V: scalar.Const(1.0)})
	input := aggregate.VectorOf(dsig{V: scalar.Var(0.5)})

	xdot, err := sys.Dynamics(scalar.Const(0), state, input)
	if err != nil {
		t.Fatalf("Dynamics: %v", err)
	}

	d := xdot.Get(0).V
	if d.V != 1.5 {
		t.Errorf("value = %v, want 1.5", d.V)
	}
	// d(gain*u)/du = gain
	if d.D != 3.0 {
		t.Errorf("derivative = %v, want 3.0", d.D)
	}
}

func TestSystem_SymbolicScalars(t *testing.T) {
	type esig = units.Sig[scalar.Expr]

	sys := aggregate.NewSystem[scalar.Expr, esig, esig, esig]()
	unit := units.NewIntegrator[scalar.Expr]()
	unit.Gain = 2.0
	sys.AddUnit(unit)

	state := aggregate.VectorOf(esig{V: scalar.Sym("x0")})
	input := aggregate.VectorOf(esig{V: scalar.Sym("u0")})

	xdot, err := sys.Dynamics(scalar.Sym("t"), state, input)
	if err != nil {
		t.Fatalf("Dynamics: %v", err)
	}
	if got := xdot.Get(0).V.String(); got != "(2 * u0)" {
		t.Errorf("symbolic dynamics = %q, want %q", got, "(2 * u0)")
	}

	y, err := sys.Output(scalar.Sym("t"), state, input)
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if got := y.Get(0).V.String(); got != "x0" {
		t.Errorf("symbolic output = %q, want %q", got, "x0")
	}
}

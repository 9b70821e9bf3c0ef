// Package aggregate composes N instances of one unit system type into a
// single system whose state, input, and output are the ordered
// concatenation of the units' vectors.
//
// The package defines the composition primitives:
//
//   - [Vector]: concatenation of unit vectors, sliced by unit index
//   - [Unit]: the dynamics/output contract a unit system must satisfy
//   - [System]: dispatches per unit and stitches the results back together
//
// Everything is generic over the scalar type, so one code path serves
// plain evaluation, forward-mode differentiation, and symbolic scalars
// (see the scalar package).
//
// # Example
//
//	sys := aggregate.NewSystem[scalar.Real, units.Sig[scalar.Real], units.Sig[scalar.Real], units.Sig[scalar.Real]]()
//	sys.AddUnit(units.NewIntegrator[scalar.Real]())
//	xdot, err := sys.Dynamics(0, state, input)
//
// # Thread Safety
//
// System performs no mutation of shared unit state; Dynamics and Output
// are safe to call concurrently as long as units are not mutated. AddUnit
// is not safe to interleave with evaluation.
package aggregate

// Package units provides unit system implementations for aggregate
// composition:
//
//   - [Integrator]: single-state integrator, dynamics = gain*u
//   - [Oscillator]: damped spring-mass oscillator
//   - [Chain]: n-mass spring chain with per-instance width
//
// Each unit is generic over the scalar type, so the same implementation
// evaluates numerically, differentiates, or builds symbolic expressions
// depending on instantiation.
package units

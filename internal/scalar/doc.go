// Package scalar provides the numeric types an aggregate system can be
// instantiated with.
//
// Unit systems are generic over a scalar type T constrained by [Num],
// so the same dynamics code evaluates under:
//
//   - [Real]: plain float64 arithmetic
//   - [Dual]: forward-mode automatic differentiation
//   - [Expr]: symbolic expression building
//
// The constraint is a method set rather than an operator set, which keeps
// dispatch at compile time (no interface boxing inside evaluation loops).
package scalar

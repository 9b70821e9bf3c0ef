package aggregate

import "errors"

// Domain errors for aggregate composition.
var (
	// ErrArityMismatch indicates a vector whose declared unit count differs
	// from the number of units registered with the system.
	ErrArityMismatch = errors.New("aggregate: unit count mismatch")

	// ErrNegativeCount indicates a vector constructed with a negative size.
	ErrNegativeCount = errors.New("aggregate: negative unit count")
)

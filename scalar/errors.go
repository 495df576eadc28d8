// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with an operation
// tag); tests match them via errors.Is.

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrSameVariable is returned when a delta function would tie a variable
	// to itself, either at construction or through substitution.
	ErrSameVariable = errors.New("scalar: delta function requires two distinct variables")

	// ErrEmptyVariable indicates an empty variable name.
	ErrEmptyVariable = errors.New("scalar: empty variable name")

	// ErrNilScalar indicates a nil Scalar argument.
	ErrNilScalar = errors.New("scalar: nil scalar")

	// ErrNotProduct signals an integral built over a sum or a bare number.
	ErrNotProduct = errors.New("scalar: integrand is not a product")

	// ErrIndependentFactor signals an integral whose integrand has a factor
	// that does not depend on the integration variable.
	ErrIndependentFactor = errors.New("scalar: integrand factor independent of integration variable")
)

// Operation tags used when wrapping sentinels.
const (
	opNewDelta   = "NewDelta"
	opSubstitute = "Substitute"
	opIntegrate  = "Integrate"
	opIntegral   = "NewIntegral"
)

// scalarErrorf tags err with the operation that produced it.
func scalarErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

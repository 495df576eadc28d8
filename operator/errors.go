// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.

package operator

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is returned when base operators whose left or right
	// base states are incompatible are added together.
	ErrIncompatible = errors.New("operator: incompatible base operators")

	// ErrLengthMismatch indicates different numbers of base operators and coefficients.
	ErrLengthMismatch = errors.New("operator: base operators and coefficients differ in length")

	// ErrNilBase indicates a base operator with a nil side.
	ErrNilBase = errors.New("operator: nil base state")

	// ErrNilCoefficient indicates a nil coefficient.
	ErrNilCoefficient = errors.New("operator: nil coefficient")

	// ErrEmpty is returned by ToMatrix on the zero operator.
	ErrEmpty = errors.New("operator: empty operator")

	// ErrSymbolicCoefficient is returned by ToMatrix when a coefficient is
	// not a number and no ConvertFunc was supplied.
	ErrSymbolicCoefficient = errors.New("operator: symbolic coefficient without converter")
)

const (
	opNew       = "New"
	opAdd       = "Add"
	opApply     = "Apply"
	opMul       = "Mul"
	opOuter     = "OuterProduct"
	opToMatrix  = "ToMatrix"
	opIntegrate = "Integrate"
)

func operatorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

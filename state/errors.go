// SPDX-License-Identifier: MIT
// Package state: sentinel error set.

package state

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is returned when base states of different variant or
	// shape are combined.
	ErrIncompatible = errors.New("state: incompatible base states")

	// ErrLengthMismatch indicates different numbers of bases and coefficients.
	ErrLengthMismatch = errors.New("state: bases and coefficients differ in length")

	// ErrNilBase indicates a nil base state.
	ErrNilBase = errors.New("state: nil base state")

	// ErrNilCoefficient indicates a nil coefficient.
	ErrNilCoefficient = errors.New("state: nil coefficient")

	// ErrBaseRange signals a qudit base outside [2, 10].
	ErrBaseRange = errors.New("state: qudit base out of range")

	// ErrInvalidDigit signals an empty digit string or a digit not valid in the base.
	ErrInvalidDigit = errors.New("state: invalid qudit digit")

	// ErrEmptyLabel signals an empty mode or variable name in a Fock operator.
	ErrEmptyLabel = errors.New("state: empty Fock mode or variable")

	// ErrInfiniteDimension is returned by VectorIndex/Dim on Fock states.
	ErrInfiniteDimension = errors.New("state: base state has no finite vector index")
)

const (
	opNew         = "New"
	opAdd         = "Add"
	opInner       = "InnerProduct"
	opTensor      = "TensorProduct"
	opSubstitute  = "Substitute"
	opNewQudit    = "NewQudit"
	opNewFock     = "NewFock"
	opVectorIndex = "VectorIndex"
)

func stateErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

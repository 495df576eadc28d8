// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape and nil checks.
//   - Return sentinels wrapped with the validator name so call sites can
//     wrap again uniformly.
//
// Determinism & Performance:
//   - All checks are O(1) and allocate nothing beyond the error value.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateNotNil ensures the matrix reference is non-nil.
//
// A typed nil *mat.CDense stored in the interface is also rejected.
// Errors: ErrNilMatrix.
// Complexity: O(1).
func validateNotNil(m mat.CMatrix) error {
	if m == nil {
		return matrixErrorf("validateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*mat.CDense); ok && d == nil {
		return matrixErrorf("validateNotNil", ErrNilMatrix)
	}
	return nil
}

// validateSquare checks that m is non-nil and Rows == Cols.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func validateSquare(m mat.CMatrix) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf("validateSquare", err)
	}
	if r, c := m.Dims(); r != c {
		return matrixErrorf("validateSquare", ErrNonSquare)
	}
	return nil
}

// validateSameShape is NotNil(a) → NotNil(b) → equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: use before element-wise kernels (Add, Sub, EqualApprox).
func validateSameShape(a, b mat.CMatrix) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf("validateSameShape", err)
	}
	if err := validateNotNil(b); err != nil {
		return matrixErrorf("validateSameShape", err)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return matrixErrorf("validateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return matrixErrorf("validateSameShape: Columns", ErrDimensionMismatch)
	}
	return nil
}

// validateMulCompatible ensures both inputs are non-nil and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func validateMulCompatible(a, b mat.CMatrix) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf("validateMulCompatible", err)
	}
	if err := validateNotNil(b); err != nil {
		return matrixErrorf("validateMulCompatible", err)
	}
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return matrixErrorf("validateMulCompatible", ErrDimensionMismatch)
	}
	return nil
}

// validateTolerance rejects NaN, infinite and negative tolerances.
func validateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return ErrBadTolerance
	}
	return nil
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// EqualApprox reports whether |a[i,j] - b[i,j]| <= tol for every entry.
//
// Unlike mat.CEqualApprox the test is purely absolute, which is what
// matrices of probabilities need near zero.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadTolerance.
// Complexity: O(r·c), early exit on the first violation.
func EqualApprox(a, b mat.CMatrix, tol float64) (bool, error) {
	if err := validateSameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := validateTolerance(tol); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if cmplx.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsHermitian reports whether m = m† within tol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadTolerance.
// Complexity: O(n²).
func IsHermitian(m mat.CMatrix, tol float64) (bool, error) {
	if err := validateSquare(m); err != nil {
		return false, matrixErrorf(opHerm, err)
	}
	adj, err := Adjoint(m)
	if err != nil {
		return false, matrixErrorf(opHerm, err)
	}
	ok, err := EqualApprox(m, adj, tol)
	if err != nil {
		return false, matrixErrorf(opHerm, err)
	}
	return ok, nil
}

// IsIdempotent reports whether m·m = m within tol (projectors).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadTolerance.
// Complexity: O(n³).
func IsIdempotent(m mat.CMatrix, tol float64) (bool, error) {
	if err := validateSquare(m); err != nil {
		return false, matrixErrorf(opIdem, err)
	}
	sq, err := Mul(m, m)
	if err != nil {
		return false, matrixErrorf(opIdem, err)
	}
	ok, err := EqualApprox(sq, m, tol)
	if err != nil {
		return false, matrixErrorf(opIdem, err)
	}
	return ok, nil
}

// IsIdentity reports whether m is the identity within tol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadTolerance.
// Complexity: O(n²).
func IsIdentity(m mat.CMatrix, tol float64) (bool, error) {
	if err := validateSquare(m); err != nil {
		return false, matrixErrorf(opIdent, err)
	}
	if err := validateTolerance(tol); err != nil {
		return false, matrixErrorf(opIdent, err)
	}
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var want complex128
			if i == j {
				want = 1
			}
			if cmplx.Abs(m.At(i, j)-want) > tol {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsPositiveDiagonal reports whether every diagonal entry is real and
// not below -tol. Every element of a POVM must pass this.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadTolerance.
func IsPositiveDiagonal(m mat.CMatrix, tol float64) (bool, error) {
	if err := validateSquare(m); err != nil {
		return false, matrixErrorf(opDiag, err)
	}
	if err := validateTolerance(tol); err != nil {
		return false, matrixErrorf(opDiag, err)
	}
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		v := m.At(i, i)
		if real(v) < -tol || imag(v) > tol || imag(v) < -tol {
			return false, nil
		}
	}
	return true, nil
}

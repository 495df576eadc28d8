// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Mul returns the product a·b as a new CDense.
//
// Implementation:
//   - Stage 1: validateMulCompatible.
//   - Stage 2: triple loop in i→k→j order, skipping zero a[i,k].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·n·c), Space O(r·c).
// AI-Hints: operators exported from sparse symbolic sums are mostly zero,
// the zero skip makes those products close to O(nnz·c).
func Mul(a, b mat.CMatrix) (*mat.CDense, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n := a.Dims()
	_, c := b.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for k := 0; k < n; k++ {
			aik := a.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < c; j++ {
				out.Set(i, j, out.At(i, j)+aik*b.At(k, j))
			}
		}
	}
	return out, nil
}

// Add returns a + b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·c), Space O(r·c).
func Add(a, b mat.CMatrix) (*mat.CDense, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	return elementwise(a, b, func(x, y complex128) complex128 { return x + y }), nil
}

// Sub returns a - b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·c), Space O(r·c).
func Sub(a, b mat.CMatrix) (*mat.CDense, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	return elementwise(a, b, func(x, y complex128) complex128 { return x - y }), nil
}

// Adjoint returns the conjugate transpose m† as a dense copy.
func Adjoint(m mat.CMatrix) (*mat.CDense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	r, c := m.Dims()
	out := mat.NewCDense(c, r, nil)
	out.Copy(m.H())
	return out, nil
}

// Trace returns Σ m[i,i].
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m mat.CMatrix) (complex128, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n, _ := m.Dims()
	var sum complex128
	for i := 0; i < n; i++ {
		sum += m.At(i, i)
	}
	return sum, nil
}

// elementwise applies fn to matching entries; shapes are already checked.
func elementwise(a, b mat.CMatrix, fn func(x, y complex128) complex128) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, fn(a.At(i, j), b.At(i, j)))
		}
	}
	return out
}

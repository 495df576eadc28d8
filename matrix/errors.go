// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ". Kernels wrap sentinels with the
// failing operation name; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadTolerance signals a negative, NaN or infinite tolerance.
	ErrBadTolerance = errors.New("matrix: invalid tolerance")
)

const (
	opMul     = "Mul"
	opAdd     = "Add"
	opSub     = "Sub"
	opAdjoint = "Adjoint"
	opTrace   = "Trace"
	opEqual   = "EqualApprox"
	opHerm    = "IsHermitian"
	opIdem    = "IsIdempotent"
	opIdent   = "IsIdentity"
	opDiag    = "IsPositiveDiagonal"
)

// matrixErrorf tags err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: MIT

// Package matrix provides small complex dense kernels over gonum's
// mat.CMatrix for operators exported with operator.ToMatrix.
//
// The package covers what checking an exported operator needs:
//
//   - Arithmetic (Mul, Add, Sub, Adjoint, Trace) producing fresh
//     *mat.CDense results; inputs are never mutated.
//   - Predicates (EqualApprox, IsHermitian, IsIdempotent, IsIdentity,
//     IsPositiveDiagonal) evaluated within an absolute tolerance.
//
// Nil, shape and tolerance checks run first and fail with wrapped sentinel
// errors. All loops run in fixed i→j→k order, so results are deterministic.
// gonum's CDense has no complex product of its own; Mul is the plain
// O(n·m·p) triple loop.
package matrix

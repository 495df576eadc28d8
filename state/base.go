// SPDX-License-Identifier: MIT

package state

import (
	"fmt"

	"github.com/katalvlaran/qualg/scalar"
)

// Base is an orthonormal basis ket. The variant set is closed: *Qudit and
// *Fock.
type Base interface {
	fmt.Stringer
	fmt.GoStringer
	scalar.Variables

	// Key is the canonical identity; equal keys mean equal kets.
	Key() string
	// Bra renders the dual vector, e.g. <01|.
	Bra() string

	// Compatible reports whether the two kets may share a superposition.
	Compatible(other Base) bool
	// InnerProduct returns <self|other>.
	InnerProduct(other Base) (scalar.Scalar, error)
	// TensorProduct returns |self>⊗|other>.
	TensorProduct(other Base) (Base, error)
	// Substitute renames a variable carried by the ket.
	Substitute(from, to string) (Base, error)

	// VectorIndex is the row of the ket in a dense vector.
	VectorIndex() (int, error)
	// Dim is the dimension of the space the ket lives in.
	Dim() (int, error)

	// ToState wraps the ket as a one-term State.
	ToState() *State

	isBase()
}

// Package state implements kets: orthonormal base states and finite
// superpositions of them with scalar.Scalar coefficients.
//
// Base states come in two closed variants:
//
//	*Qudit  a digit string in a fixed base, e.g. |01> for two qubits
//	*Fock   a monomial of creation operators c†(w1) d†(w2)… acting on the
//	        vacuum, each labeled by a mode and a continuous variable
//
// Qudits are orthonormal and finite dimensional, so they carry a vector
// index for numeric export. Fock monomials overlap through delta functions:
// their inner product is the per-mode permanent of δ(wi-w'j) and is left
// unnormalized; callers supply the 1/√n! factors.
//
// A *State is an ordered map from base state to coefficient. Construction
// and every arithmetic operation prune zero coefficients and reject
// mixing incompatible base states (different variant, length or base).
// States are immutable once returned.
//
// InnerProduct renames the free variables of its argument before pairing
// terms, so the same dummy name used in a bra and a ket does not couple
// the two; WithSharedVariables disables that.
package state

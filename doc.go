// SPDX-License-Identifier: MIT

// Package qualg is a symbolic quantum-algebra engine for photonic
// calculations.
//
// Scalars are built from numbers, wave-packet functions f(x), Dirac deltas
// δ(x-y) and named overlaps <f|g>, and are integrated symbolically over
// their continuous variables. States are superpositions of qudit labels or
// Fock monomials of creation operators; operators are sums of outer
// products of those states.
//
// Subpackages:
//
//	scalar/  scalar algebra, substitution protocol and integration
//	state/   qudit and Fock base states, superpositions
//	operator/ outer-product operators, products and matrix export
//	matrix/  numeric checks on exported complex matrices
//	measure/ outcome probabilities and sampling from Kraus operators
//	codec/   line-oriented text dump of named operators
//	povm/    photon-counting POVM elements after a 50:50 beam splitter
//
// The qualg command under cmd/qualg drives povm, codec and measure.
package qualg

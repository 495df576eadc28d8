// SPDX-License-Identifier: MIT

// Package measure samples measurement outcomes of a state against a set of
// Kraus operators.
//
// For every Kraus operator K the outcome probability is p = <Kψ|Kψ>, fully
// integrated. Probabilities must reduce to real non-negative numbers; a
// converter (WithConverter) may reduce leftover symbols such as overlaps of
// wave packets. The operators are never normalized on the caller's behalf:
// a set whose probabilities do not cover the sampled point is an error.
package measure

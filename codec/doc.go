// SPDX-License-Identifier: MIT

// Package codec persists a name-keyed collection of operators as text.
//
// Each entry takes two lines: the key, then the operator in the
// constructor form printed by (*operator.Operator).GoString:
//
//	1,0
//	Operator(Term(Qudit("10",2),Qudit("10",2),N(0.5,0)),…)
//
// Read parses the second line with a small recursive-descent parser over
// text/scanner and rebuilds the operator through the public constructors,
// so the result is canonical but not necessarily in the written term order.
package codec

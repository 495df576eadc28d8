// SPDX-License-Identifier: MIT

package scalar

import (
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Sum is constant + t1 + t2 + … . Terms are never Numbers and never Sums.
type Sum struct {
	constant Number
	terms    []Scalar
	key      string
}

// newSum flattens items into a sum. No symbolic term yields the constant;
// a single term with a zero constant yields that term.
func newSum(constant Number, items []Scalar) Scalar {
	terms := make([]Scalar, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case Number:
			constant = constant.add(v)
		case *Sum:
			constant = constant.add(v.constant)
			terms = append(terms, v.terms...)
		default:
			terms = append(terms, it)
		}
	}
	if len(terms) == 0 {
		return constant
	}
	if len(terms) == 1 && constant.IsZero() {
		return terms[0]
	}
	return &Sum{
		constant: constant,
		terms:    terms,
		key:      "S[" + constant.Key() + ";" + strings.Join(sortedKeys(terms), ",") + "]",
	}
}

// Constant returns the numeric part.
func (s *Sum) Constant() Number { return s.constant }

// Terms returns a copy of the symbolic terms.
func (s *Sum) Terms() []Scalar { return slices.Clone(s.terms) }

// addends lists the constant (when non-zero) followed by the terms.
func (s *Sum) addends() []Scalar {
	out := make([]Scalar, 0, len(s.terms)+1)
	if !s.constant.IsZero() {
		out = append(out, s.constant)
	}
	return append(out, s.terms...)
}

func (s *Sum) Conj() Scalar {
	return newSum(s.constant.Conj().(Number), conjAll(s.terms))
}

func (s *Sum) Equal(o Scalar) bool { return equalKeys(s, o) }

func (s *Sum) Key() string { return s.key }

func (s *Sum) HasVariable(name string) bool { return anyHasVariable(s.terms, name) }

func (s *Sum) FreeVariables() *set.Set[string] { return unionVariables(s.terms) }

func (s *Sum) Substitute(from, to string) (Scalar, error) {
	if !s.HasVariable(from) {
		return s, nil
	}
	terms, err := substituteAll(s.terms, from, to)
	if err != nil {
		return nil, err
	}
	return newSum(s.constant, terms), nil
}

func (s *Sum) IsZero() bool {
	if !s.constant.IsZero() {
		return false
	}
	for _, t := range s.terms {
		if !t.IsZero() {
			return false
		}
	}
	return true
}

func (s *Sum) IsOne() bool { return false }

// Simplify expands fully, drops zero terms, simplifies the rest and then
// combines term pairs (e.g. 2f + 3f = 5f) until stable.
func (s *Sum) Simplify() Scalar {
	e := s.Expand()
	expanded, ok := e.(*Sum)
	if !ok {
		return e.Simplify()
	}
	var acc Scalar = expanded.constant
	for _, t := range expanded.terms {
		if t.IsZero() {
			continue
		}
		st := t.Simplify()
		if st.IsZero() {
			continue
		}
		acc = Add(acc, st)
	}
	if sum, ok := acc.(*Sum); ok {
		return sum.combine()
	}
	return acc
}

func (s *Sum) combine() Scalar {
	terms := combinePairs(s.terms, mergeTerms)
	kept := terms[:0]
	constant := s.constant
	for _, t := range terms {
		if n, ok := t.(Number); ok {
			constant = constant.add(n)
			continue
		}
		if t.IsZero() {
			continue
		}
		kept = append(kept, t)
	}
	sortByKey(kept)
	return newSum(constant, kept)
}

func mergeTerms(a, b Scalar) (Scalar, bool) {
	m := Add(a, b)
	if ms, ok := m.(*Sum); ok && len(ms.terms) >= 2 {
		return nil, false
	}
	return m, true
}

func (s *Sum) Expand() Scalar {
	items := make([]Scalar, len(s.terms))
	for i, t := range s.terms {
		items[i] = t.Expand()
	}
	return newSum(s.constant, items)
}

func (s *Sum) String() string {
	parts := make([]string, 0, len(s.terms)+1)
	if !s.constant.IsZero() {
		parts = append(parts, s.constant.String())
	}
	for _, t := range s.terms {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " + ")
}

func (s *Sum) GoString() string {
	return "Sum(" + s.constant.GoString() + "," + joinGo(s.terms) + ")"
}

func (*Sum) isScalar() {}

// SPDX-License-Identifier: MIT

package scalar

import (
	"slices"
	"sort"
)

// Integrate integrates s over vars, one variable at a time, simplifying
// after every step. With no vars it integrates over every free variable
// of s in sorted order; the result does not depend on that order.
//
// Per variable v:
//   - a Sum is integrated term by term;
//   - a product is split into factors that depend on v and factors that
//     do not; the dependent part is resolved (see below) and multiplied
//     back with the independent part;
//   - a scalar without v is returned unchanged.
//
// Resolution rules, tried in order:
//  1. Delta sifting: ∫ g(v) δ(v-y) dv = g(y).
//  2. Norm identity: ∫ f*(v) f(v) dv = 1.
//  3. Overlap: ∫ f(v) g(v) dv = <f|g>, whatever the conjugation flags.
//
// When no rule applies the dependent part stays wrapped in an *Integral.
//
// Errors: ErrNilScalar, ErrEmptyVariable.
func Integrate(s Scalar, vars ...string) (Scalar, error) {
	if s == nil {
		return nil, scalarErrorf(opIntegrate, ErrNilScalar)
	}
	if len(vars) == 0 {
		vars = SortedVariables(s)
	}
	for _, v := range vars {
		if v == "" {
			return nil, scalarErrorf(opIntegrate, ErrEmptyVariable)
		}
	}

	out := s.Simplify()
	for _, v := range vars {
		out = integrateVariable(out, v).Simplify()
	}
	return out, nil
}

// integrateVariable performs one elimination step over v.
func integrateVariable(s Scalar, v string) Scalar {
	s = s.Simplify()
	if !s.HasVariable(v) {
		return s
	}
	if sum, ok := s.(*Sum); ok {
		items := make([]Scalar, len(sum.terms))
		for i, t := range sum.terms {
			items[i] = integrateVariable(t, v)
		}
		return newSum(sum.constant, items)
	}

	coef, factors := One, []Scalar{s}
	if p, ok := s.(*Product); ok {
		coef, factors = p.coef, p.factors
	}
	var dependent, independent []Scalar
	for _, f := range factors {
		if f.HasVariable(v) {
			dependent = append(dependent, f)
		} else {
			independent = append(independent, f)
		}
	}
	return newProduct(coef, append(independent, resolve(v, dependent)))
}

// resolve integrates the product of factors, all of which depend on v.
func resolve(v string, factors []Scalar) Scalar {
	if out, ok := eliminateDelta(v, factors); ok {
		return out
	}
	if len(factors) == 2 {
		f1, ok1 := factors[0].(*Func)
		f2, ok2 := factors[1].(*Func)
		if ok1 && ok2 {
			if f1.IsConjugateOf(f2) {
				return One
			}
			return NewInnerProduct(f1.name, f2.name)
		}
	}
	in, err := newIntegral(v, newProduct(One, factors))
	if err != nil {
		// factors were partitioned above; reaching this is a bug.
		panic(err)
	}
	return in
}

// eliminateDelta applies the sifting identity with the first delta (in key
// order) on v whose elimination is well defined. Several deltas on v are
// handled one at a time: once one fires v is gone and the remaining deltas
// relate the surviving variables. A delta is skipped when substituting
// would turn another factor into δ(y-y).
func eliminateDelta(v string, factors []Scalar) (Scalar, bool) {
	var idx []int
	for i, f := range factors {
		if d, ok := f.(*Delta); ok && d.Mentions(v) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return factors[idx[a]].Key() < factors[idx[b]].Key() })

	for _, i := range idx {
		target := factors[i].(*Delta).Other(v)
		rest := slices.Delete(slices.Clone(factors), i, i+1)
		out, err := substituteAll(rest, v, target)
		if err != nil {
			continue
		}
		return newProduct(One, out), true
	}
	return nil, false
}

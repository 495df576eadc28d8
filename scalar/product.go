// SPDX-License-Identifier: MIT

package scalar

import (
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Product is coef × f1 × f2 × … . Factors are never Numbers and never
// Products; the factor order carries no meaning.
type Product struct {
	coef    Number
	factors []Scalar
	key     string
}

// newProduct flattens items into a product and collapses degenerate
// results: a zero coefficient yields Zero, no symbolic factor yields the
// coefficient and a single factor with coefficient 1 yields that factor.
func newProduct(coef Number, items []Scalar) Scalar {
	factors := make([]Scalar, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case Number:
			coef = coef.mul(v)
		case *Product:
			coef = coef.mul(v.coef)
			factors = append(factors, v.factors...)
		default:
			factors = append(factors, it)
		}
	}
	if coef.IsZero() {
		return Zero
	}
	if len(factors) == 0 {
		return coef
	}
	if len(factors) == 1 && coef.isExactOne() {
		return factors[0]
	}
	return &Product{
		coef:    coef,
		factors: factors,
		key:     "P[" + coef.Key() + ";" + strings.Join(sortedKeys(factors), ",") + "]",
	}
}

// Coefficient returns the numeric coefficient.
func (p *Product) Coefficient() Number { return p.coef }

// Factors returns a copy of the symbolic factors.
func (p *Product) Factors() []Scalar { return slices.Clone(p.factors) }

func (p *Product) Conj() Scalar {
	return newProduct(p.coef.Conj().(Number), conjAll(p.factors))
}

func (p *Product) Equal(o Scalar) bool { return equalKeys(p, o) }

func (p *Product) Key() string { return p.key }

func (p *Product) HasVariable(name string) bool { return anyHasVariable(p.factors, name) }

func (p *Product) FreeVariables() *set.Set[string] { return unionVariables(p.factors) }

func (p *Product) Substitute(from, to string) (Scalar, error) {
	if !p.HasVariable(from) {
		return p, nil
	}
	factors, err := substituteAll(p.factors, from, to)
	if err != nil {
		return nil, err
	}
	return newProduct(p.coef, factors), nil
}

func (p *Product) IsZero() bool {
	if p.coef.IsZero() {
		return true
	}
	for _, f := range p.factors {
		if f.IsZero() {
			return true
		}
	}
	return false
}

func (p *Product) IsOne() bool {
	if !p.coef.IsOne() {
		return false
	}
	for _, f := range p.factors {
		if !f.IsOne() {
			return false
		}
	}
	return true
}

// Simplify drops unit factors, short-circuits on zero factors, simplifies
// what remains and distributes over any sum factor. Without a sum factor
// the factors are combined pairwise until stable and sorted by key.
func (p *Product) Simplify() Scalar {
	if p.coef.IsZero() {
		return Zero
	}
	var acc Scalar = p.coef
	for _, f := range p.factors {
		if f.IsZero() {
			return Zero
		}
		if f.IsOne() {
			continue
		}
		s := f.Simplify()
		if s.IsZero() {
			return Zero
		}
		if s.IsOne() {
			continue
		}
		acc = Mul(acc, s)
	}

	switch e := acc.Expand().(type) {
	case *Sum:
		return e.Simplify()
	case *Product:
		return e.combine()
	default:
		return e
	}
}

// combine merges factor pairs whose product no longer needs two symbolic
// factors and returns the product in canonical order.
func (p *Product) combine() Scalar {
	factors := combinePairs(p.factors, mergeFactors)
	sortByKey(factors)
	return newProduct(p.coef, factors)
}

func mergeFactors(a, b Scalar) (Scalar, bool) {
	m := Mul(a, b)
	if mp, ok := m.(*Product); ok && len(mp.factors) >= 2 {
		return nil, false
	}
	return m, true
}

// Expand distributes the product over every factor that expands to a sum.
func (p *Product) Expand() Scalar {
	partial := []Scalar{p.coef}
	for _, f := range p.factors {
		e := f.Expand()
		sum, ok := e.(*Sum)
		if !ok {
			for i := range partial {
				partial[i] = Mul(partial[i], e)
			}
			continue
		}
		addends := sum.addends()
		next := make([]Scalar, 0, len(partial)*len(addends))
		for _, x := range partial {
			for _, y := range addends {
				next = append(next, Mul(x, y))
			}
		}
		partial = next
	}
	return newSum(Zero, partial)
}

func (p *Product) String() string {
	parts := make([]string, 0, len(p.factors)+1)
	if !p.coef.isExactOne() {
		parts = append(parts, p.coef.String())
	}
	for _, f := range p.factors {
		if _, ok := f.(*Sum); ok {
			parts = append(parts, "("+f.String()+")")
			continue
		}
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "*")
}

func (p *Product) GoString() string {
	return "Prod(" + p.coef.GoString() + "," + joinGo(p.factors) + ")"
}

func (*Product) isScalar() {}

// combinePairs repeatedly replaces the first pair (i<j) accepted by merge
// with the merged value. Every merge removes an entry, so at most len(xs)
// rounds run.
func combinePairs(xs []Scalar, merge func(a, b Scalar) (Scalar, bool)) []Scalar {
	out := slices.Clone(xs)
	for round := 0; round < len(xs); round++ {
		changed := false
		for i := 0; i < len(out) && !changed; i++ {
			for j := i + 1; j < len(out); j++ {
				m, ok := merge(out[i], out[j])
				if !ok {
					continue
				}
				out[i] = m
				out = slices.Delete(out, j, j+1)
				changed = true
				break
			}
		}
		if !changed {
			break
		}
	}
	return out
}

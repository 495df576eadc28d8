// SPDX-License-Identifier: MIT

package scalar

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Integral is an unresolved integral ∫ f1*f2*… d(variable). Every factor
// depends on the bound variable; Integrate pulls independent factors out
// before wrapping, so an Integral left in a result is a genuine residue
// (e.g. ∫ f(x) dx with nothing to pair f with).
// boundMarker prefixes the canonical bound-variable name inside keys.
const boundMarker = "#"

type Integral struct {
	variable string
	factors  []Scalar
	key      string
}

// NewIntegral wraps s as an unresolved integral over variable without
// trying any resolution rule. It is the inverse of GoString for readers of
// dumped expressions; Simplify resolves what can be resolved.
//
// Errors: ErrEmptyVariable, ErrNilScalar, ErrNotProduct, ErrIndependentFactor.
func NewIntegral(variable string, s Scalar) (*Integral, error) {
	if variable == "" {
		return nil, scalarErrorf(opIntegral, ErrEmptyVariable)
	}
	if s == nil {
		return nil, scalarErrorf(opIntegral, ErrNilScalar)
	}
	return newIntegral(variable, s)
}

// newIntegral wraps s, which must be a product (or a single symbolic
// factor) whose every factor depends on variable.
func newIntegral(variable string, s Scalar) (*Integral, error) {
	var factors []Scalar
	switch v := s.(type) {
	case Number, *Sum:
		return nil, scalarErrorf(opIntegral, ErrNotProduct)
	case *Product:
		if !v.coef.isExactOne() {
			return nil, scalarErrorf(opIntegral, ErrIndependentFactor)
		}
		factors = slices.Clone(v.factors)
	default:
		factors = []Scalar{s}
	}
	for _, f := range factors {
		if !f.HasVariable(variable) {
			return nil, scalarErrorf(opIntegral, ErrIndependentFactor)
		}
	}
	return buildIntegral(variable, factors), nil
}

func buildIntegral(variable string, factors []Scalar) *Integral {
	return &Integral{
		variable: variable,
		factors:  factors,
		key:      integralKey(variable, factors),
	}
}

// integralKey names the bound variable by its binder depth, so integrals
// that differ only in the name of the bound variable share a key. Nested
// binders get smaller depths and never clash with the outer placeholder.
func integralKey(variable string, factors []Scalar) string {
	depth := 1
	for _, f := range factors {
		depth = max(depth, integralDepth(f)+1)
	}
	placeholder := boundMarker + strconv.Itoa(depth)
	canonical, err := substituteAll(factors, variable, placeholder)
	if err != nil {
		// A free variable already named like the placeholder; keep the raw name.
		placeholder, canonical = variable, factors
	}
	return "I[" + placeholder + ";" + strings.Join(sortedKeys(canonical), ",") + "]"
}

// integralDepth is the deepest nesting of integrals inside s.
func integralDepth(s Scalar) int {
	var xs []Scalar
	switch v := s.(type) {
	case *Integral:
		d := 0
		for _, f := range v.factors {
			d = max(d, integralDepth(f))
		}
		return d + 1
	case *Product:
		xs = v.factors
	case *Sum:
		xs = v.terms
	default:
		return 0
	}
	d := 0
	for _, x := range xs {
		d = max(d, integralDepth(x))
	}
	return d
}

// Variable returns the bound integration variable.
func (in *Integral) Variable() string { return in.variable }

// Integrand returns the wrapped product.
func (in *Integral) Integrand() Scalar { return newProduct(One, in.factors) }

func (in *Integral) Conj() Scalar {
	return buildIntegral(in.variable, conjAll(in.factors))
}

func (in *Integral) Equal(o Scalar) bool { return equalKeys(in, o) }

func (in *Integral) Key() string { return in.key }

func (in *Integral) HasVariable(name string) bool {
	return name != in.variable && anyHasVariable(in.factors, name)
}

func (in *Integral) FreeVariables() *set.Set[string] {
	vars := unionVariables(in.factors)
	vars.Remove(in.variable)
	return vars
}

// Substitute leaves the bound variable alone. When to would be captured by
// the binder, the bound variable is renamed to a fresh name first.
func (in *Integral) Substitute(from, to string) (Scalar, error) {
	if !in.HasVariable(from) {
		return in, nil
	}
	factors := in.factors
	bound := in.variable
	if to == bound {
		taken := unionVariables(factors)
		taken.Insert(to)
		bound = FreshName(in.variable, taken)
		var err error
		if factors, err = substituteAll(factors, in.variable, bound); err != nil {
			return nil, err
		}
	}
	factors, err := substituteAll(factors, from, to)
	if err != nil {
		return nil, err
	}
	return buildIntegral(bound, factors), nil
}

func (in *Integral) IsZero() bool { return anyZero(in.factors) }

func (in *Integral) IsOne() bool { return false }

// Simplify simplifies the integrand and re-runs the integration rules.
func (in *Integral) Simplify() Scalar {
	return integrateVariable(newProduct(One, in.factors), in.variable)
}

func (in *Integral) Expand() Scalar { return in }

func (in *Integral) String() string {
	parts := make([]string, len(in.factors))
	for i, f := range in.factors {
		parts[i] = f.String()
	}
	return "∫d" + in.variable + "[" + strings.Join(parts, "*") + "]"
}

func (in *Integral) GoString() string {
	return "Integral(" + strconv.Quote(in.variable) + "," + joinGo(in.factors) + ")"
}

func (*Integral) isScalar() {}

func anyZero(xs []Scalar) bool {
	for _, x := range xs {
		if x.IsZero() {
			return true
		}
	}
	return false
}

// SPDX-License-Identifier: MIT

package scalar

import (
	"strconv"

	"github.com/hashicorp/go-set/v3"
)

// Func is an opaque function of one symbolic variable, e.g. a photon's
// wave packet phi(w1). Conjugation is a flag, not a separate function.
type Func struct {
	name       string
	variable   string
	conjugated bool
}

// NewFunc returns name(variable).
func NewFunc(name, variable string) *Func {
	return &Func{name: name, variable: variable}
}

// NewConjFunc returns name*(variable).
func NewConjFunc(name, variable string) *Func {
	return &Func{name: name, variable: variable, conjugated: true}
}

func (f *Func) Name() string { return f.name }
func (f *Func) Variable() string { return f.variable }
func (f *Func) Conjugated() bool { return f.conjugated }
func (f *Func) Conj() Scalar { return &Func{name: f.name, variable: f.variable, conjugated: !f.conjugated} }
func (f *Func) Equal(o Scalar) bool { return equalKeys(f, o) }

// IsConjugateOf reports whether o is the same function of the same variable
// with the opposite conjugation flag.
func (f *Func) IsConjugateOf(o *Func) bool {
	return f.name == o.name && f.variable == o.variable && f.conjugated != o.conjugated
}

func (f *Func) Key() string {
	if f.conjugated {
		return "F*(" + f.name + "," + f.variable + ")"
	}
	return "F(" + f.name + "," + f.variable + ")"
}

func (f *Func) HasVariable(name string) bool { return f.variable == name }

func (f *Func) FreeVariables() *set.Set[string] { return set.From([]string{f.variable}) }

func (f *Func) Substitute(from, to string) (Scalar, error) {
	if f.variable != from {
		return f, nil
	}
	if to == "" {
		return nil, scalarErrorf(opSubstitute, ErrEmptyVariable)
	}
	return &Func{name: f.name, variable: to, conjugated: f.conjugated}, nil
}

func (f *Func) IsZero() bool { return false }
func (f *Func) IsOne() bool { return false }
func (f *Func) Simplify() Scalar { return f }
func (f *Func) Expand() Scalar { return f }

func (f *Func) String() string {
	if f.conjugated {
		return f.name + "*(" + f.variable + ")"
	}
	return f.name + "(" + f.variable + ")"
}

func (f *Func) GoString() string {
	return "F(" + strconv.Quote(f.name) + "," + strconv.Quote(f.variable) + "," +
		strconv.FormatBool(f.conjugated) + ")"
}

func (*Func) isScalar() {}

// Delta is the Dirac delta δ(a-b). The variables are stored sorted, which
// makes δ(x-y) and δ(y-x) the same value.
type Delta struct {
	a, b string
}

// NewDelta returns δ(v1-v2). It fails with ErrSameVariable when v1 == v2
// and with ErrEmptyVariable when either name is empty.
func NewDelta(v1, v2 string) (*Delta, error) {
	if v1 == "" || v2 == "" {
		return nil, scalarErrorf(opNewDelta, ErrEmptyVariable)
	}
	if v1 == v2 {
		return nil, scalarErrorf(opNewDelta, ErrSameVariable)
	}
	if v2 < v1 {
		v1, v2 = v2, v1
	}
	return &Delta{a: v1, b: v2}, nil
}

// MustDelta is like NewDelta but panics on error.
func MustDelta(v1, v2 string) *Delta {
	d, err := NewDelta(v1, v2)
	if err != nil {
		panic(err)
	}
	return d
}

// Variables returns the two variables in sorted order.
func (d *Delta) Variables() (string, string) { return d.a, d.b }

// Mentions reports whether v is one of the two variables.
func (d *Delta) Mentions(v string) bool { return d.a == v || d.b == v }

// Other returns the variable paired with v. v must be mentioned.
func (d *Delta) Other(v string) string {
	if d.a == v {
		return d.b
	}
	return d.a
}

func (d *Delta) Conj() Scalar { return d }
func (d *Delta) Equal(o Scalar) bool { return equalKeys(d, o) }
func (d *Delta) Key() string { return "D(" + d.a + "," + d.b + ")" }
func (d *Delta) HasVariable(v string) bool { return d.Mentions(v) }

func (d *Delta) FreeVariables() *set.Set[string] { return set.From([]string{d.a, d.b}) }

// Substitute fails with ErrSameVariable when the rename would tie the
// delta's variable to itself.
func (d *Delta) Substitute(from, to string) (Scalar, error) {
	if !d.Mentions(from) {
		return d, nil
	}
	nd, err := NewDelta(d.Other(from), to)
	if err != nil {
		return nil, scalarErrorf(opSubstitute, err)
	}
	return nd, nil
}

func (d *Delta) IsZero() bool { return false }
func (d *Delta) IsOne() bool { return false }
func (d *Delta) Simplify() Scalar { return d }
func (d *Delta) Expand() Scalar { return d }
func (d *Delta) String() string { return "δ(" + d.a + "-" + d.b + ")" }

func (d *Delta) GoString() string {
	return "D(" + strconv.Quote(d.a) + "," + strconv.Quote(d.b) + ")"
}

func (*Delta) isScalar() {}

// InnerProduct is the unresolved overlap <f|g> left behind by integrating
// two different functions of the same variable. The names are stored
// sorted; the overlap is treated as real, so Conj is the identity.
type InnerProduct struct {
	a, b string
}

// NewInnerProduct returns <n1|n2>.
func NewInnerProduct(n1, n2 string) *InnerProduct {
	if n2 < n1 {
		n1, n2 = n2, n1
	}
	return &InnerProduct{a: n1, b: n2}
}

// Names returns the two function names in sorted order.
func (p *InnerProduct) Names() (string, string) { return p.a, p.b }

func (p *InnerProduct) Conj() Scalar { return p }
func (p *InnerProduct) Equal(o Scalar) bool { return equalKeys(p, o) }
func (p *InnerProduct) Key() string { return "IP(" + p.a + "," + p.b + ")" }
func (p *InnerProduct) HasVariable(string) bool { return false }
func (p *InnerProduct) FreeVariables() *set.Set[string] { return set.New[string](0) }

func (p *InnerProduct) Substitute(string, string) (Scalar, error) { return p, nil }

func (p *InnerProduct) IsZero() bool { return false }
func (p *InnerProduct) IsOne() bool { return false }
func (p *InnerProduct) Simplify() Scalar { return p }
func (p *InnerProduct) Expand() Scalar { return p }
func (p *InnerProduct) String() string { return "<" + p.a + "|" + p.b + ">" }

func (p *InnerProduct) GoString() string {
	return "IP(" + strconv.Quote(p.a) + "," + strconv.Quote(p.b) + ")"
}

func (*InnerProduct) isScalar() {}

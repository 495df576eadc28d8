// SPDX-License-Identifier: MIT

package state

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/katalvlaran/qualg/scalar"
)

// Op is one creation operator: Mode†(Variable).
type Op struct {
	Mode     string
	Variable string
}

func (o Op) String() string { return o.Mode + "(" + o.Variable + ")" }

func (o Op) less(p Op) bool {
	if o.Mode != p.Mode {
		return o.Mode < p.Mode
	}
	return o.Variable < p.Variable
}

// Fock is a monomial of creation operators applied to the vacuum. The
// operators commute, so they are kept sorted and order never matters.
type Fock struct {
	ops []Op
}

// NewFock builds the monomial of ops. An empty list is the vacuum.
func NewFock(ops ...Op) (*Fock, error) {
	for _, o := range ops {
		if o.Mode == "" || o.Variable == "" {
			return nil, stateErrorf(opNewFock, ErrEmptyLabel)
		}
	}
	return newFock(slices.Clone(ops)), nil
}

// MustFock is NewFock that panics on error.
func MustFock(ops ...Op) *Fock {
	f, err := NewFock(ops...)
	if err != nil {
		panic(err)
	}
	return f
}

// Vacuum is the monomial with no operators.
func Vacuum() *Fock { return &Fock{} }

func newFock(ops []Op) *Fock {
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].less(ops[j]) })
	return &Fock{ops: ops}
}

// Ops returns a copy of the sorted operators.
func (f *Fock) Ops() []Op { return slices.Clone(f.ops) }

// Photons returns the total number of creation operators.
func (f *Fock) Photons() int { return len(f.ops) }

// ModeCounts returns the number of operators per mode.
func (f *Fock) ModeCounts() map[string]int {
	out := make(map[string]int)
	for _, o := range f.ops {
		out[o.Mode]++
	}
	return out
}

func (f *Fock) Key() string {
	parts := make([]string, len(f.ops))
	for i, o := range f.ops {
		parts[i] = o.Mode + ":" + o.Variable
	}
	return "F[" + strings.Join(parts, ",") + "]"
}

func (f *Fock) label() string {
	if len(f.ops) == 0 {
		return "vac"
	}
	var b strings.Builder
	for _, o := range f.ops {
		b.WriteString(o.String())
	}
	return b.String()
}

func (f *Fock) String() string { return "|" + f.label() + ">" }

func (f *Fock) Bra() string { return "<" + f.label() + "|" }

func (f *Fock) GoString() string {
	parts := make([]string, len(f.ops))
	for i, o := range f.ops {
		parts[i] = "Op(" + strconv.Quote(o.Mode) + "," + strconv.Quote(o.Variable) + ")"
	}
	return "Fock(" + strings.Join(parts, ",") + ")"
}

func (f *Fock) FreeVariables() *set.Set[string] {
	out := set.New[string](len(f.ops))
	for _, o := range f.ops {
		out.Insert(o.Variable)
	}
	return out
}

func (f *Fock) HasVariable(name string) bool {
	for _, o := range f.ops {
		if o.Variable == name {
			return true
		}
	}
	return false
}

// Compatible accepts any other Fock monomial, whatever its photon number.
func (f *Fock) Compatible(other Base) bool {
	_, ok := other.(*Fock)
	return ok
}

// InnerProduct returns <self|other>. Monomials with different photon
// numbers in some mode are orthogonal. Otherwise each mode contributes the
// permanent of the matrix δ(wi - w'j), and the modes multiply.
//
// A variable shared by both sides would need δ(w-w) and fails with
// scalar.ErrSameVariable; State.InnerProduct renames variables first.
func (f *Fock) InnerProduct(other Base) (scalar.Scalar, error) {
	o, ok := other.(*Fock)
	if !ok {
		return nil, stateErrorf(opInner, ErrIncompatible)
	}
	left, right := f.byMode(), o.byMode()
	modes := set.New[string](len(left) + len(right))
	for m := range left {
		modes.Insert(m)
	}
	for m := range right {
		modes.Insert(m)
	}
	names := modes.Slice()
	sort.Strings(names)

	for _, m := range names {
		if len(left[m]) != len(right[m]) {
			return scalar.Zero, nil
		}
	}
	var result scalar.Scalar = scalar.One
	for _, m := range names {
		perm, err := permanent(left[m], right[m])
		if err != nil {
			return nil, stateErrorf(opInner, err)
		}
		result = scalar.Mul(result, perm)
	}
	return result, nil
}

func (f *Fock) byMode() map[string][]string {
	out := make(map[string][]string)
	for _, o := range f.ops {
		out[o.Mode] = append(out[o.Mode], o.Variable)
	}
	return out
}

// permanent returns Σ_σ Π_i δ(left[i] - right[σ(i)]).
func permanent(left, right []string) (scalar.Scalar, error) {
	perms := permutations(len(right))
	terms := make([]scalar.Scalar, 0, len(perms))
	for _, p := range perms {
		factors := make([]scalar.Scalar, len(left))
		for i, j := range p {
			d, err := scalar.NewDelta(left[i], right[j])
			if err != nil {
				return nil, err
			}
			factors[i] = d
		}
		terms = append(terms, scalar.MulAll(factors...))
	}
	return scalar.AddAll(terms...), nil
}

// permutations lists the permutations of 0..n-1 in lexicographic order.
func permutations(n int) [][]int {
	var out [][]int
	used := make([]bool, n)
	cur := make([]int, 0, n)
	var rec func()
	rec = func() {
		if len(cur) == n {
			out = append(out, slices.Clone(cur))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, i)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}

// TensorProduct merges the two monomials.
func (f *Fock) TensorProduct(other Base) (Base, error) {
	o, ok := other.(*Fock)
	if !ok {
		return nil, stateErrorf(opTensor, ErrIncompatible)
	}
	ops := make([]Op, 0, len(f.ops)+len(o.ops))
	ops = append(ops, f.ops...)
	return newFock(append(ops, o.ops...)), nil
}

func (f *Fock) Substitute(from, to string) (Base, error) {
	if !f.HasVariable(from) {
		return f, nil
	}
	if to == "" {
		return nil, stateErrorf(opSubstitute, ErrEmptyLabel)
	}
	ops := slices.Clone(f.ops)
	for i := range ops {
		if ops[i].Variable == from {
			ops[i].Variable = to
		}
	}
	return newFock(ops), nil
}

func (f *Fock) VectorIndex() (int, error) {
	return 0, stateErrorf(opVectorIndex, ErrInfiniteDimension)
}

func (f *Fock) Dim() (int, error) {
	return 0, stateErrorf(opVectorIndex, ErrInfiniteDimension)
}

func (f *Fock) ToState() *State { return FromBase(f) }

func (*Fock) isBase() {}

// SPDX-License-Identifier: MIT

package operator

import (
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/katalvlaran/qualg/scalar"
	"github.com/katalvlaran/qualg/state"
)

// Term is one c|l><r| entry of an Operator.
type Term struct {
	Op   Base
	Coef scalar.Scalar
}

// Operator is Σ cᵢ|lᵢ><rᵢ|. Entries keep first-insertion order, keys are
// unique, no coefficient is zero, and all left (right) base states are
// pairwise compatible. Operators are immutable once returned.
type Operator struct {
	terms []Term
	index map[string]int
}

func newOperator(capacity int) *Operator {
	return &Operator{terms: make([]Term, 0, capacity), index: make(map[string]int, capacity)}
}

func (o *Operator) accumulate(b Base, c scalar.Scalar) error {
	if len(o.terms) > 0 && !o.terms[0].Op.Compatible(b) {
		return ErrIncompatible
	}
	k := b.Key()
	if i, ok := o.index[k]; ok {
		o.terms[i].Coef = scalar.Add(o.terms[i].Coef, c)
		return nil
	}
	o.index[k] = len(o.terms)
	o.terms = append(o.terms, Term{Op: b, Coef: c})
	return nil
}

func (o *Operator) prune() *Operator {
	kept := o.terms[:0]
	for _, t := range o.terms {
		if !t.Coef.IsZero() {
			kept = append(kept, t)
		}
	}
	o.terms = kept
	o.index = make(map[string]int, len(kept))
	for i, t := range kept {
		o.index[t.Op.Key()] = i
	}
	return o
}

// New builds Σ coefs[i] ops[i]; nil coefs means all ones.
//
// Errors: ErrLengthMismatch, ErrNilBase, ErrNilCoefficient, ErrIncompatible.
func New(ops []Base, coefs []scalar.Scalar) (*Operator, error) {
	if coefs != nil && len(coefs) != len(ops) {
		return nil, operatorErrorf(opNew, ErrLengthMismatch)
	}
	out := newOperator(len(ops))
	for i, b := range ops {
		if b.Left == nil || b.Right == nil {
			return nil, operatorErrorf(opNew, ErrNilBase)
		}
		var c scalar.Scalar = scalar.One
		if coefs != nil {
			if c = coefs[i]; c == nil {
				return nil, operatorErrorf(opNew, ErrNilCoefficient)
			}
		}
		if err := out.accumulate(b, c); err != nil {
			return nil, operatorErrorf(opNew, err)
		}
	}
	return out.prune(), nil
}

// FromBase wraps b as 1·b.
func FromBase(b Base) *Operator {
	out := newOperator(1)
	_ = out.accumulate(b, scalar.One)
	return out
}

// OuterProduct returns |l><r| = Σ lᵢ conj(rⱼ) |bᵢ><b'ⱼ|.
func OuterProduct(l, r *state.State) (*Operator, error) {
	out := newOperator(l.Len() * r.Len())
	for _, lt := range l.Terms() {
		for _, rt := range r.Terms() {
			c := scalar.Mul(lt.Coef, rt.Coef.Conj())
			if err := out.accumulate(Base{Left: lt.Base, Right: rt.Base}, c); err != nil {
				return nil, operatorErrorf(opOuter, err)
			}
		}
	}
	return out.prune(), nil
}

// Len returns the number of terms.
func (o *Operator) Len() int { return len(o.terms) }

// IsZero reports whether the operator has no terms.
func (o *Operator) IsZero() bool { return len(o.terms) == 0 }

// Terms returns a copy of the entries in insertion order.
func (o *Operator) Terms() []Term {
	out := make([]Term, len(o.terms))
	copy(out, o.terms)
	return out
}

// Coefficient returns the coefficient of b, or zero when b is absent.
func (o *Operator) Coefficient(b Base) scalar.Scalar {
	if i, ok := o.index[b.Key()]; ok {
		return o.terms[i].Coef
	}
	return scalar.Zero
}

// Compatible reports whether o and other may be added.
func (o *Operator) Compatible(other *Operator) bool {
	if o.IsZero() || other.IsZero() {
		return true
	}
	return o.terms[0].Op.Compatible(other.terms[0].Op)
}

// Add returns o + other.
func (o *Operator) Add(other *Operator) (*Operator, error) {
	if !o.Compatible(other) {
		return nil, operatorErrorf(opAdd, ErrIncompatible)
	}
	out := newOperator(o.Len() + other.Len())
	for _, t := range o.terms {
		_ = out.accumulate(t.Op, t.Coef)
	}
	for _, t := range other.terms {
		_ = out.accumulate(t.Op, t.Coef)
	}
	return out.prune(), nil
}

// Sub returns o - other.
func (o *Operator) Sub(other *Operator) (*Operator, error) {
	return o.Add(other.Scale(scalar.Int(-1)))
}

// Scale multiplies every coefficient by c.
func (o *Operator) Scale(c scalar.Scalar) *Operator {
	out := newOperator(o.Len())
	for _, t := range o.terms {
		_ = out.accumulate(t.Op, scalar.Mul(t.Coef, c))
	}
	return out.prune()
}

// Apply returns o|s>.
func (o *Operator) Apply(s *state.State) (*state.State, error) {
	out, err := state.New(nil, nil)
	if err != nil {
		return nil, err
	}
	for _, t := range o.terms {
		part, err := t.Op.Apply(s)
		if err != nil {
			return nil, err
		}
		if out, err = out.Add(part.Scale(t.Coef)); err != nil {
			return nil, operatorErrorf(opApply, err)
		}
	}
	return out, nil
}

// Mul returns the composition o·other:
// Σ cᵢ dⱼ <rᵢ|l'ⱼ> |lᵢ><r'ⱼ|, skipping pairs with a zero coefficient.
func (o *Operator) Mul(other *Operator) (*Operator, error) {
	out := newOperator(o.Len() * other.Len())
	for _, a := range o.terms {
		for _, b := range other.terms {
			ip, err := a.Op.Right.InnerProduct(b.Op.Left)
			if err != nil {
				return nil, operatorErrorf(opMul, err)
			}
			if ip.IsZero() {
				continue
			}
			c := scalar.MulAll(a.Coef, b.Coef, ip)
			if c.IsZero() {
				continue
			}
			if err := out.accumulate(Base{Left: a.Op.Left, Right: b.Op.Right}, c); err != nil {
				return nil, operatorErrorf(opMul, err)
			}
		}
	}
	return out.prune(), nil
}

// Dagger returns the adjoint: slots swapped, coefficients conjugated.
func (o *Operator) Dagger() *Operator {
	out := newOperator(o.Len())
	for _, t := range o.terms {
		_ = out.accumulate(t.Op.Dagger(), t.Coef.Conj())
	}
	return out.prune()
}

// Simplify simplifies every coefficient and prunes zeros.
func (o *Operator) Simplify() *Operator {
	out, _ := o.MapCoefficients(func(_ Base, c scalar.Scalar) (scalar.Scalar, error) {
		return c.Simplify(), nil
	})
	return out
}

// MapCoefficients returns a new operator whose coefficients are fn applied
// to each term. o itself is left untouched.
func (o *Operator) MapCoefficients(fn func(Base, scalar.Scalar) (scalar.Scalar, error)) (*Operator, error) {
	out := newOperator(o.Len())
	for _, t := range o.terms {
		c, err := fn(t.Op, t.Coef)
		if err != nil {
			return nil, err
		}
		_ = out.accumulate(t.Op, c)
	}
	return out.prune(), nil
}

// Integrate integrates every coefficient over the variables it does not
// share with its base operator. Variables still carried by the kets and
// bras are kept symbolic.
func (o *Operator) Integrate() (*Operator, error) {
	return o.MapCoefficients(func(b Base, c scalar.Scalar) (scalar.Scalar, error) {
		keep := b.FreeVariables()
		var vars []string
		for _, v := range scalar.SortedVariables(c) {
			if !keep.Contains(v) {
				vars = append(vars, v)
			}
		}
		if len(vars) == 0 {
			return c.Simplify(), nil
		}
		out, err := scalar.Integrate(c, vars...)
		if err != nil {
			return nil, operatorErrorf(opIntegrate, err)
		}
		return out, nil
	})
}

// Substitute renames a variable in every slot and coefficient.
func (o *Operator) Substitute(from, to string) (*Operator, error) {
	out := newOperator(o.Len())
	for _, t := range o.terms {
		b, err := t.Op.Substitute(from, to)
		if err != nil {
			return nil, err
		}
		c, err := t.Coef.Substitute(from, to)
		if err != nil {
			return nil, err
		}
		_ = out.accumulate(b, c)
	}
	return out.prune(), nil
}

// FreeVariables unions the variables of all slots and coefficients.
func (o *Operator) FreeVariables() *set.Set[string] {
	out := set.New[string](0)
	for _, t := range o.terms {
		out.InsertSet(t.Op.FreeVariables())
		out.InsertSet(t.Coef.FreeVariables())
	}
	return out
}

func (o *Operator) HasVariable(name string) bool {
	for _, t := range o.terms {
		if t.Op.HasVariable(name) || t.Coef.HasVariable(name) {
			return true
		}
	}
	return false
}

// Equal reports whether both operators have the same terms.
func (o *Operator) Equal(other *Operator) bool {
	if o.Len() != other.Len() {
		return false
	}
	for _, t := range o.terms {
		if !t.Coef.Equal(other.Coefficient(t.Op)) {
			return false
		}
	}
	return true
}

func (o *Operator) String() string {
	if o.IsZero() {
		return "0"
	}
	parts := make([]string, len(o.terms))
	for i, t := range o.terms {
		prefix := ""
		switch {
		case t.Coef.IsOne():
		case isSum(t.Coef):
			prefix = "(" + t.Coef.String() + ")"
		default:
			prefix = t.Coef.String()
		}
		parts[i] = prefix + t.Op.String()
	}
	return strings.Join(parts, " + ")
}

// GoString renders the constructor form read back by package codec.
func (o *Operator) GoString() string {
	parts := make([]string, len(o.terms))
	for i, t := range o.terms {
		parts[i] = "Term(" + t.Op.Left.GoString() + "," + t.Op.Right.GoString() + "," + t.Coef.GoString() + ")"
	}
	return "Operator(" + strings.Join(parts, ",") + ")"
}

func isSum(c scalar.Scalar) bool {
	_, ok := c.(*scalar.Sum)
	return ok
}

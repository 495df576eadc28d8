// SPDX-License-Identifier: MIT

package state

import (
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/katalvlaran/qualg/scalar"
)

// Term is one c|b> entry of a State.
type Term struct {
	Base Base
	Coef scalar.Scalar
}

// State is Σ cᵢ|bᵢ> over pairwise compatible base states. Entries keep
// their first-insertion order; keys are unique and no coefficient is zero.
type State struct {
	terms []Term
	index map[string]int
}

func newState(capacity int) *State {
	return &State{terms: make([]Term, 0, capacity), index: make(map[string]int, capacity)}
}

// accumulate adds c|b> to a state under construction.
func (s *State) accumulate(b Base, c scalar.Scalar) error {
	if len(s.terms) > 0 && !s.terms[0].Base.Compatible(b) {
		return ErrIncompatible
	}
	k := b.Key()
	if i, ok := s.index[k]; ok {
		s.terms[i].Coef = scalar.Add(s.terms[i].Coef, c)
		return nil
	}
	s.index[k] = len(s.terms)
	s.terms = append(s.terms, Term{Base: b, Coef: c})
	return nil
}

// prune drops zero coefficients and rebuilds the index.
func (s *State) prune() *State {
	kept := s.terms[:0]
	for _, t := range s.terms {
		if !t.Coef.IsZero() {
			kept = append(kept, t)
		}
	}
	s.terms = kept
	s.index = make(map[string]int, len(kept))
	for i, t := range kept {
		s.index[t.Base.Key()] = i
	}
	return s
}

// New builds Σ coefs[i]|bases[i]>. A nil coefs means every coefficient is
// one. Repeated bases accumulate.
//
// Errors: ErrLengthMismatch, ErrNilBase, ErrNilCoefficient, ErrIncompatible.
func New(bases []Base, coefs []scalar.Scalar) (*State, error) {
	if coefs != nil && len(coefs) != len(bases) {
		return nil, stateErrorf(opNew, ErrLengthMismatch)
	}
	out := newState(len(bases))
	for i, b := range bases {
		if b == nil {
			return nil, stateErrorf(opNew, ErrNilBase)
		}
		var c scalar.Scalar = scalar.One
		if coefs != nil {
			if c = coefs[i]; c == nil {
				return nil, stateErrorf(opNew, ErrNilCoefficient)
			}
		}
		if err := out.accumulate(b, c); err != nil {
			return nil, stateErrorf(opNew, err)
		}
	}
	return out.prune(), nil
}

// FromBase wraps b as 1|b>.
func FromBase(b Base) *State {
	out := newState(1)
	out.index[b.Key()] = 0
	out.terms = append(out.terms, Term{Base: b, Coef: scalar.One})
	return out
}

// Len returns the number of terms.
func (s *State) Len() int { return len(s.terms) }

// IsZero reports whether the state has no terms.
func (s *State) IsZero() bool { return len(s.terms) == 0 }

// Terms returns a copy of the entries in insertion order.
func (s *State) Terms() []Term {
	out := make([]Term, len(s.terms))
	copy(out, s.terms)
	return out
}

// Coefficient returns the coefficient of b, or zero when b is absent.
func (s *State) Coefficient(b Base) scalar.Scalar {
	if i, ok := s.index[b.Key()]; ok {
		return s.terms[i].Coef
	}
	return scalar.Zero
}

// Compatible reports whether s and other may be added. The zero state is
// compatible with everything.
func (s *State) Compatible(other *State) bool {
	if s.IsZero() || other.IsZero() {
		return true
	}
	return s.terms[0].Base.Compatible(other.terms[0].Base)
}

// Add returns s + other.
func (s *State) Add(other *State) (*State, error) {
	if !s.Compatible(other) {
		return nil, stateErrorf(opAdd, ErrIncompatible)
	}
	out := newState(s.Len() + other.Len())
	for _, t := range s.terms {
		_ = out.accumulate(t.Base, t.Coef)
	}
	for _, t := range other.terms {
		_ = out.accumulate(t.Base, t.Coef)
	}
	return out.prune(), nil
}

// Sub returns s - other.
func (s *State) Sub(other *State) (*State, error) {
	return s.Add(other.Scale(scalar.Int(-1)))
}

// Scale multiplies every coefficient by c.
func (s *State) Scale(c scalar.Scalar) *State {
	out := newState(s.Len())
	for _, t := range s.terms {
		_ = out.accumulate(t.Base, scalar.Mul(t.Coef, c))
	}
	return out.prune()
}

// InnerOption configures InnerProduct.
type InnerOption func(*innerConfig)

type innerConfig struct {
	rename bool
}

// WithSharedVariables makes InnerProduct treat equal variable names on
// both sides as the same variable instead of renaming the argument's.
func WithSharedVariables() InnerOption {
	return func(c *innerConfig) { c.rename = false }
}

// InnerProduct returns <s|other> = Σ conj(cᵢ) dⱼ <bᵢ|b'ⱼ>.
//
// By default every free variable of other is first renamed to a fresh name
// absent from both states. Pairs with a zero factor are skipped.
//
// Errors: ErrIncompatible, or base inner product errors such as
// scalar.ErrSameVariable under WithSharedVariables.
func (s *State) InnerProduct(other *State, opts ...InnerOption) (scalar.Scalar, error) {
	cfg := innerConfig{rename: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if s.IsZero() || other.IsZero() {
		return scalar.Zero, nil
	}
	if !s.Compatible(other) {
		return nil, stateErrorf(opInner, ErrIncompatible)
	}
	if cfg.rename {
		renamed, err := scalar.RenameAll(other, s.FreeVariables())
		if err != nil {
			return nil, stateErrorf(opInner, err)
		}
		other = renamed
	}

	var acc scalar.Scalar = scalar.Zero
	for _, l := range s.terms {
		cl := l.Coef.Conj()
		if cl.IsZero() {
			continue
		}
		for _, r := range other.terms {
			if r.Coef.IsZero() {
				continue
			}
			ip, err := l.Base.InnerProduct(r.Base)
			if err != nil {
				return nil, err
			}
			if ip.IsZero() {
				continue
			}
			acc = scalar.Add(acc, scalar.MulAll(cl, r.Coef, ip))
		}
	}
	return acc, nil
}

// TensorProduct returns s ⊗ other.
func (s *State) TensorProduct(other *State) (*State, error) {
	out := newState(s.Len() * other.Len())
	for _, l := range s.terms {
		for _, r := range other.terms {
			b, err := l.Base.TensorProduct(r.Base)
			if err != nil {
				return nil, err
			}
			if err := out.accumulate(b, scalar.Mul(l.Coef, r.Coef)); err != nil {
				return nil, stateErrorf(opTensor, err)
			}
		}
	}
	return out.prune(), nil
}

// Simplify simplifies every coefficient and prunes the zeros.
func (s *State) Simplify() *State {
	out := newState(s.Len())
	for _, t := range s.terms {
		_ = out.accumulate(t.Base, t.Coef.Simplify())
	}
	return out.prune()
}

// Substitute renames a variable in every base state and coefficient.
func (s *State) Substitute(from, to string) (*State, error) {
	out := newState(s.Len())
	for _, t := range s.terms {
		b, err := t.Base.Substitute(from, to)
		if err != nil {
			return nil, err
		}
		c, err := t.Coef.Substitute(from, to)
		if err != nil {
			return nil, err
		}
		if err := out.accumulate(b, c); err != nil {
			return nil, stateErrorf(opSubstitute, err)
		}
	}
	return out.prune(), nil
}

// FreeVariables unions the variables of bases and coefficients.
func (s *State) FreeVariables() *set.Set[string] {
	out := set.New[string](0)
	for _, t := range s.terms {
		out.InsertSet(t.Base.FreeVariables())
		out.InsertSet(t.Coef.FreeVariables())
	}
	return out
}

func (s *State) HasVariable(name string) bool {
	for _, t := range s.terms {
		if t.Base.HasVariable(name) || t.Coef.HasVariable(name) {
			return true
		}
	}
	return false
}

// Equal reports whether both states have the same terms.
func (s *State) Equal(other *State) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, t := range s.terms {
		if !t.Coef.Equal(other.Coefficient(t.Base)) {
			return false
		}
	}
	return true
}

func (s *State) String() string {
	if s.IsZero() {
		return "0"
	}
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = coefString(t.Coef) + t.Base.String()
	}
	return strings.Join(parts, " + ")
}

// coefString renders a coefficient prefix; sums are parenthesized.
func coefString(c scalar.Scalar) string {
	if c.IsOne() {
		return ""
	}
	if _, ok := c.(*scalar.Sum); ok {
		return "(" + c.String() + ")"
	}
	return c.String()
}

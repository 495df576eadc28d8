// SPDX-License-Identifier: MIT

package operator

import (
	"github.com/hashicorp/go-set/v3"
	"github.com/katalvlaran/qualg/scalar"
	"github.com/katalvlaran/qualg/state"
)

// Base is the rank-one operator |Left><Right|.
type Base struct {
	Left  state.Base
	Right state.Base
}

// NewBase returns |left><right|.
func NewBase(left, right state.Base) (Base, error) {
	if left == nil || right == nil {
		return Base{}, operatorErrorf(opNew, ErrNilBase)
	}
	return Base{Left: left, Right: right}, nil
}

// Key is the canonical identity of the pair.
func (b Base) Key() string { return b.Left.Key() + "><" + b.Right.Key() }

func (b Base) String() string { return b.Left.String() + b.Right.Bra() }

// Dagger returns |Right><Left|.
func (b Base) Dagger() Base { return Base{Left: b.Right, Right: b.Left} }

// Compatible reports whether b and o can be summed: both slots must hold
// compatible base states.
func (b Base) Compatible(o Base) bool {
	return b.Left.Compatible(o.Left) && b.Right.Compatible(o.Right)
}

// Apply returns |Left> Σ cᵢ <Right|bᵢ> for s = Σ cᵢ|bᵢ>.
func (b Base) Apply(s *state.State) (*state.State, error) {
	var coef scalar.Scalar = scalar.Zero
	for _, t := range s.Terms() {
		ip, err := b.Right.InnerProduct(t.Base)
		if err != nil {
			return nil, operatorErrorf(opApply, err)
		}
		if ip.IsZero() {
			continue
		}
		coef = scalar.Add(coef, scalar.Mul(ip, t.Coef))
	}
	return state.New([]state.Base{b.Left}, []scalar.Scalar{coef})
}

func (b Base) FreeVariables() *set.Set[string] {
	out := b.Left.FreeVariables()
	out.InsertSet(b.Right.FreeVariables())
	return out
}

func (b Base) HasVariable(name string) bool {
	return b.Left.HasVariable(name) || b.Right.HasVariable(name)
}

func (b Base) Substitute(from, to string) (Base, error) {
	l, err := b.Left.Substitute(from, to)
	if err != nil {
		return Base{}, err
	}
	r, err := b.Right.Substitute(from, to)
	if err != nil {
		return Base{}, err
	}
	return Base{Left: l, Right: r}, nil
}

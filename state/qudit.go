// SPDX-License-Identifier: MIT

package state

import (
	"strconv"

	"github.com/hashicorp/go-set/v3"
	"github.com/katalvlaran/qualg/scalar"
)

// Qudit bounds.
const (
	MinBase = 2
	MaxBase = 10
)

// Qudit is a digit string |d1 d2 …> in a fixed base.
type Qudit struct {
	digits string
	base   int
}

// NewQudit validates digits against base.
func NewQudit(digits string, base int) (*Qudit, error) {
	if base < MinBase || base > MaxBase {
		return nil, stateErrorf(opNewQudit, ErrBaseRange)
	}
	if digits == "" {
		return nil, stateErrorf(opNewQudit, ErrInvalidDigit)
	}
	for _, r := range digits {
		if r < '0' || int(r-'0') >= base {
			return nil, stateErrorf(opNewQudit, ErrInvalidDigit)
		}
	}
	return &Qudit{digits: digits, base: base}, nil
}

// NewQubit is NewQudit in base 2.
func NewQubit(digits string) (*Qudit, error) { return NewQudit(digits, 2) }

// MustQubit is NewQubit that panics on error.
func MustQubit(digits string) *Qudit {
	q, err := NewQubit(digits)
	if err != nil {
		panic(err)
	}
	return q
}

// Digits returns the digit string.
func (q *Qudit) Digits() string { return q.digits }

// Base returns the numeric base of the digits.
func (q *Qudit) Base() int { return q.base }

func (q *Qudit) Key() string { return "Q" + strconv.Itoa(q.base) + ":" + q.digits }

func (q *Qudit) String() string { return "|" + q.digits + ">" }

func (q *Qudit) Bra() string { return "<" + q.digits + "|" }

func (q *Qudit) GoString() string {
	return "Qudit(" + strconv.Quote(q.digits) + "," + strconv.Itoa(q.base) + ")"
}

func (q *Qudit) FreeVariables() *set.Set[string] { return set.New[string](0) }

func (q *Qudit) HasVariable(string) bool { return false }

// Compatible requires another qudit of equal length and base.
func (q *Qudit) Compatible(other Base) bool {
	o, ok := other.(*Qudit)
	return ok && o.base == q.base && len(o.digits) == len(q.digits)
}

// InnerProduct is 1 for identical digits and 0 otherwise.
func (q *Qudit) InnerProduct(other Base) (scalar.Scalar, error) {
	if !q.Compatible(other) {
		return nil, stateErrorf(opInner, ErrIncompatible)
	}
	if other.(*Qudit).digits == q.digits {
		return scalar.One, nil
	}
	return scalar.Zero, nil
}

// TensorProduct concatenates digits; both qudits must share a base.
func (q *Qudit) TensorProduct(other Base) (Base, error) {
	o, ok := other.(*Qudit)
	if !ok || o.base != q.base {
		return nil, stateErrorf(opTensor, ErrIncompatible)
	}
	return &Qudit{digits: q.digits + o.digits, base: q.base}, nil
}

func (q *Qudit) Substitute(string, string) (Base, error) { return q, nil }

// VectorIndex reads the digits as an integer in the qudit's base.
func (q *Qudit) VectorIndex() (int, error) {
	n, err := strconv.ParseInt(q.digits, q.base, 64)
	if err != nil {
		return 0, stateErrorf(opVectorIndex, err)
	}
	return int(n), nil
}

// Dim is base^len(digits).
func (q *Qudit) Dim() (int, error) {
	d := 1
	for range q.digits {
		d *= q.base
	}
	return d, nil
}

func (q *Qudit) ToState() *State { return FromBase(q) }

func (*Qudit) isBase() {}

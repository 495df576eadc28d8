// SPDX-License-Identifier: MIT

package povm

import (
	"fmt"

	"github.com/katalvlaran/qualg/operator"
	"github.com/katalvlaran/qualg/scalar"
)

// Key identifies the element for nC clicks in c and nD clicks in d.
type Key struct {
	Left, Right int
}

// String renders "nC,nD", the key line used in codec dumps.
func (k Key) String() string { return fmt.Sprintf("%d,%d", k.Left, k.Right) }

// Calculate returns M = U†·P(nC, nD)·U for inputs up to (maxA, maxB).
//
// After each product every coefficient is integrated over the variables
// its base operator does not carry. The right-hand U has its variables
// renamed away from those of U†·P first.
func Calculate(nC, nD, maxA, maxB int) (*operator.Operator, error) {
	u, err := BeamSplitter(maxA, maxB)
	if err != nil {
		return nil, povmErrorf(opCalculate, err)
	}
	p, err := Projector(nC, nD)
	if err != nil {
		return nil, povmErrorf(opCalculate, err)
	}

	m, err := u.Dagger().Mul(p)
	if err != nil {
		return nil, povmErrorf(opCalculate, err)
	}
	if m, err = m.Simplify().Integrate(); err != nil {
		return nil, povmErrorf(opCalculate, err)
	}

	right, err := scalar.RenameAll(u, m.FreeVariables())
	if err != nil {
		return nil, povmErrorf(opCalculate, err)
	}
	if m, err = m.Mul(right); err != nil {
		return nil, povmErrorf(opCalculate, err)
	}
	if m, err = m.Integrate(); err != nil {
		return nil, povmErrorf(opCalculate, err)
	}
	return m.Simplify(), nil
}

// Visibility returns a converter that integrates a coefficient fully and
// maps the overlap <phi|psi> to v. Norms <f|f> are already 1 after
// integration; any other residue fails with ErrUnconvertible.
func Visibility(v float64) operator.ConvertFunc {
	var convert func(scalar.Scalar) (complex128, error)
	convert = func(s scalar.Scalar) (complex128, error) {
		switch x := s.(type) {
		case scalar.Number:
			return x.Value(), nil
		case *scalar.InnerProduct:
			a, b := x.Names()
			if a == b {
				return 1, nil
			}
			if (a == WavePacketA && b == WavePacketB) || (a == WavePacketB && b == WavePacketA) {
				return complex(v, 0), nil
			}
		case *scalar.Product:
			acc := x.Coefficient().Value()
			for _, f := range x.Factors() {
				c, err := convert(f)
				if err != nil {
					return 0, err
				}
				acc *= c
			}
			return acc, nil
		case *scalar.Sum:
			acc := x.Constant().Value()
			for _, t := range x.Terms() {
				c, err := convert(t)
				if err != nil {
					return 0, err
				}
				acc += c
			}
			return acc, nil
		}
		return 0, povmErrorf(opVisibility, fmt.Errorf("%w: %s", ErrUnconvertible, s))
	}
	return func(s scalar.Scalar) (complex128, error) {
		full, err := scalar.Integrate(s)
		if err != nil {
			return 0, povmErrorf(opVisibility, err)
		}
		return convert(full)
	}
}

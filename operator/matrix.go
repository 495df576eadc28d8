// SPDX-License-Identifier: MIT

package operator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qualg/scalar"
)

// ConvertFunc reduces a symbolic coefficient to a number. It must fail
// rather than guess when it meets a shape it does not know.
type ConvertFunc func(scalar.Scalar) (complex128, error)

// ToMatrix returns the dense matrix of o. Row and column indices come from
// the VectorIndex of the left and right base states, so only finite
// dimensional bases (qudits) can be exported.
//
// Numeric coefficients are copied as is. Any other coefficient is passed to
// convert; a nil convert makes that an ErrSymbolicCoefficient.
//
// Errors: ErrEmpty, ErrSymbolicCoefficient, state.ErrInfiniteDimension, or
// whatever convert returns.
func (o *Operator) ToMatrix(convert ConvertFunc) (*mat.CDense, error) {
	if o.IsZero() {
		return nil, operatorErrorf(opToMatrix, ErrEmpty)
	}
	first := o.terms[0].Op
	rows, err := first.Left.Dim()
	if err != nil {
		return nil, operatorErrorf(opToMatrix, err)
	}
	cols, err := first.Right.Dim()
	if err != nil {
		return nil, operatorErrorf(opToMatrix, err)
	}

	m := mat.NewCDense(rows, cols, nil)
	for _, t := range o.terms {
		i, err := t.Op.Left.VectorIndex()
		if err != nil {
			return nil, operatorErrorf(opToMatrix, err)
		}
		j, err := t.Op.Right.VectorIndex()
		if err != nil {
			return nil, operatorErrorf(opToMatrix, err)
		}
		v, err := toComplex(t.Coef, convert)
		if err != nil {
			return nil, operatorErrorf(opToMatrix, err)
		}
		m.Set(i, j, m.At(i, j)+v)
	}
	return m, nil
}

func toComplex(c scalar.Scalar, convert ConvertFunc) (complex128, error) {
	if n, ok := scalar.AsNumber(c); ok {
		return n.Value(), nil
	}
	if convert == nil {
		return 0, ErrSymbolicCoefficient
	}
	return convert(c)
}

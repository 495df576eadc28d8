// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
	"strconv"

	"github.com/hashicorp/go-set/v3"
)

// ZeroTolerance is the absolute tolerance under which a Number counts as
// zero (and within which it counts as one).
const ZeroTolerance = 1e-16

// Number is a complex scalar with ordinary field arithmetic.
type Number struct {
	v complex128
}

// Common constants.
var (
	Zero = Number{}
	One  = Number{v: 1}
)

// Complex wraps c. Negative zero parts are normalized to +0 so that equal
// values share one key.
func Complex(c complex128) Number {
	return Number{v: c + 0}
}

// Real wraps a real value.
func Real(f float64) Number { return Complex(complex(f, 0)) }

// Int wraps an integer value.
func Int(n int) Number { return Complex(complex(float64(n), 0)) }

// Value returns the wrapped complex value.
func (n Number) Value() complex128 { return n.v }

// IsReal reports whether the imaginary part is within ZeroTolerance of 0.
func (n Number) IsReal() bool { return math.Abs(imag(n.v)) <= ZeroTolerance }

func (n Number) Conj() Scalar { return Complex(cmplx.Conj(n.v)) }

func (n Number) Equal(other Scalar) bool { return equalKeys(n, other) }

func (n Number) Key() string {
	return "N(" + formatFloat(real(n.v)) + "," + formatFloat(imag(n.v)) + ")"
}

func (n Number) HasVariable(string) bool { return false }

func (n Number) FreeVariables() *set.Set[string] { return set.New[string](0) }

func (n Number) Substitute(string, string) (Scalar, error) { return n, nil }

func (n Number) IsZero() bool { return cmplx.Abs(n.v) <= ZeroTolerance }

func (n Number) IsOne() bool { return cmplx.Abs(n.v-1) <= ZeroTolerance }

func (n Number) Simplify() Scalar { return n }

func (n Number) Expand() Scalar { return n }

func (n Number) String() string {
	if imag(n.v) == 0 {
		return formatFloat(real(n.v))
	}
	return strconv.FormatComplex(n.v, 'g', -1, 128)
}

// GoString uses the shortest round-tripping float representation.
func (n Number) GoString() string { return n.Key() }

func (Number) isScalar() {}

// add and mul are the raw field operations.
func (n Number) add(o Number) Number { return Complex(n.v + o.v) }
func (n Number) mul(o Number) Number { return Complex(n.v * o.v) }

// isExactOne reports n == 1 without tolerance; coefficients use it to
// decide whether they are worth printing.
func (n Number) isExactOne() bool { return n.v == 1 }

// AsNumber reports whether s is a Number and returns it.
func AsNumber(s Scalar) (Number, bool) {
	n, ok := s.(Number)
	return n, ok
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

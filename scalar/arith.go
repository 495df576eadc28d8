// SPDX-License-Identifier: MIT

package scalar

// Add returns a + b.
//
// Behavior highlights:
//   - A zero operand returns the other one unchanged.
//   - A Sum operand absorbs the other operand (sums stay flat).
//   - Multiple detection: 3*f + 2*f = 5*f and f*g + g*f = 2*f*g.
//   - Otherwise a two-term Sum is built.
func Add(a, b Scalar) Scalar {
	if b.IsZero() {
		return a
	}
	if a.IsZero() {
		return b
	}
	an, aNum := a.(Number)
	bn, bNum := b.(Number)
	if aNum && bNum {
		return an.add(bn)
	}
	_, aSum := a.(*Sum)
	_, bSum := b.(*Sum)
	if aSum || bSum {
		return newSum(Zero, []Scalar{a, b})
	}
	ma, ra := splitMultiple(a)
	mb, rb := splitMultiple(b)
	if ra.Equal(rb) {
		return Mul(ra, ma.add(mb))
	}
	return newSum(Zero, []Scalar{a, b})
}

// Mul returns a * b. Products stay flat and numeric factors fold into the
// coefficient.
func Mul(a, b Scalar) Scalar {
	return newProduct(One, []Scalar{a, b})
}

// AddAll folds Add over xs; the empty sum is Zero.
func AddAll(xs ...Scalar) Scalar {
	var acc Scalar = Zero
	for _, x := range xs {
		acc = Add(acc, x)
	}
	return acc
}

// MulAll folds Mul over xs; the empty product is One.
func MulAll(xs ...Scalar) Scalar {
	return newProduct(One, xs)
}

// Neg returns -a.
func Neg(a Scalar) Scalar { return Mul(Int(-1), a) }

// Sub returns a - b.
func Sub(a, b Scalar) Scalar { return Add(a, Neg(b)) }

// splitMultiple decomposes s into (multiplier, remainder) with
// s = multiplier*remainder; a bare scalar is (1, s).
func splitMultiple(s Scalar) (Number, Scalar) {
	p, ok := s.(*Product)
	if !ok {
		return One, s
	}
	return p.coef, newProduct(One, p.factors)
}

package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qualg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fx  = scalar.NewFunc("f", "x")
	gy  = scalar.NewFunc("g", "y")
	hz  = scalar.NewFunc("h", "z")
	dxy = scalar.MustDelta("x", "y")
)

// TestNumber_ZeroTolerance checks the 1e-16 zero window and -0 normalization.
func TestNumber_ZeroTolerance(t *testing.T) {
	assert.True(t, scalar.Real(1e-17).IsZero())
	assert.False(t, scalar.Real(1e-15).IsZero())
	assert.True(t, scalar.Real(math.Copysign(0, -1)).Equal(scalar.Zero))
	assert.True(t, scalar.Int(1).IsOne())
	assert.Equal(t, "(1+2i)", scalar.Complex(1+2i).String())
}

// TestAdd_ZeroShortcut returns the other operand untouched.
func TestAdd_ZeroShortcut(t *testing.T) {
	assert.Same(t, fx, scalar.Add(fx, scalar.Zero))
	assert.Same(t, fx, scalar.Add(scalar.Zero, fx))
	assert.True(t, scalar.Add(scalar.Int(2), scalar.Int(3)).Equal(scalar.Int(5)))
}

// TestAdd_MultipleDetection folds equal remainders into one coefficient.
func TestAdd_MultipleDetection(t *testing.T) {
	sum := scalar.Add(scalar.Mul(scalar.Int(3), fx), scalar.Mul(scalar.Int(2), fx))
	assert.True(t, sum.Equal(scalar.Mul(fx, scalar.Int(5))), sum.String())

	twice := scalar.Add(scalar.Mul(fx, gy), scalar.Mul(gy, fx))
	assert.True(t, twice.Equal(scalar.MulAll(scalar.Int(2), fx, gy)), twice.String())

	assert.True(t, scalar.Sub(fx, fx).Equal(scalar.Zero))
}

// TestAdd_FlattensSums keeps sums one level deep.
func TestAdd_FlattensSums(t *testing.T) {
	s := scalar.Add(scalar.Add(fx, gy), scalar.Add(hz, scalar.Int(4)))
	sum, ok := s.(*scalar.Sum)
	require.True(t, ok)
	assert.Len(t, sum.Terms(), 3)
	assert.True(t, sum.Constant().Equal(scalar.Int(4)))
}

// TestMul_FoldsCoefficients keeps products flat with one coefficient.
func TestMul_FoldsCoefficients(t *testing.T) {
	p := scalar.Mul(scalar.Mul(scalar.Int(2), fx), scalar.Mul(scalar.Int(3), gy))
	prod, ok := p.(*scalar.Product)
	require.True(t, ok)
	assert.True(t, prod.Coefficient().Equal(scalar.Int(6)))
	assert.Len(t, prod.Factors(), 2)

	assert.True(t, scalar.Mul(fx, scalar.Zero).Equal(scalar.Zero))
	assert.Same(t, fx, scalar.Mul(fx, scalar.One))
}

// TestEqual_OrderInsensitive compares deltas, overlaps and containers as sets.
func TestEqual_OrderInsensitive(t *testing.T) {
	assert.True(t, scalar.MustDelta("y", "x").Equal(dxy))
	assert.True(t, scalar.NewInnerProduct("psi", "phi").Equal(scalar.NewInnerProduct("phi", "psi")))
	assert.True(t, scalar.MulAll(fx, gy, hz).Equal(scalar.MulAll(hz, fx, gy)))
	assert.True(t, scalar.AddAll(fx, gy, hz).Equal(scalar.AddAll(gy, hz, fx)))
	assert.False(t, fx.Equal(fx.Conj()))
}

// TestNewDelta_SameVariable rejects δ(x-x).
func TestNewDelta_SameVariable(t *testing.T) {
	_, err := scalar.NewDelta("x", "x")
	require.ErrorIs(t, err, scalar.ErrSameVariable)
	_, err = scalar.NewDelta("", "x")
	require.ErrorIs(t, err, scalar.ErrEmptyVariable)
	assert.Panics(t, func() { scalar.MustDelta("w", "w") })
}

// TestAlgebra_CommutativeAssociative checks + and * up to simplification.
func TestAlgebra_CommutativeAssociative(t *testing.T) {
	values := []scalar.Scalar{
		fx,
		gy.Conj(),
		dxy,
		scalar.Int(2),
		scalar.Complex(1 - 1i),
		scalar.NewInnerProduct("phi", "psi"),
		scalar.Add(fx, hz),
		scalar.MulAll(scalar.Int(3), gy, dxy),
	}
	for _, a := range values {
		for _, b := range values {
			assert.True(t, scalar.Add(a, b).Simplify().Equal(scalar.Add(b, a).Simplify()), "%v + %v", a, b)
			assert.True(t, scalar.Mul(a, b).Simplify().Equal(scalar.Mul(b, a).Simplify()), "%v * %v", a, b)
			for _, c := range values {
				l := scalar.Add(scalar.Add(a, b), c).Simplify()
				r := scalar.Add(a, scalar.Add(b, c)).Simplify()
				assert.True(t, l.Equal(r), "(%v + %v) + %v", a, b, c)
				l = scalar.Mul(scalar.Mul(a, b), c).Simplify()
				r = scalar.Mul(a, scalar.Mul(b, c)).Simplify()
				assert.True(t, l.Equal(r), "(%v * %v) * %v", a, b, c)
			}
		}
	}
}

// TestConj_Involution checks conj(conj(x)) == x for every variant.
func TestConj_Involution(t *testing.T) {
	unresolved, err := scalar.Integrate(scalar.NewFunc("k", "u"), "u")
	require.NoError(t, err)
	values := []scalar.Scalar{
		scalar.Complex(2 + 3i),
		fx,
		fx.Conj(),
		dxy,
		scalar.NewInnerProduct("a", "b"),
		scalar.MulAll(scalar.Complex(1i), fx, gy),
		scalar.AddAll(scalar.Complex(1i), fx, gy.Conj()),
		unresolved,
	}
	for _, v := range values {
		assert.True(t, v.Conj().Conj().Simplify().Equal(v.Simplify()), v.String())
	}
	assert.True(t, scalar.Complex(2+3i).Conj().Equal(scalar.Complex(2-3i)))
}

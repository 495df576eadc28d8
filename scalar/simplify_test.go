package scalar_test

import (
	"testing"

	"github.com/katalvlaran/qualg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimplify_DistributesProducts expands a product over a sum.
func TestSimplify_DistributesProducts(t *testing.T) {
	got := scalar.Mul(scalar.Add(fx, gy), hz).Simplify()
	want := scalar.Add(scalar.Mul(fx, hz), scalar.Mul(gy, hz))
	sum, ok := got.(*scalar.Sum)
	require.True(t, ok, got.String())
	assert.Len(t, sum.Terms(), 2)
	assert.True(t, got.Equal(want.Simplify()))
}

// TestSimplify_CombinesTerms merges like terms and drops cancelled ones.
func TestSimplify_CombinesTerms(t *testing.T) {
	assert.True(t, scalar.AddAll(fx, fx, fx).Simplify().Equal(scalar.Mul(scalar.Int(3), fx)))
	assert.True(t, scalar.AddAll(fx, gy, scalar.Neg(fx)).Simplify().Equal(gy))
}

// TestSimplify_ZeroAfterExpansion finds zero only once the sum is expanded.
func TestSimplify_ZeroAfterExpansion(t *testing.T) {
	lhs := scalar.Mul(scalar.Add(fx, gy), hz)
	rhs := scalar.Add(scalar.Mul(fx, hz), scalar.Mul(gy, hz))
	diff := scalar.Sub(lhs, rhs)
	assert.False(t, diff.IsZero())
	assert.True(t, diff.Simplify().IsZero())
	assert.True(t, scalar.Mul(gy, diff).Simplify().Equal(scalar.Zero))
}

// TestSimplify_Idempotent checks that a second pass changes nothing.
func TestSimplify_Idempotent(t *testing.T) {
	s := scalar.MulAll(scalar.Add(fx, scalar.Int(1)), scalar.Add(gy, dxy), scalar.Real(0.5))
	once := s.Simplify()
	assert.True(t, once.Simplify().Equal(once))
	assert.Equal(t, once.String(), once.Simplify().String())
}

// TestExpand_Cartesian produces one term per pair of addends.
func TestExpand_Cartesian(t *testing.T) {
	e := scalar.Mul(scalar.Add(fx, gy), scalar.Add(hz, dxy)).Expand()
	sum, ok := e.(*scalar.Sum)
	require.True(t, ok)
	assert.Len(t, sum.Terms(), 4)
}

// TestSimplify_NormalFormString prints factors in canonical order.
func TestSimplify_NormalFormString(t *testing.T) {
	s := scalar.MulAll(gy.Conj(), scalar.Int(2), fx).Simplify()
	assert.Equal(t, "2*f(x)*g*(y)", s.String())
}

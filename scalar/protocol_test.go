package scalar_test

import (
	"testing"

	"github.com/hashicorp/go-set/v3"
	"github.com/katalvlaran/qualg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubstitute_Basic renames a free variable everywhere it occurs.
func TestSubstitute_Basic(t *testing.T) {
	s := scalar.MulAll(fx, scalar.NewConjFunc("k", "x"), scalar.MustDelta("x", "z"))
	got, err := scalar.Substitute(s, "x", "w")
	require.NoError(t, err)
	assert.False(t, got.HasVariable("x"))
	assert.ElementsMatch(t, []string{"w", "z"}, scalar.SortedVariables(got))
}

// TestSubstitute_Absent is a no-op for a variable that does not occur.
func TestSubstitute_Absent(t *testing.T) {
	got, err := scalar.Substitute[scalar.Scalar](gy, "x", "w")
	require.NoError(t, err)
	assert.Same(t, gy, got)
}

// TestSubstitute_Fresh derives a new name when none is given.
func TestSubstitute_Fresh(t *testing.T) {
	s := scalar.Mul(fx, scalar.NewFunc("g", "x'"))
	got, err := scalar.Substitute(s, "x", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"x'", "x''"}, scalar.SortedVariables(got))
}

// TestSubstitute_DeltaCollapse refuses to build δ(y-y).
func TestSubstitute_DeltaCollapse(t *testing.T) {
	_, err := scalar.Substitute[scalar.Scalar](dxy, "x", "y")
	require.ErrorIs(t, err, scalar.ErrSameVariable)

	_, err = scalar.Substitute(scalar.Add(fx, dxy), "y", "x")
	require.ErrorIs(t, err, scalar.ErrSameVariable)

	_, err = scalar.Substitute[scalar.Scalar](fx, "", "y")
	require.ErrorIs(t, err, scalar.ErrEmptyVariable)
}

// TestSubstitute_IntegralCapture renames the bound variable before a clash.
func TestSubstitute_IntegralCapture(t *testing.T) {
	in, err := scalar.Integrate(scalar.Mul(dxy, dxy), "x")
	require.NoError(t, err)

	got, err := scalar.Substitute(in, "y", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, scalar.SortedVariables(got))
	integral, ok := got.(*scalar.Integral)
	require.True(t, ok)
	assert.Equal(t, "x'", integral.Variable())

	// The bound variable itself is not free and cannot be renamed.
	same, err := scalar.Substitute(in, "x", "q")
	require.NoError(t, err)
	assert.True(t, same.Equal(in))
}

// TestRenameAll avoids both the value's own names and the caller's.
func TestRenameAll(t *testing.T) {
	s := scalar.MulAll(fx, scalar.NewFunc("g", "x'"), scalar.MustDelta("x", "y"))
	got, err := scalar.RenameAll(s, set.From([]string{"y'"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"x''", "x'''", "y''"}, scalar.SortedVariables(got))
}

// TestFreshName appends markers until unused.
func TestFreshName(t *testing.T) {
	assert.Equal(t, "w'", scalar.FreshName("w", nil))
	assert.Equal(t, "w''", scalar.FreshName("w", set.From([]string{"w", "w'"})))
}

// TestFreeVariables_Containers unions free variables across structure.
func TestFreeVariables_Containers(t *testing.T) {
	s := scalar.Add(scalar.Mul(fx, gy), scalar.Mul(hz, scalar.NewInnerProduct("a", "b")))
	assert.Equal(t, []string{"x", "y", "z"}, scalar.SortedVariables(s))
	assert.True(t, s.HasVariable("z"))
	assert.False(t, s.HasVariable("a"))
	assert.Equal(t, 0, scalar.Int(3).FreeVariables().Size())
}

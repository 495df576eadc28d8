package state_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qualg/scalar"
	"github.com/katalvlaran/qualg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qubits(t *testing.T, digits ...string) []state.Base {
	t.Helper()
	out := make([]state.Base, len(digits))
	for i, d := range digits {
		q, err := state.NewQubit(d)
		require.NoError(t, err)
		out[i] = q
	}
	return out
}

func realPart(t *testing.T, s scalar.Scalar) float64 {
	t.Helper()
	n, ok := scalar.AsNumber(s.Simplify())
	require.True(t, ok, s.String())
	return real(n.Value())
}

// TestNew_Errors covers the constructor contract.
func TestNew_Errors(t *testing.T) {
	_, err := state.New(qubits(t, "0", "1"), []scalar.Scalar{scalar.One})
	assert.ErrorIs(t, err, state.ErrLengthMismatch)

	_, err = state.New([]state.Base{state.MustQubit("0"), state.Vacuum()}, nil)
	assert.ErrorIs(t, err, state.ErrIncompatible)

	_, err = state.New(qubits(t, "0", "10"), nil)
	assert.ErrorIs(t, err, state.ErrIncompatible)

	_, err = state.New([]state.Base{nil}, nil)
	assert.ErrorIs(t, err, state.ErrNilBase)

	_, err = state.New(qubits(t, "0"), []scalar.Scalar{nil})
	assert.ErrorIs(t, err, state.ErrNilCoefficient)
}

// TestNew_AccumulatesAndPrunes merges repeated bases and drops zeros.
func TestNew_AccumulatesAndPrunes(t *testing.T) {
	s, err := state.New(qubits(t, "0", "1", "0"), []scalar.Scalar{scalar.Int(1), scalar.Zero, scalar.Int(2)})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Coefficient(state.MustQubit("0")).Equal(scalar.Int(3)))
	assert.True(t, s.Coefficient(state.MustQubit("1")).Equal(scalar.Zero))
	assert.Equal(t, "3|0>", s.String())
}

// TestAdd_PrunesCancelledTerms removes coefficients that cancel.
func TestAdd_PrunesCancelledTerms(t *testing.T) {
	plus, err := state.New(qubits(t, "0", "1"), nil)
	require.NoError(t, err)
	minus, err := state.New(qubits(t, "0", "1"), []scalar.Scalar{scalar.One, scalar.Int(-1)})
	require.NoError(t, err)

	sum, err := plus.Add(minus)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Len())
	assert.True(t, sum.Coefficient(state.MustQubit("0")).Equal(scalar.Int(2)))

	diff, err := plus.Sub(plus)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	_, err = plus.Add(state.Vacuum().ToState())
	assert.ErrorIs(t, err, state.ErrIncompatible)
}

// TestInnerProduct_Qubits conjugates the bra coefficients.
func TestInnerProduct_Qubits(t *testing.T) {
	h := 1 / math.Sqrt2
	plus, err := state.New(qubits(t, "0", "1"), []scalar.Scalar{scalar.Real(h), scalar.Real(h)})
	require.NoError(t, err)
	ip, err := plus.InnerProduct(plus)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, realPart(t, ip), 1e-12)

	s, err := state.New(qubits(t, "0", "1"), []scalar.Scalar{scalar.One, scalar.Complex(1i)})
	require.NoError(t, err)
	ip, err = s.InnerProduct(s)
	require.NoError(t, err)
	assert.True(t, ip.Equal(scalar.Int(2)), ip.String())

	ip, err = state.MustQubit("0").ToState().InnerProduct(s)
	require.NoError(t, err)
	assert.True(t, ip.Equal(scalar.One))
}

// TestInnerProduct_SinglePhoton integrates a normalized wave packet to 1.
func TestInnerProduct_SinglePhoton(t *testing.T) {
	s, err := state.New(
		[]state.Base{state.MustFock(state.Op{Mode: "c", Variable: "w"})},
		[]scalar.Scalar{scalar.NewFunc("phi", "w")},
	)
	require.NoError(t, err)
	ip, err := s.InnerProduct(s)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"w", "w'"}, scalar.SortedVariables(ip))

	norm, err := scalar.Integrate(ip)
	require.NoError(t, err)
	assert.True(t, norm.Equal(scalar.One), norm.String())
}

// TestTensorProduct_Bilinear distributes over both factors.
func TestTensorProduct_Bilinear(t *testing.T) {
	plus, err := state.New(qubits(t, "0", "1"), []scalar.Scalar{scalar.Int(2), scalar.Int(3)})
	require.NoError(t, err)
	out, err := state.MustQubit("1").ToState().TensorProduct(plus)
	require.NoError(t, err)
	assert.Equal(t, "2|10> + 3|11>", out.String())
}

// TestSubstitute_RenamesBasesAndCoefficients keeps variables consistent.
func TestSubstitute_RenamesBasesAndCoefficients(t *testing.T) {
	s, err := state.New(
		[]state.Base{state.MustFock(state.Op{Mode: "c", Variable: "w"})},
		[]scalar.Scalar{scalar.NewFunc("phi", "w")},
	)
	require.NoError(t, err)
	r, err := scalar.Substitute(s, "w", "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, scalar.SortedVariables(r))
	assert.Equal(t, "phi(b1)|c(b1)>", r.String())
}

// TestSimplify_DropsZeroCoefficients prunes after simplification.
func TestSimplify_DropsZeroCoefficients(t *testing.T) {
	f := scalar.NewFunc("f", "x")
	g := scalar.NewFunc("g", "y")
	zero := scalar.Sub(scalar.Mul(scalar.Add(f, g), f), scalar.Add(scalar.Mul(f, f), scalar.Mul(g, f)))
	s, err := state.New(qubits(t, "0", "1"), []scalar.Scalar{zero, f})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	simplified := s.Simplify()
	assert.Equal(t, 1, simplified.Len())
	assert.True(t, simplified.Equal(state.FromBase(state.MustQubit("1")).Scale(f)))
}

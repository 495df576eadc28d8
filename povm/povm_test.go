package povm_test

import (
	"bytes"
	"context"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qualg/matrix"
	"github.com/katalvlaran/qualg/operator"
	"github.com/katalvlaran/qualg/povm"
	"github.com/katalvlaran/qualg/scalar"
	"github.com/katalvlaran/qualg/state"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

func element(t *testing.T, nC, nD int, v float64) *mat.CDense {
	t.Helper()
	m, err := povm.Calculate(nC, nD, 1, 1)
	require.NoError(t, err)
	dense, err := m.ToMatrix(povm.Visibility(v))
	require.NoError(t, err)
	return dense
}

// index of a two-digit qubit label.
func index(digits string) int {
	i, err := state.MustQubit(digits).VectorIndex()
	if err != nil {
		panic(err)
	}
	return i
}

// TestFockState_Normalized checks the term count and unit norm.
func TestFockState_Normalized(t *testing.T) {
	for _, tc := range []struct{ a, b, terms int }{{0, 0, 1}, {1, 0, 2}, {0, 1, 2}, {1, 1, 4}, {2, 1, 8}} {
		s, err := povm.FockState(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.terms, s.Len())

		ip, err := s.InnerProduct(s)
		require.NoError(t, err)
		norm, err := povm.Visibility(0.7)(ip)
		require.NoError(t, err)
		assert.InDelta(t, 1, real(norm), tol, "|%d,%d>", tc.a, tc.b)
	}

	_, err := povm.FockState(-1, 0)
	assert.ErrorIs(t, err, povm.ErrPhotonRange)
}

// TestProjector_Shape builds a single normalized rank-one term.
func TestProjector_Shape(t *testing.T) {
	p, err := povm.Projector(2, 1)
	require.NoError(t, err)
	require.Equal(t, 1, p.Len())

	term := p.Terms()[0]
	assert.Equal(t, "|c(p1)c(p2)d(p3)><c(p1)c(p2)d(p3)|", term.Op.String())
	n, ok := scalar.AsNumber(term.Coef)
	require.True(t, ok)
	assert.InDelta(t, 0.5, real(n.Value()), tol)

	vac, err := povm.Projector(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "|vac><vac|", vac.String())

	_, err = povm.Projector(0, -1)
	assert.ErrorIs(t, err, povm.ErrPhotonRange)
}

// TestBeamSplitter_Terms sums every Fock state against its qudit label.
func TestBeamSplitter_Terms(t *testing.T) {
	u, err := povm.BeamSplitter(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1+2+2+4, u.Len())

	_, err = povm.BeamSplitter(povm.MaxPhotons+1, 0)
	assert.ErrorIs(t, err, povm.ErrPhotonRange)
}

// TestCalculate_NoClicks is the vacuum projector on the qudits.
func TestCalculate_NoClicks(t *testing.T) {
	m, err := povm.Calculate(0, 0, 1, 1)
	require.NoError(t, err)

	want := operator.FromBase(operator.Base{
		Left:  state.MustQubit("00"),
		Right: state.MustQubit("00"),
	})
	assert.True(t, m.Equal(want), m.String())
}

// TestCalculate_SingleClick mixes the single-photon inputs by the overlap.
func TestCalculate_SingleClick(t *testing.T) {
	const v = 0.8
	c := element(t, 1, 0, v)
	d := element(t, 0, 1, v)

	assert.InDelta(t, 0.5, real(c.At(index("10"), index("10"))), tol)
	assert.InDelta(t, 0.5, real(c.At(index("01"), index("01"))), tol)
	assert.InDelta(t, 0.5*v, real(c.At(index("10"), index("01"))), tol)
	assert.InDelta(t, -0.5*v, real(d.At(index("10"), index("01"))), tol)
	assert.InDelta(t, 0, cmplx.Abs(c.At(index("00"), index("00"))), tol)
}

// TestCalculate_HongOuMandel suppresses coincidences for identical photons.
func TestCalculate_HongOuMandel(t *testing.T) {
	i := index("11")
	for _, tc := range []struct{ v, coincidence, bunched float64 }{
		{1, 0, 0.5},
		{0, 0.5, 0.25},
		{0.6, 0.32, 0.34},
	} {
		assert.InDelta(t, tc.coincidence, real(element(t, 1, 1, tc.v).At(i, i)), tol, "v=%v", tc.v)
		assert.InDelta(t, tc.bunched, real(element(t, 2, 0, tc.v).At(i, i)), tol, "v=%v", tc.v)
	}
}

// TestGenerate_Complete sums the elements to the identity.
func TestGenerate_Complete(t *testing.T) {
	elems, err := povm.Generate(context.Background(), 1, 1, povm.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, elems, 6)
	assert.Equal(t, povm.Key{Left: 0, Right: 0}, elems[0].Key)
	assert.Equal(t, "2,0", elems[5].Key.String())

	sum := mat.NewCDense(4, 4, nil)
	for _, e := range elems {
		m, err := e.Op.ToMatrix(povm.Visibility(0.6))
		require.NoError(t, err)

		herm, err := matrix.IsHermitian(m, tol)
		require.NoError(t, err)
		assert.True(t, herm, e.Key.String())
		pos, err := matrix.IsPositiveDiagonal(m, tol)
		require.NoError(t, err)
		assert.True(t, pos, e.Key.String())

		sum, err = matrix.Add(sum, m)
		require.NoError(t, err)
	}
	ok, err := matrix.IsIdentity(sum, tol)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestGenerate_Subsets partitions the click patterns.
func TestGenerate_Subsets(t *testing.T) {
	all := povm.Keys(1, 1, povm.All)
	leq := povm.Keys(1, 1, povm.Leq)
	greater := povm.Keys(1, 1, povm.Greater)

	assert.Len(t, all, 6)
	assert.Len(t, leq, 4)
	assert.Len(t, greater, 2)
	assert.ElementsMatch(t, all, append(leq, greater...))

	elems, err := povm.Generate(context.Background(), 1, 0, povm.WithSubset(povm.Greater))
	require.NoError(t, err)
	require.Len(t, elems, 1)
	assert.Equal(t, povm.Key{Left: 1, Right: 0}, elems[0].Key)
}

// TestGenerate_LogsAndCancels covers the logger option and cancellation.
func TestGenerate_LogsAndCancels(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := povm.Generate(context.Background(), 0, 1, povm.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "povm element ready")
	assert.Contains(t, buf.String(), "povm generation complete")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = povm.Generate(ctx, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = povm.Generate(context.Background(), -1, 1)
	assert.ErrorIs(t, err, povm.ErrPhotonRange)

	assert.Panics(t, func() { povm.WithWorkers(0) })
	assert.Panics(t, func() { povm.WithSubset(povm.Subset(7)) })
}

// TestVisibility_Errors rejects residues other than the two-packet overlap.
func TestVisibility_Errors(t *testing.T) {
	convert := povm.Visibility(0.5)

	v, err := convert(scalar.NewInnerProduct(povm.WavePacketB, povm.WavePacketA))
	require.NoError(t, err)
	assert.Equal(t, complex(0.5, 0), v)

	_, err = convert(scalar.NewFunc("f", "x"))
	assert.ErrorIs(t, err, povm.ErrUnconvertible)

	_, err = convert(scalar.NewInnerProduct("phi", "chi"))
	assert.ErrorIs(t, err, povm.ErrUnconvertible)
}

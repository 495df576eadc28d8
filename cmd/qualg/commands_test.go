package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualg/codec"
	"github.com/katalvlaran/qualg/operator"
	"github.com/katalvlaran/qualg/state"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

// TestPovmCmd_RoundTrip generates a dump and checks its matrices.
func TestPovmCmd_RoundTrip(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "povm.txt")
	_, err := run(t, "povm", "--max-a", "1", "--max-b", "1", "--workers", "2", "-o", dump)
	require.NoError(t, err)

	out, err := run(t, "matrix", dump, "--visibility", "0.3", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "0,0 hermitian=true positive=true projector=true trace=1")
	assert.Contains(t, out, "1,1 hermitian=true")
	assert.Contains(t, out, "complete=true deviation=")
	assert.Equal(t, 6, strings.Count(out, "hermitian=true"))
}

// TestMatrixCmd_MixedDimensions prints every entry and skips completeness.
func TestMatrixCmd_MixedDimensions(t *testing.T) {
	projector := func(digits string) *operator.Operator {
		q := state.MustQubit(digits)
		return operator.FromBase(operator.Base{Left: q, Right: q})
	}
	dump := filepath.Join(t.TempDir(), "mixed.txt")
	f, err := os.Create(dump)
	require.NoError(t, err)
	require.NoError(t, codec.Write(f, []codec.Entry{
		{Key: "a", Op: projector("0")},
		{Key: "b", Op: projector("01")},
		{Key: "c", Op: projector("1")},
	}))
	require.NoError(t, f.Close())

	out, err := run(t, "matrix", dump)
	require.NoError(t, err)
	for _, key := range []string{"a", "b", "c"} {
		assert.Contains(t, out, key+" hermitian=true positive=true projector=true trace=1\n")
	}
	assert.Contains(t, out, "complete=n/a mixed dimensions")
	assert.NotContains(t, out, "complete=true")
	assert.NotContains(t, out, "complete=false")
}

// TestPovmCmd_Stdout writes the dump to the command output.
func TestPovmCmd_Stdout(t *testing.T) {
	out, err := run(t, "povm", "--max-a", "0", "--max-b", "0")
	require.NoError(t, err)
	assert.Equal(t, "0,0\nOperator(Term(Qudit(\"00\",2),Qudit(\"00\",2),N(1,0)))\n", out)
}

// TestPovmCmd_Invalid rejects flags outside the config bounds.
func TestPovmCmd_Invalid(t *testing.T) {
	_, err := run(t, "povm", "--subset", "most")
	assert.ErrorIs(t, err, errBadConfig)

	_, err = run(t, "povm", "--max-a", "-1")
	assert.ErrorIs(t, err, errBadConfig)
}

// TestMeasureCmd_Basis collapses a basis state with certainty.
func TestMeasureCmd_Basis(t *testing.T) {
	out, err := run(t, "measure", "01")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "01 p=1 "), out)
}

// TestMeasureCmd_Shots counts both outcomes of a superposition.
func TestMeasureCmd_Shots(t *testing.T) {
	out, err := run(t, "measure", "0", "1", "--shots", "200", "--seed", "7")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0 "))
	assert.True(t, strings.HasPrefix(lines[1], "1 "))

	_, err = run(t, "measure", "0", "0")
	assert.Error(t, err)
	_, err = run(t, "measure", "0", "--shots", "0")
	assert.Error(t, err)
}

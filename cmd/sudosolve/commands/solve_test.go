package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudosolve/internal/solver"
)

const classicOneLiner = "530070000600195000098000060800060003400803001700020006060000280000419005000080079\n"

func TestSolveCommandFromStdin(t *testing.T) {
	cmd := solveCmd()
	cmd.SetIn(strings.NewReader(classicOneLiner))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, out.String(), ".", "solved grid should have no blanks")
	assert.Contains(t, out.String(), "5 3 4")
}

func TestSolveCommandReportsConflict(t *testing.T) {
	cmd := solveCmd()
	cmd.SetIn(strings.NewReader("550000000\n000000000\n000000000\n000000000\n000000000\n000000000\n000000000\n000000000\n000000000\n"))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.ErrorIs(t, err, solver.ErrConflict)
}

func TestCheckCommandAcceptsValidPuzzle(t *testing.T) {
	cmd := checkCmd()
	cmd.SetIn(strings.NewReader(classicOneLiner))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "ok\n", out.String())
}

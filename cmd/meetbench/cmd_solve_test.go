package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadGrid parses well-formed input and rejects ragged or junk rows.
func TestReadGrid(t *testing.T) {
	grid, err := readGrid(strings.NewReader("1 0 2 0 1\n0 0 0 0 0\n\n0 0 1 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, 0, 2, 0, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
	}, grid)

	_, err = readGrid(strings.NewReader("1 0\n1 0 0\n"))
	assert.ErrorContains(t, err, "rectangular")

	_, err = readGrid(strings.NewReader("1 x\n"))
	assert.ErrorContains(t, err, "bad cell")

	grid, err = readGrid(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, grid)
}

// TestSolveCmd_Stdin runs the solve command end to end on the worked
// example grid.
func TestSolveCmd_Stdin(t *testing.T) {
	cmd := newSolveCmd()
	cmd.SetIn(strings.NewReader("1 0 2 0 1\n0 0 0 0 0\n0 0 1 0 0\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("stdin", "true"))

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "grid 3x5: 3 houses, 1 obstacles, 11 empty")
	assert.Contains(t, out.String(), "minimum total distance: 7")
}

// TestSolveCmd_NoSolution reports the sentinel in words.
func TestSolveCmd_NoSolution(t *testing.T) {
	cmd := newSolveCmd()
	cmd.SetIn(strings.NewReader("1 2 1\n2 2 2\n1 2 1\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("stdin", "true"))

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "no meeting point exists")
}

package timing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meetgrid/timing"
)

// TestSample_Summary checks the sample summary invariants on a trivial
// solver: run count, value passthrough, and Min ≤ Median/Mean ≤ Max.
func TestSample_Summary(t *testing.T) {
	calls := 0
	stats, value, err := timing.Sample(func() int {
		calls++

		return 7
	}, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, calls, "solver must run exactly `runs` times")
	assert.Equal(t, 7, value)
	assert.Equal(t, 4, stats.Runs)
	assert.LessOrEqual(t, stats.Min, stats.Mean)
	assert.LessOrEqual(t, stats.Mean, stats.Max)
	assert.LessOrEqual(t, stats.Min, stats.Median)
	assert.LessOrEqual(t, stats.Median, stats.Max)
	assert.GreaterOrEqual(t, stats.StdDev, 0.0)
}

// TestSample_SingleRun: one run means zero stddev, not NaN.
func TestSample_SingleRun(t *testing.T) {
	stats, value, err := timing.Sample(func() int { return -1 }, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, value)
	assert.Equal(t, 1, stats.Runs)
	assert.Zero(t, stats.StdDev)
}

// TestSample_Errors covers the sentinel error paths.
func TestSample_Errors(t *testing.T) {
	_, _, err := timing.Sample(nil, 3)
	assert.True(t, errors.Is(err, timing.ErrNilSolver))

	_, _, err = timing.Sample(func() int { return 0 }, 0)
	assert.True(t, errors.Is(err, timing.ErrBadRuns))

	// A solver whose result drifts across runs violates determinism.
	n := 0
	_, _, err = timing.Sample(func() int {
		n++

		return n
	}, 3)
	assert.True(t, errors.Is(err, timing.ErrUnstableResult))
}

// TestSuites_Shape pins the reference configurations.
func TestSuites_Shape(t *testing.T) {
	def := timing.DefaultSuite()
	require.Len(t, def, 6)
	assert.Equal(t, "Small Dense", def[0].Name)
	assert.Equal(t, "Large with Obstacles", def[5].Name)

	plot := timing.PlotSuite()
	require.Len(t, plot, 12)
	// Open/obstructed twins alternate and share grid sizes.
	for i := 0; i < len(plot); i += 2 {
		open, obstructed := plot[i], plot[i+1]
		assert.Zero(t, open.ObstacleDensity)
		assert.Equal(t, 0.05, obstructed.ObstacleDensity)
		assert.Equal(t, open.Size(), obstructed.Size())
		assert.Equal(t, open.Name+"+Obstacles", obstructed.Name)
	}
}

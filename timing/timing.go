package timing

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for the measurement harness.
var (
	// ErrBadRuns indicates a non-positive run count.
	ErrBadRuns = errors.New("timing: runs must be ≥ 1")
	// ErrNilSolver indicates a nil solver closure.
	ErrNilSolver = errors.New("timing: solver must not be nil")
	// ErrUnstableResult indicates the solver returned different values
	// across runs of the same input; the computation is expected to be
	// deterministic.
	ErrUnstableResult = errors.New("timing: solver result changed between runs")
	// ErrNoResults indicates an empty result set was handed to a reporter.
	ErrNoResults = errors.New("timing: no results to report")
)

// Stats summarizes wall-clock samples, in seconds.
type Stats struct {
	Mean   float64
	StdDev float64 // sample standard deviation; 0 when Runs == 1
	Min    float64
	Max    float64
	Median float64
	Runs   int
}

// Sample invokes fn runs times, timing each call, and returns the sample
// summary together with fn's (deterministic) result.
// Returns ErrNilSolver, ErrBadRuns, or ErrUnstableResult when the result
// differs between runs.
// Complexity: O(runs · cost(fn)).
func Sample(fn func() int, runs int) (Stats, int, error) {
	if fn == nil {
		return Stats{}, 0, ErrNilSolver
	}
	if runs < 1 {
		return Stats{}, 0, fmt.Errorf("Sample: runs=%d: %w", runs, ErrBadRuns)
	}

	samples := make([]float64, runs)
	value := 0
	for i := 0; i < runs; i++ {
		start := time.Now()
		v := fn()
		samples[i] = time.Since(start).Seconds()
		if i == 0 {
			value = v
			continue
		}
		if v != value {
			return Stats{}, 0, fmt.Errorf("Sample: run %d returned %d, run 0 returned %d: %w",
				i, v, value, ErrUnstableResult)
		}
	}

	return summarize(samples), value, nil
}

// summarize reduces raw samples to Stats. Sorting once serves Min, Max,
// and the empirical median.
func summarize(samples []float64) Stats {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	s := Stats{
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Runs:   len(sorted),
	}
	if s.Runs > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}

	return s
}

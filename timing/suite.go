package timing

import (
	"fmt"

	"github.com/katalvlaran/meetgrid/gridgen"
	"github.com/katalvlaran/meetgrid/meetpoint"
)

// DefaultRuns is the per-case run count used when Case.Runs is zero.
const DefaultRuns = 5

// defaultSeed keeps suite grids stable across harness invocations.
const defaultSeed int64 = 42

// Case names one benchmark configuration: grid shape, composition
// densities, seed, and run count.
type Case struct {
	Name            string
	Rows, Cols      int
	HouseDensity    float64
	ObstacleDensity float64
	Seed            int64 // 0 ⇒ the suite default seed
	Runs            int   // 0 ⇒ DefaultRuns
}

// Cells returns the grid size in cells.
func (c Case) Cells() int { return c.Rows * c.Cols }

// Size returns the "RxC" label used in tables and charts.
func (c Case) Size() string { return fmt.Sprintf("%dx%d", c.Rows, c.Cols) }

// Result carries the measurements for one Case.
//
// Scan, Traverse, Agree, and Speedup are populated only when SubMeasured is
// true: the grid was obstacle-free with at least one house, so both
// sub-operations could be driven directly.
type Result struct {
	Case                     Case
	Houses, Obstacles, Empty int
	Value                    int // solver result (or meetpoint.NoMeetingPoint)
	Auto                     Stats
	Scan                     Stats
	Traverse                 Stats
	SubMeasured              bool
	Agree                    bool    // scan, traverse, and dispatcher values all equal
	Speedup                  float64 // Traverse.Mean / Scan.Mean
}

// Measure generates the case's grid and times the dispatcher; on
// obstacle-free grids with houses it additionally times both
// sub-operations, cross-checks their values, and derives the speedup.
// The solver is consumed purely through its public call contract.
func Measure(c Case) (Result, error) {
	runs := c.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}
	seed := c.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	grid, err := gridgen.Generate(c.Rows, c.Cols,
		gridgen.WithSeed(seed),
		gridgen.WithHouseDensity(c.HouseDensity),
		gridgen.WithObstacleDensity(c.ObstacleDensity),
	)
	if err != nil {
		return Result{}, fmt.Errorf("Measure(%s): %w", c.Name, err)
	}

	res := Result{Case: c}
	res.Houses, res.Obstacles, res.Empty = gridgen.Census(grid)

	res.Auto, res.Value, err = Sample(func() int {
		return meetpoint.MinTotalDistance(grid)
	}, runs)
	if err != nil {
		return Result{}, fmt.Errorf("Measure(%s): dispatcher: %w", c.Name, err)
	}

	if res.Obstacles > 0 || res.Houses == 0 {
		return res, nil
	}

	// Obstacle-free with houses: drive both sub-operations directly.
	houses := meetpoint.Houses(grid)
	var scanVal, travVal int
	res.Scan, scanVal, err = Sample(func() int {
		return meetpoint.ScanNoObstacles(grid, houses)
	}, runs)
	if err != nil {
		return Result{}, fmt.Errorf("Measure(%s): scan: %w", c.Name, err)
	}
	res.Traverse, travVal, err = Sample(func() int {
		return meetpoint.TraverseWithObstacles(grid, houses)
	}, runs)
	if err != nil {
		return Result{}, fmt.Errorf("Measure(%s): traverse: %w", c.Name, err)
	}

	res.SubMeasured = true
	res.Agree = scanVal == travVal && scanVal == res.Value
	if res.Scan.Mean > 0 {
		res.Speedup = res.Traverse.Mean / res.Scan.Mean
	}

	return res, nil
}

// MeasureSuite measures every case in order, stopping at the first failure.
func MeasureSuite(cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		r, err := Measure(c)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, nil
}

// DefaultSuite returns the standard summary-table configurations.
func DefaultSuite() []Case {
	return []Case{
		{Name: "Small Dense", Rows: 20, Cols: 20, HouseDensity: 0.2},
		{Name: "Small Sparse", Rows: 20, Cols: 20, HouseDensity: 0.05},
		{Name: "Medium Dense", Rows: 50, Cols: 50, HouseDensity: 0.1},
		{Name: "Medium with Obstacles", Rows: 50, Cols: 50, HouseDensity: 0.1, ObstacleDensity: 0.1},
		{Name: "Large Sparse", Rows: 100, Cols: 100, HouseDensity: 0.02},
		{Name: "Large with Obstacles", Rows: 100, Cols: 100, HouseDensity: 0.05, ObstacleDensity: 0.05},
	}
}

// PlotSuite returns the scaling-chart configurations: six sizes, each with
// an open grid and an obstructed (5% obstacles) twin measured back-to-back.
func PlotSuite() []Case {
	sizes := []Case{
		{Name: "Tiny", Rows: 10, Cols: 10, HouseDensity: 0.15},
		{Name: "Small", Rows: 25, Cols: 25, HouseDensity: 0.1},
		{Name: "Medium", Rows: 50, Cols: 50, HouseDensity: 0.08},
		{Name: "Large", Rows: 75, Cols: 75, HouseDensity: 0.06},
		{Name: "XLarge", Rows: 100, Cols: 100, HouseDensity: 0.04},
		{Name: "XXLarge", Rows: 120, Cols: 120, HouseDensity: 0.03},
	}

	cases := make([]Case, 0, 2*len(sizes))
	for _, c := range sizes {
		c.Runs = 10
		cases = append(cases, c)
		obstructed := c
		obstructed.Name += "+Obstacles"
		obstructed.ObstacleDensity = 0.05
		cases = append(cases, obstructed)
	}

	return cases
}

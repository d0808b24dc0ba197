package meetpoint_test

import (
	"testing"

	"github.com/katalvlaran/meetgrid/gridgen"
	"github.com/katalvlaran/meetgrid/meetpoint"
)

// benchGrid builds a deterministic rows×cols grid for benchmarking.
func benchGrid(b *testing.B, rows, cols int, houseDensity, obstacleDensity float64) [][]int {
	b.Helper()
	grid, err := gridgen.Generate(rows, cols,
		gridgen.WithSeed(42),
		gridgen.WithHouseDensity(houseDensity),
		gridgen.WithObstacleDensity(obstacleDensity),
	)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	return grid
}

// BenchmarkScanNoObstacles measures the closed-form scan on a 100×100 open
// grid with 5% houses. Complexity: O(M·N·H).
func BenchmarkScanNoObstacles(b *testing.B) {
	grid := benchGrid(b, 100, 100, 0.05, 0)
	houses := meetpoint.Houses(grid)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = meetpoint.ScanNoObstacles(grid, houses)
	}
}

// BenchmarkTraverse_Open measures the BFS accumulation on the same open
// grid, the direct comparison behind the fast-path speedup figure.
func BenchmarkTraverse_Open(b *testing.B) {
	grid := benchGrid(b, 100, 100, 0.05, 0)
	houses := meetpoint.Houses(grid)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = meetpoint.TraverseWithObstacles(grid, houses)
	}
}

// BenchmarkTraverse_Obstacles measures the BFS accumulation on a 100×100
// grid with 5% houses and 5% obstacles. Complexity: O(H·M·N).
func BenchmarkTraverse_Obstacles(b *testing.B) {
	grid := benchGrid(b, 100, 100, 0.05, 0.05)
	houses := meetpoint.Houses(grid)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = meetpoint.TraverseWithObstacles(grid, houses)
	}
}

// BenchmarkMinTotalDistance measures the full dispatcher path, including
// the classification pass, on a mixed 200×200 grid.
func BenchmarkMinTotalDistance(b *testing.B) {
	grid := benchGrid(b, 200, 200, 0.02, 0.05)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = meetpoint.MinTotalDistance(grid)
	}
}

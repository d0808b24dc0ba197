package meetpoint

// algorithm selects the concrete solver for a classified grid.
type algorithm int

const (
	// algoScan: closed-form separable Manhattan scan, obstacle-free grids only.
	algoScan algorithm = iota
	// algoTraverse: per-house BFS accumulation, correct with obstacles.
	algoTraverse
)

// MinTotalDistance computes the minimum total 4-directional distance from
// every house to a single common empty cell, or NoMeetingPoint when no such
// cell exists.
//
// It is a pure classification + routing step: one pass derives the house
// list and the obstacle flag, then exactly one algorithm runs —
// ScanNoObstacles on obstacle-free grids, TraverseWithObstacles otherwise.
// MinTotalDistance never computes distances itself.
//
// Degenerate inputs (zero rows, zero columns, no houses) return
// NoMeetingPoint. The grid is never mutated; repeated calls on the same
// grid return the same result.
//
// Complexity: O(M·N·H) time, O(M·N) memory worst case (traversal path).
func MinTotalDistance(grid [][]int) int {
	m, n := dims(grid)
	if m == 0 || n == 0 {
		return NoMeetingPoint
	}

	houses := Houses(grid)
	if len(houses) == 0 {
		return NoMeetingPoint
	}

	algo := algoScan
	if HasObstacles(grid) {
		algo = algoTraverse
	}

	switch algo {
	case algoTraverse:
		return TraverseWithObstacles(grid, houses)
	default:
		return ScanNoObstacles(grid, houses)
	}
}

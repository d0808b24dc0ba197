package meetpoint

// ScanNoObstacles computes the minimum total Manhattan distance from houses
// to any empty cell of an obstacle-free grid, or NoMeetingPoint when the
// grid has no empty cell.
//
// Precondition (NOT re-validated here): grid contains only Empty and House
// cells. On an obstacle-free grid every empty cell is reachable from every
// house, so total distance decomposes into independent row and column
// contributions and no graph search is needed. Calling this on a grid that
// does contain obstacles silently yields a wrong answer — route through
// MinTotalDistance unless the precondition is already established.
//
// When several empty cells tie on the minimum sum, only the value is
// observable; no winning coordinate is reported.
//
// Complexity: O(M·N·H) time, O(1) extra memory.
func ScanNoObstacles(grid [][]int, houses []Coord) int {
	m, n := dims(grid)
	best := NoMeetingPoint
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			if grid[r][c] != Empty {
				continue
			}
			total := 0
			for _, h := range houses {
				total += abs(h.Row-r) + abs(h.Col-c)
			}
			if best == NoMeetingPoint || total < best {
				best = total
			}
		}
	}

	return best
}

// abs returns |x| for int without a float round-trip.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

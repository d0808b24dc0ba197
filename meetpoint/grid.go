package meetpoint

// dims returns the grid dimensions (m rows, n cols).
// Column count is taken from the first row; ragged rows are a caller error.
// Complexity: O(1).
func dims(grid [][]int) (m, n int) {
	m = len(grid)
	if m == 0 {
		return 0, 0
	}

	return m, len(grid[0])
}

// Houses returns the ordered (row-major) list of house coordinates.
// Duplicates cannot occur: each coordinate maps to exactly one cell value.
// Complexity: O(M·N) time, O(H) memory.
func Houses(grid [][]int) []Coord {
	m, n := dims(grid)
	var houses []Coord
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			if grid[r][c] == House {
				houses = append(houses, Coord{Row: r, Col: c})
			}
		}
	}

	return houses
}

// HasObstacles reports whether any cell of grid is classified as an obstacle.
// Complexity: O(M·N).
func HasObstacles(grid [][]int) bool {
	m, n := dims(grid)
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			if IsObstacle(grid[r][c]) {
				return true
			}
		}
	}

	return false
}

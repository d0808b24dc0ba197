package meetpoint

// neighborOffsets lists the 4 orthogonal step directions: E, S, W, N.
// Unit step cost, no diagonal moves.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// frontierItem pairs a row-major cell index with its BFS depth from the
// current house.
type frontierItem struct {
	idx  int
	dist int
}

// TraverseWithObstacles computes the minimum total distance from houses to
// any empty cell reachable from ALL of them, or NoMeetingPoint when no such
// cell exists. It is the only correct path when obstacles are present and
// agrees exactly with ScanNoObstacles on obstacle-free grids.
//
// For each house in turn a breadth-first traversal walks the non-obstacle
// cells, adding the path distance of every empty cell it reaches to a
// shared per-cell accumulator and bumping that cell's reachability count.
// Visited-state is tracked with a generation tag per cell: the tag array is
// allocated once and the generation counter advances before each house's
// traversal, so a cell counts as visited iff its tag equals the current
// generation — no per-house reallocation, no tag reuse within one call.
//
// After all traversals, an empty cell is a valid meeting point iff its
// reachability count equals len(houses); the minimum accumulated sum among
// valid cells is returned. House order does not affect the result.
//
// Precondition: valid rectangular grid and non-empty house list whose
// coordinates lie in bounds (both guaranteed when routed through
// MinTotalDistance).
//
// Complexity: O(H·M·N) time, O(M·N) memory.
func TraverseWithObstacles(grid [][]int, houses []Coord) int {
	m, n := dims(grid)
	total := m * n

	distSum := make([]int, total)
	reach := make([]int, total)
	visit := make([]int, total) // generation tags; zero = never visited
	queue := make([]frontierItem, 0, total)

	gen := 0
	for _, h := range houses {
		gen++ // tags from earlier traversals become stale, not cleared
		queue = queue[:0]
		start := h.Row*n + h.Col
		visit[start] = gen
		queue = append(queue, frontierItem{idx: start})

		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			r, c := cur.idx/n, cur.idx%n
			// Only empty cells accumulate: a house cell is traversable but
			// never a meeting candidate, so step counts skip it here.
			if grid[r][c] == Empty {
				distSum[cur.idx] += cur.dist
				reach[cur.idx]++
			}
			for _, d := range neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= m || nc < 0 || nc >= n {
					continue
				}
				if IsObstacle(grid[nr][nc]) {
					continue
				}
				ni := nr*n + nc
				if visit[ni] == gen {
					continue
				}
				visit[ni] = gen
				queue = append(queue, frontierItem{idx: ni, dist: cur.dist + 1})
			}
		}
	}

	best := NoMeetingPoint
	for i := 0; i < total; i++ {
		if grid[i/n][i%n] != Empty || reach[i] != len(houses) {
			continue
		}
		if best == NoMeetingPoint || distSum[i] < best {
			best = distSum[i]
		}
	}

	return best
}

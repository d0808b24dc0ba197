// Package meetpoint computes the optimal meeting point on a 2D grid of
// empty cells, houses, and obstacles: the empty cell minimizing the total
// 4-directional travel distance from every house.
//
// What:
//
//   - MinTotalDistance classifies the grid once and routes to exactly one
//     of two algorithms, returning the minimum total distance or
//     NoMeetingPoint (-1) when no valid meeting cell exists.
//   - ScanNoObstacles evaluates the closed-form separable Manhattan sum per
//     empty cell; valid only on obstacle-free grids.
//   - TraverseWithObstacles runs one breadth-first traversal per house,
//     accumulating per-cell distance sums and reachability counts; valid
//     with or without obstacles.
//   - Houses and HasObstacles expose the grid classification so harnesses
//     can drive the two algorithms directly.
//
// Why:
//
//   - Facility placement: pick the cell minimizing combined travel cost.
//   - Logistics sketches: meeting/rally point selection on blocked maps.
//   - Algorithm study: a worked contrast of closed-form vs. traversal.
//
// Cell model:
//
//	A grid is a rectangular [][]int. Value 0 is empty land (candidate
//	meeting cell), 1 is a house, and ANY other value is an obstacle —
//	a closed three-way classification, not an open code space. A meeting
//	cell must be reachable from every house through non-obstacle cells.
//
// Complexity:
//
//   - ScanNoObstacles:        O(M·N·H) time, O(1) extra memory.
//   - TraverseWithObstacles:  O(H·M·N) time, O(M·N) memory for the shared
//     accumulator, reach-count, and visit-generation arrays.
//   - MinTotalDistance:       one O(M·N) classification pass + one algorithm.
//
// Degenerate inputs are defined outcomes, never errors: an empty grid, a
// zero-width grid, a grid without houses, or a grid whose houses cannot all
// reach a common empty cell each yield NoMeetingPoint. Rows are assumed to
// share the first row's length; ragged input is a caller error with
// unspecified behavior.
package meetpoint

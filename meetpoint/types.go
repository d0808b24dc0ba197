// Package meetpoint defines the cell markers, coordinate type, and sentinel
// shared by the meeting-point algorithms.
package meetpoint

// Raw cell markers recognized in input grids.
// Any value other than Empty or House is an obstacle.
const (
	// Empty marks traversable land, a candidate meeting cell.
	Empty = 0
	// House marks a house cell; traversable but never a meeting cell.
	House = 1
)

// NoMeetingPoint is the sentinel result: no empty cell is reachable from
// every house, or the input is degenerate (empty grid, no houses).
const NoMeetingPoint = -1

// Coord identifies a grid cell by row and column.
type Coord struct {
	Row, Col int
}

// IsObstacle reports whether raw cell value v blocks traversal.
// The classification is closed three-way: 0 empty, 1 house, anything else
// an obstacle.
func IsObstacle(v int) bool {
	return v != Empty && v != House
}

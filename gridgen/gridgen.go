package gridgen

import (
	"errors"
	"fmt"
)

// ErrBadDims indicates negative grid dimensions.
var ErrBadDims = errors.New("gridgen: rows and cols must be non-negative")

// Generate builds a rows×cols grid of meeting-point cell values:
// 0 empty, 1 house, obstacleMarker (default 2) obstacle.
//
// Placement order:
//  1. houses = int(rows·cols · houseDensity) distinct cells, sampled
//     uniformly without replacement;
//  2. obstacles = int(remainingEmpty · obstacleDensity) cells sampled from
//     the cells still empty after house placement — obstacles never
//     overwrite houses.
//
// Counts truncate toward zero, so tiny grids at low densities may receive
// no houses at all; callers wanting houses should check or raise density.
//
// rows==0 or cols==0 yields a degenerate (but valid) grid; negative
// dimensions return ErrBadDims.
//
// Complexity: O(rows·cols) time and memory.
func Generate(rows, cols int, opts ...Option) ([][]int, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Generate: rows=%d, cols=%d: %w", rows, cols, ErrBadDims)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
	}

	total := rows * cols
	if total == 0 {
		return grid, nil
	}

	// 1) Houses: first houseCount entries of a permutation of all cells.
	houseCount := int(float64(total) * cfg.houseDensity)
	perm := cfg.rng.Perm(total)
	for _, idx := range perm[:houseCount] {
		grid[idx/cols][idx%cols] = 1
	}

	// 2) Obstacles: sampled from the cells still empty — exactly the
	// permutation tail, since houses claimed the head.
	if cfg.obstacleDensity > 0 {
		available := perm[houseCount:]
		obstacleCount := int(float64(len(available)) * cfg.obstacleDensity)
		cfg.rng.Shuffle(len(available), func(i, j int) {
			available[i], available[j] = available[j], available[i]
		})
		for _, idx := range available[:obstacleCount] {
			grid[idx/cols][idx%cols] = cfg.obstacleMarker
		}
	}

	return grid, nil
}

// Census reports the composition of a grid: counts of house, obstacle, and
// empty cells under the closed three-way classification.
// Complexity: O(rows·cols).
func Census(grid [][]int) (houses, obstacles, empty int) {
	for _, row := range grid {
		for _, v := range row {
			switch v {
			case 0:
				empty++
			case 1:
				houses++
			default:
				obstacles++
			}
		}
	}

	return houses, obstacles, empty
}

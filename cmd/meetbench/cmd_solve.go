package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meetgrid/gridgen"
	"github.com/katalvlaran/meetgrid/meetpoint"
)

// newSolveCmd wires `meetbench solve`: solve one grid, either generated
// from the flags or read from stdin as whitespace-separated rows.
func newSolveCmd() *cobra.Command {
	var (
		rows, cols       int
		houses, obstacle float64
		seed             int64
		fromStdin        bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single grid and print the minimum total distance",
		Long: `Solve computes the optimal meeting point of one grid. By default the grid
is generated from the flags; with --stdin it is read instead, one row per
line of whitespace-separated cell values (0 empty, 1 house, other
obstacle).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				grid [][]int
				err  error
			)
			if fromStdin {
				grid, err = readGrid(cmd.InOrStdin())
			} else {
				grid, err = gridgen.Generate(rows, cols,
					gridgen.WithSeed(seed),
					gridgen.WithHouseDensity(houses),
					gridgen.WithObstacleDensity(obstacle),
				)
			}
			if err != nil {
				return err
			}

			h, o, e := gridgen.Census(grid)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grid %dx%d: %d houses, %d obstacles, %d empty\n",
				len(grid), width(grid), h, o, e)

			if value := meetpoint.MinTotalDistance(grid); value == meetpoint.NoMeetingPoint {
				fmt.Fprintln(out, "no meeting point exists")
			} else {
				fmt.Fprintf(out, "minimum total distance: %d\n", value)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 10, "generated grid rows")
	cmd.Flags().IntVar(&cols, "cols", 10, "generated grid cols")
	cmd.Flags().Float64Var(&houses, "houses", 0.1, "house density [0,1]")
	cmd.Flags().Float64Var(&obstacle, "obstacles", 0, "obstacle density [0,1]")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed (0 = default)")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the grid from stdin instead of generating")

	return cmd
}

// readGrid parses one grid row per non-empty line; all rows must share the
// first row's length.
func readGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad cell %q: %w", len(grid), f, err)
			}
			row[i] = v
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("row %d: got %d cells, want %d (rectangular grid required)",
				len(grid), len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}

	return grid, nil
}

// width returns the column count of a possibly empty grid.
func width(grid [][]int) int {
	if len(grid) == 0 {
		return 0
	}

	return len(grid[0])
}

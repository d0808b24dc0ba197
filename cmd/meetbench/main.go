// Command meetbench benchmarks and explores the meetgrid meeting-point
// solvers: summary tables, HTML scaling charts, and one-off solves of
// generated or piped-in grids.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "meetbench",
		Short:         "Benchmark and explore the meetgrid meeting-point solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newPlotCmd(), newSolveCmd())

	if err := root.Execute(); err != nil {
		slog.Error("meetbench failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meetgrid/timing"
)

// newPlotCmd wires `meetbench plot`: measure the scaling suite and render
// the HTML comparison chart.
func newPlotCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Run the scaling suite and render an HTML chart",
		Long: `Plot measures six grid sizes (each with an open and an obstructed twin)
and renders a self-contained HTML line chart of mean seconds per call:
dispatcher, separable scan, BFS traversal, and the obstructed dispatcher,
on a log scale.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			slog.Info("measuring scaling suite")
			results, err := timing.MeasureSuite(timing.PlotSuite())
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			if err := timing.RenderChart(f, results); err != nil {
				return err
			}
			slog.Info("chart written", "path", out)

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "meetgrid_scaling.html", "output HTML file")

	return cmd
}

package timing

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// echarts renders a gap for the "-" placeholder value.
const noPoint = "-"

// RenderChart writes a self-contained HTML line chart of mean seconds per
// call against grid size. Obstacle-free results define the X axis and the
// auto/scan/traverse series; results from obstructed twin cases (matched by
// grid size) form a fourth series. Returns ErrNoResults when no
// obstacle-free result is present.
func RenderChart(w io.Writer, results []Result) error {
	var open []Result
	obstructed := make(map[string]Result)
	for _, r := range results {
		if r.Case.ObstacleDensity == 0 {
			open = append(open, r)
		} else {
			obstructed[r.Case.Size()] = r
		}
	}
	if len(open) == 0 {
		return ErrNoResults
	}

	labels := make([]string, 0, len(open))
	auto := make([]opts.LineData, 0, len(open))
	scan := make([]opts.LineData, 0, len(open))
	traverse := make([]opts.LineData, 0, len(open))
	autoObstructed := make([]opts.LineData, 0, len(open))
	for _, r := range open {
		labels = append(labels, r.Case.Size())
		auto = append(auto, opts.LineData{Value: r.Auto.Mean})
		if r.SubMeasured {
			scan = append(scan, opts.LineData{Value: r.Scan.Mean})
			traverse = append(traverse, opts.LineData{Value: r.Traverse.Mean})
		} else {
			scan = append(scan, opts.LineData{Value: noPoint})
			traverse = append(traverse, opts.LineData{Value: noPoint})
		}
		if twin, ok := obstructed[r.Case.Size()]; ok {
			autoObstructed = append(autoObstructed, opts.LineData{Value: twin.Auto.Mean})
		} else {
			autoObstructed = append(autoObstructed, opts.LineData{Value: noPoint})
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "meetgrid scaling",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Algorithm scaling with grid size",
			Subtitle: "mean seconds per call, log scale",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "grid"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "log", Name: "seconds"}),
	)

	line.SetXAxis(labels).
		AddSeries("auto", auto).
		AddSeries("scan", scan).
		AddSeries("traverse", traverse)
	if len(obstructed) > 0 {
		line.AddSeries("auto+obstacles", autoObstructed)
	}

	return line.Render(w)
}

// Package timing benchmarks the meeting-point solvers through their public
// call contract: wall-clock sampling, statistical aggregation, text tables,
// and an HTML scaling chart. It never inspects solver internals.
//
// What:
//
//   - Sample times one solver closure over N runs and summarizes the
//     samples (mean, stddev, min, max, median via gonum/stat), verifying
//     the returned value is identical on every run.
//   - Case / Measure / MeasureSuite generate a seeded grid per named
//     configuration and time the three call paths: the dispatcher always;
//     the separable scan and the BFS traversal additionally on
//     obstacle-free grids, with an agreement check and a speedup ratio.
//   - DefaultSuite and PlotSuite provide ready-made configuration tables
//     (Small Dense … Large with Obstacles; Tiny … XXLarge plus obstructed
//     twins for the scaling chart).
//   - WriteTable prints an aligned summary; RenderChart emits a
//     self-contained HTML line chart (go-echarts) of mean seconds per grid
//     size, log scale.
//
// Why:
//
//   - Quantify the fast-path speedup of the closed-form scan over BFS.
//   - Catch algorithm disagreement on obstacle-free grids in the wild.
//
// Determinism: grids come from gridgen with the case seed, so two runs of
// the same suite measure the same inputs; only the wall-clock varies.
package timing

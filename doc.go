// Package meetgrid computes optimal meeting points on 2D obstacle grids —
// from the core distance engine to grid generation and benchmarking tools.
//
// 🚀 What is meetgrid?
//
//	A small, focused library answering one question fast: given an M×N grid
//	of empty cells, houses, and obstacles, which empty cell minimizes the
//	total 4-directional travel distance from every house?
//		• meetpoint/ — the distance engine: dispatcher + two algorithms
//		  (separable Manhattan scan, multi-source BFS accumulation)
//		• gridgen/   — deterministic random grid producer for tests & benchmarks
//		• timing/    — wall-clock harness, statistics, HTML scaling charts
//		• cmd/meetbench — CLI driving all of the above
//
// ✨ Why choose meetgrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – pure functions, sentinel result (-1), no hidden state
//   - Fast – O(M·N·H) scan on open grids, generation-tagged BFS otherwise
//   - Reproducible – seeded generators, deterministic benchmark suites
//
// Quick ASCII example (H = house, # = obstacle, * = best meeting cell):
//
//	H . # . H
//	. . * . .
//	. . H . .
//
//	total distance from the three houses to * is 7 — the minimum.
//
// Dive into README-less doc.go files of each subpackage for contracts,
// complexity notes, and runnable examples.
//
//	go get github.com/katalvlaran/meetgrid/meetpoint
package meetgrid

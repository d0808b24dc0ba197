// Package gridgen produces randomized meeting-point grids for tests and
// benchmarks: empty land seeded with houses and obstacles at requested
// densities, deterministically from a seed.
//
// What:
//
//   - Generate builds a rows×cols [][]int grid: houses (1) are placed first
//     by sampling distinct cells, then obstacles on still-empty cells only,
//     so obstacle density is relative to the land remaining after houses.
//   - Census counts houses, obstacles, and empty cells of any grid.
//   - Functional options tune densities, the obstacle marker value, and the
//     random source (WithSeed / WithRand).
//
// Why:
//
//   - Reproducible benchmark fixtures: same seed ⇒ identical grid on every
//     platform and run.
//   - Cross-validation fodder: obstacle-free random grids exercise both
//     solver algorithms against each other.
//
// Determinism:
//
//   - All randomness flows through one *rand.Rand; no time-based sources.
//   - Seed 0 falls back to a fixed default seed, keeping the zero value
//     reproducible rather than accidental.
//
// Option constructors VALIDATE and PANIC on meaningless inputs (nil RNG,
// density outside [0,1], a marker that is not an obstacle value); Generate
// itself never panics and returns only sentinel errors.
//
// Complexity: Generate is O(rows·cols) time and memory.
package gridgen

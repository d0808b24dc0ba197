package gridgen

import (
	"math/rand"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
// Arbitrary but stable, so zero-value configs stay reproducible.
const defaultSeed int64 = 42

// defaultObstacleMarker is the raw value written for obstacle cells.
// Any value other than 0 (empty) and 1 (house) classifies as an obstacle.
const defaultObstacleMarker = 2

// config holds the tunable generation parameters. Everything flows through
// config; there are no hidden globals.
type config struct {
	rng             *rand.Rand
	houseDensity    float64
	obstacleDensity float64
	obstacleMarker  int
}

// defaultConfig returns the baseline: seeded RNG, 10% houses, no obstacles.
func defaultConfig() config {
	return config{
		rng:             rand.New(rand.NewSource(defaultSeed)),
		houseDensity:    0.1,
		obstacleDensity: 0,
		obstacleMarker:  defaultObstacleMarker,
	}
}

// Option mutates the generation config before any cell is placed.
type Option func(*config)

// WithSeed derives a deterministic RNG from seed.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func WithSeed(seed int64) Option {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return func(c *config) {
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand provides an explicit RNG, e.g. a substream shared with a larger
// harness. Panics on nil to surface programmer error early.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgen: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithHouseDensity sets the fraction of all cells that become houses.
// Panics unless d ∈ [0,1].
func WithHouseDensity(d float64) Option {
	if d < 0 || d > 1 {
		panic("gridgen: WithHouseDensity outside [0,1]")
	}

	return func(c *config) {
		c.houseDensity = d
	}
}

// WithObstacleDensity sets the fraction of post-house empty cells that
// become obstacles. Panics unless d ∈ [0,1].
func WithObstacleDensity(d float64) Option {
	if d < 0 || d > 1 {
		panic("gridgen: WithObstacleDensity outside [0,1]")
	}

	return func(c *config) {
		c.obstacleDensity = d
	}
}

// WithObstacleMarker overrides the raw value written for obstacles.
// Panics when v is 0 or 1: those are the empty/house markers and would not
// classify as an obstacle.
func WithObstacleMarker(v int) Option {
	if v == 0 || v == 1 {
		panic("gridgen: WithObstacleMarker must not be the empty or house marker")
	}

	return func(c *config) {
		c.obstacleMarker = v
	}
}

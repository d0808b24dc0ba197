package gridgen_test

import (
	"fmt"

	"github.com/katalvlaran/meetgrid/gridgen"
)

// ExampleGenerate builds a reproducible 10×10 grid with 10% houses and 5%
// obstacles and reports its composition. Counts depend only on the density
// arithmetic, not on where the RNG placed the cells.
func ExampleGenerate() {
	grid, err := gridgen.Generate(10, 10,
		gridgen.WithSeed(42),
		gridgen.WithHouseDensity(0.1),
		gridgen.WithObstacleDensity(0.05),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	houses, obstacles, empty := gridgen.Census(grid)
	fmt.Printf("houses=%d obstacles=%d empty=%d\n", houses, obstacles, empty)
	// Output:
	// houses=10 obstacles=4 empty=86
}

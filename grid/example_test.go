// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/routegen/grid"
)

// ExampleGrid_FreeRegions splits a 4×3 layer with a blocked column:
//
//	. # . .
//	. # . .
//	. # . .
func ExampleGrid_FreeRegions() {
	g := grid.New(4, 3, 1)
	for y := 0; y < 3; y++ {
		g.SetCell(1, y, 0, grid.Obstacle)
	}

	regions := g.FreeRegions(0)
	fmt.Println("regions:", len(regions))
	for i, r := range regions {
		fmt.Printf("region %d: %d cells from %v\n", i, len(r), r[0])
	}

	// Output:
	// regions: 2
	// region 0: 3 cells from (0, 0, 0)
	// region 1: 6 cells from (2, 0, 0)
}

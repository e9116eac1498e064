// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: EdgeCost
////////////////////////////////////////////////////////////////////////////////

// ExampleEdgeCost prices the moves out of the top-left cell of a small map.
// Scenario:
//
//   - (0,0)→(1,0): both cells are highway, straight move → 1/4.
//   - (0,0)→(0,1): highway to hard-to-traverse → (1 + 2) / 2.
//   - (0,0)→(1,1): diagonal, no highway bonus → √2.
//   - (1,0)→(2,0): into a blocked cell → +Inf.
func ExampleEdgeCost() {
	g := grid.MustParseRows(
		"aa0",
		"211",
	)
	fmt.Printf("%.3f\n", grid.EdgeCost(g, grid.C(0, 0), grid.C(1, 0)))
	fmt.Printf("%.3f\n", grid.EdgeCost(g, grid.C(0, 0), grid.C(0, 1)))
	fmt.Printf("%.3f\n", grid.EdgeCost(g, grid.C(0, 0), grid.C(1, 1)))
	fmt.Println(grid.EdgeCost(g, grid.C(1, 0), grid.C(2, 0)))

	// Output:
	// 0.250
	// 1.500
	// 1.414
	// +Inf
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents splits a map along a blocked column.
func ExampleGrid_ConnectedComponents() {
	g := grid.MustParseRows(
		"1a01",
		"120b",
	)
	for i, comp := range g.ConnectedComponents() {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", g.Coordinate(idx))
		}
		fmt.Println()
	}

	// Output:
	// component 0: (0,0) (1,0) (0,1) (1,1)
	// component 1: (3,0) (3,1)
}

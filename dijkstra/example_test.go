package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleShortestPath routes around a wall with a single gap.
// Scenario:
//
//	S 1 0 1 G
//	1 1 1 1 1
//
// The gap sits in the bottom row, so the route dips through it.
func ExampleShortestPath() {
	g := grid.MustParseRows(
		"11011",
		"11111",
	)
	path, cost, err := dijkstra.ShortestPath(g, grid.C(0, 0), grid.C(4, 0))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("hops:", len(path)-1)
	fmt.Printf("cost: %.4f\n", cost)

	// Output:
	// hops: 4
	// cost: 4.8284
}

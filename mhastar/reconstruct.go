package mhastar

import "github.com/katalvlaran/gridpath/grid"

// reconstruct walks parent links from goal back to start in lane l and
// returns the path start → goal inclusive. It must only be called once the
// lane has settled the goal.
func reconstruct(gr *grid.Grid, l *lane, goal grid.Coord) []grid.Coord {
	steps := 0
	for at := gr.Index(goal); at >= 0; at = l.parent[at] {
		steps++
	}

	path := make([]grid.Coord, steps)
	at := gr.Index(goal)
	for i := steps - 1; i >= 0; i-- {
		path[i] = gr.Coordinate(at)
		at = l.parent[at]
	}
	return path
}

package grid

// ConnectedComponents finds all contiguous regions of unblocked cells under
// 8-connectivity. Two cells are connected when EdgeCost between them is
// finite, i.e. neither is blocked.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order. Components are ordered by their
// first cell in row-major scan order.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	var comps [][]int
	g.label(func(comp []int) { comps = append(comps, comp) })
	return comps
}

// Connected reports whether a finite-cost path exists between a and b.
// Blocked or out-of-bounds endpoints are never connected.
func (g *Grid) Connected(a, b Coord) bool {
	if g.At(a).Blocked() || g.At(b).Blocked() {
		return false
	}
	labels := g.label(nil)
	return labels[g.Index(a)] == labels[g.Index(b)]
}

// label assigns a component number to every unblocked cell (blocked cells
// get -1) and reports each finished component to emit when non-nil.
func (g *Grid) label(emit func([]int)) []int {
	total := g.Size()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	var buf []Coord
	for i0 := 0; i0 < total; i0++ {
		if g.cells[i0].Blocked() || labels[i0] >= 0 {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		labels[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			buf = g.Neighbors(u, buf[:0])
			for _, v := range buf {
				vi := g.Index(v)
				if labels[vi] >= 0 || g.cells[vi].Blocked() {
					continue
				}
				labels[vi] = next
				queue = append(queue, vi)
			}
		}
		if emit != nil {
			emit(queue)
		}
		next++
	}

	return labels
}

package grid

import "math"

// highwayDiscount divides both endpoint factors of a non-diagonal
// highway-to-highway move.
const highwayDiscount = 4

// EdgeCost returns the cost of moving between the 8-adjacent cells a and b.
//
//   - +Inf if either endpoint is blocked (or out of bounds).
//   - Per-endpoint factor: √2 on a diagonal; otherwise 1, divided by 4 when
//     both endpoints are highway cells. The diagonal case takes precedence.
//   - A hard-to-traverse endpoint doubles its own factor.
//   - Result: (factorA + factorB) / 2.
//
// The result is symmetric in (a, b). Adjacency is not checked.
// Complexity: O(1).
func EdgeCost(g *Grid, a, b Coord) float64 {
	ca, cb := g.At(a), g.At(b)
	if ca.Blocked() || cb.Blocked() {
		return math.Inf(1)
	}

	fa, fb := 1.0, 1.0
	if Diagonal(a, b) {
		fa, fb = math.Sqrt2, math.Sqrt2
	} else if ca.Highway() && cb.Highway() {
		fa /= highwayDiscount
		fb /= highwayDiscount
	}

	if ca.HardToTraverse() {
		fa *= 2
	}
	if cb.HardToTraverse() {
		fb *= 2
	}

	return (fa + fb) / 2
}

// PathCost sums EdgeCost along path. It returns +Inf if two consecutive
// coordinates are not 8-adjacent or a hop touches a blocked cell, and 0 for
// paths with fewer than two cells.
func PathCost(g *Grid, path []Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		if !Adjacent(path[i-1], path[i]) {
			return math.Inf(1)
		}
		total += EdgeCost(g, path[i-1], path[i])
	}
	return total
}

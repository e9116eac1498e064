package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/grid"
)

const eps = 1e-12

func TestEdgeCost_Table(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		a, b grid.Coord
		want float64
	}{
		{"Straight", []string{"11"}, grid.C(0, 0), grid.C(1, 0), 1},
		{"Diagonal", []string{"11", "11"}, grid.C(0, 0), grid.C(1, 1), math.Sqrt2},
		{"HighwayStraight", []string{"aa"}, grid.C(0, 0), grid.C(1, 0), 0.25},
		{"HighwayToPlain", []string{"a1"}, grid.C(0, 0), grid.C(1, 0), 1},
		{"HighwayDiagonalNoDiscount", []string{"a1", "1a"}, grid.C(0, 0), grid.C(1, 1), math.Sqrt2},
		{"HardToPlain", []string{"21"}, grid.C(0, 0), grid.C(1, 0), 1.5},
		{"HardToHard", []string{"22"}, grid.C(0, 0), grid.C(1, 0), 2},
		{"HardDiagonal", []string{"21", "12"}, grid.C(0, 0), grid.C(1, 1), 2 * math.Sqrt2},
		{"HardHalfDiagonal", []string{"21", "11"}, grid.C(0, 0), grid.C(1, 1), 1.5 * math.Sqrt2},
		{"HardHighways", []string{"bb"}, grid.C(0, 0), grid.C(1, 0), 0.5},
		{"MixedHighways", []string{"ab"}, grid.C(0, 0), grid.C(1, 0), 0.375},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.MustParseRows(tc.rows...)
			assert.InDelta(t, tc.want, grid.EdgeCost(g, tc.a, tc.b), eps)
		})
	}
}

// TestEdgeCost_SymmetryAndFiniteness checks every adjacent pair of a grid
// holding all five terrain states: cost(a,b) == cost(b,a), and the cost is
// finite iff neither endpoint is blocked.
func TestEdgeCost_SymmetryAndFiniteness(t *testing.T) {
	g := grid.MustParseRows(
		"012ab",
		"ba210",
		"1a0b2",
		"22aa1",
	)
	var buf []grid.Coord
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			a := grid.C(x, y)
			buf = g.Neighbors(a, buf[:0])
			for _, b := range buf {
				ab, ba := grid.EdgeCost(g, a, b), grid.EdgeCost(g, b, a)
				assert.Equal(t, ab, ba, "cost(%v,%v) != cost(%v,%v)", a, b, b, a)

				blocked := g.At(a).Blocked() || g.At(b).Blocked()
				assert.Equal(t, !blocked, !math.IsInf(ab, 1), "finiteness of cost(%v,%v)", a, b)
				if !blocked {
					assert.Greater(t, ab, 0.0)
				}
			}
		}
	}
}

func TestPathCost(t *testing.T) {
	g := grid.MustParseRows("111", "111", "111")

	assert.Equal(t, 0.0, grid.PathCost(g, nil))
	assert.Equal(t, 0.0, grid.PathCost(g, []grid.Coord{{0, 0}}))
	assert.InDelta(t, 2*math.Sqrt2, grid.PathCost(g, []grid.Coord{{0, 0}, {1, 1}, {2, 2}}), eps)
	assert.True(t, math.IsInf(grid.PathCost(g, []grid.Coord{{0, 0}, {2, 2}}), 1), "non-adjacent hop")

	walled := grid.MustParseRows("101")
	assert.True(t, math.IsInf(grid.PathCost(walled, []grid.Coord{{0, 0}, {1, 0}, {2, 0}}), 1))
}

package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func TestConnectedComponents(t *testing.T) {
	g := grid.MustParseRows(
		"1100a",
		"1000b",
		"00000",
		"2b001",
	)
	comps := g.ConnectedComponents()
	require.Len(t, comps, 4)

	toCoords := func(comp []int) []grid.Coord {
		out := make([]grid.Coord, len(comp))
		for i, idx := range comp {
			out[i] = g.Coordinate(idx)
		}
		return out
	}
	assert.ElementsMatch(t, []grid.Coord{{0, 0}, {1, 0}, {0, 1}}, toCoords(comps[0]))
	assert.ElementsMatch(t, []grid.Coord{{4, 0}, {4, 1}}, toCoords(comps[1]))
	assert.ElementsMatch(t, []grid.Coord{{0, 3}, {1, 3}}, toCoords(comps[2]))
	assert.ElementsMatch(t, []grid.Coord{{4, 3}}, toCoords(comps[3]))
}

// TestConnected_DiagonalSqueeze confirms that 8-connectivity passes between
// two blocked cells touching at a corner, matching EdgeCost.
func TestConnected_DiagonalSqueeze(t *testing.T) {
	g := grid.MustParseRows(
		"10",
		"01",
	)
	assert.True(t, g.Connected(grid.C(0, 0), grid.C(1, 1)))
	assert.Len(t, g.ConnectedComponents(), 1)
}

func TestConnected(t *testing.T) {
	g := grid.MustParseRows(
		"11011",
		"11011",
		"11011",
	)
	assert.True(t, g.Connected(grid.C(0, 0), grid.C(1, 2)))
	assert.False(t, g.Connected(grid.C(0, 0), grid.C(4, 2)))
	assert.False(t, g.Connected(grid.C(2, 0), grid.C(2, 0)), "blocked endpoint")
	assert.False(t, g.Connected(grid.C(0, 0), grid.C(9, 9)), "out of bounds")
}

func TestConnected_LargeOpen(t *testing.T) {
	row := strings.Repeat("1", 64)
	rows := make([]string, 64)
	for i := range rows {
		rows[i] = row
	}
	g := grid.MustParseRows(rows...)
	assert.True(t, g.Connected(grid.C(0, 0), grid.C(63, 63)))
	assert.Len(t, g.ConnectedComponents(), 1)
}

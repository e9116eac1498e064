// Package dijkstra_test contains unit tests for the grid Dijkstra
// implementation: validation, distances on small maps, MaxDistance and path
// reconstruction.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := grid.MustParseRows("11", "11")

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrNoSource, "missing source has priority over nil grid")

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(grid.C(0, 0)))
	require.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(grid.C(2, 0)))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutside)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDijkstra_OpenGrid(t *testing.T) {
	g := grid.MustParseRows("111", "111", "111")
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.C(0, 0)))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev only with WithReturnPath")

	want := []float64{
		0, 1, 2,
		1, math.Sqrt2, 1 + math.Sqrt2,
		2, 1 + math.Sqrt2, 2 * math.Sqrt2,
	}
	assert.InDeltaSlice(t, want, dist, 1e-12)
}

func TestDijkstra_TerrainCosts(t *testing.T) {
	// Highway strip along the top row, hard cells below it.
	g := grid.MustParseRows(
		"aaaa",
		"2222",
	)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.C(0, 0)))
	require.NoError(t, err)

	assert.InDelta(t, 0.75, dist[g.Index(grid.C(3, 0))], 1e-12, "three highway hops")
	// (0,0)→(0,1): highway+hard straight = (1+2)/2 = 1.5
	assert.InDelta(t, 1.5, dist[g.Index(grid.C(0, 1))], 1e-12)
	// (3,1): the full highway ride then one step down (0.75 + 1.5) beats
	// leaving the highway diagonally at (2,0) (0.5 + 1.5·√2).
	assert.InDelta(t, 2.25, dist[g.Index(grid.C(3, 1))], 1e-12)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := grid.MustParseRows(
		"101",
		"101",
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.C(0, 0)), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[g.Index(grid.C(2, 0))], 1))
	assert.True(t, math.IsInf(dist[g.Index(grid.C(1, 0))], 1), "blocked cells are never entered")
	assert.Equal(t, -1, prev[g.Index(grid.C(2, 1))])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := grid.MustParseRows("11111")
	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(grid.C(0, 0)),
		dijkstra.WithMaxDistance(2),
		dijkstra.WithReturnPath(),
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, math.Inf(1), math.Inf(1)}, dist)
	assert.Equal(t, []int{-1, 0, 1, -1, -1}, prev)
}

// ------------------------------------------------------------------------
// 3. ShortestPath
// ------------------------------------------------------------------------

func TestShortestPath(t *testing.T) {
	g := grid.MustParseRows(
		"1111",
		"0001",
		"1111",
	)
	path, cost, err := dijkstra.ShortestPath(g, grid.C(0, 0), grid.C(0, 2))
	require.NoError(t, err)
	assert.Equal(t, grid.C(0, 0), path[0])
	assert.Equal(t, grid.C(0, 2), path[len(path)-1])
	assert.InDelta(t, grid.PathCost(g, path), cost, 1e-12)
	// Around the wall: 2 straight + 2 diagonals + 2 straight.
	assert.InDelta(t, 4+2*math.Sqrt2, cost, 1e-12)

	_, _, err = dijkstra.ShortestPath(grid.MustParseRows("101"), grid.C(0, 0), grid.C(2, 0))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, _, err = dijkstra.ShortestPath(g, grid.C(0, 0), grid.C(9, 9))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

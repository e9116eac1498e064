package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New / ParseRows
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or unknown inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.Cell
		err   error
	}{
		{"EmptyRows", [][]grid.Cell{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Cell{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.Cell{{'1', '1'}, {'1'}}, grid.ErrNonRectangular},
		{"UnknownCode", [][]grid.Cell{{'1', 'x'}}, grid.ErrUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]grid.Cell{{grid.Unblocked, grid.Unblocked}}
	g, err := grid.New(cells)
	require.NoError(t, err)

	cells[0][1] = grid.Blocked
	assert.Equal(t, grid.Unblocked, g.At(grid.C(1, 0)))
}

func TestParseRows(t *testing.T) {
	g, err := grid.ParseRows([]string{"102", " ab0 "})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 6, g.Size())

	assert.Equal(t, grid.Unblocked, g.At(grid.C(0, 0)))
	assert.Equal(t, grid.Blocked, g.At(grid.C(1, 0)))
	assert.Equal(t, grid.HardToTraverse, g.At(grid.C(2, 0)))
	assert.Equal(t, grid.HighwayUnblocked, g.At(grid.C(0, 1)))
	assert.Equal(t, grid.HighwayHard, g.At(grid.C(1, 1)))
	assert.Equal(t, []string{"102", "ab0"}, g.Rows())

	_, err = grid.ParseRows([]string{"11", "1z"})
	require.ErrorIs(t, err, grid.ErrUnknownCell)
}

//----------------------------------------------------------------------------//
// Cell predicates and coordinates
//----------------------------------------------------------------------------//

func TestCellPredicates(t *testing.T) {
	cases := []struct {
		cell                   grid.Cell
		blocked, hard, highway bool
	}{
		{grid.Blocked, true, false, false},
		{grid.Unblocked, false, false, false},
		{grid.HardToTraverse, false, true, false},
		{grid.HighwayUnblocked, false, false, true},
		{grid.HighwayHard, false, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.cell.String(), func(t *testing.T) {
			assert.Equal(t, tc.blocked, tc.cell.Blocked())
			assert.Equal(t, tc.hard, tc.cell.HardToTraverse())
			assert.Equal(t, tc.highway, tc.cell.Highway())
			// A blocked cell is never a highway.
			assert.False(t, tc.cell.Blocked() && tc.cell.Highway())
		})
	}
}

func TestInBoundsAndAt(t *testing.T) {
	g := grid.MustParseRows("111", "111")

	for _, c := range []grid.Coord{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []grid.Coord{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		assert.Equal(t, grid.Blocked, g.At(c), "out of bounds reads as blocked")
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := grid.MustParseRows("1111", "1111", "1111")
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.C(x, y)
			assert.Equal(t, c, g.Coordinate(g.Index(c)))
		}
	}
	assert.Equal(t, 6, g.Index(grid.C(2, 1)))
}

func TestNeighbors(t *testing.T) {
	g := grid.MustParseRows("111", "101", "111")

	corner := g.Neighbors(grid.C(0, 0), nil)
	assert.ElementsMatch(t, []grid.Coord{{1, 0}, {0, 1}, {1, 1}}, corner)

	center := g.Neighbors(grid.C(1, 1), nil)
	assert.Len(t, center, 8)
	assert.Equal(t, grid.C(0, 0), center[0], "row-scan order starts top-left")
	assert.Equal(t, grid.C(2, 2), center[7])
}

func TestCoordHelpers(t *testing.T) {
	assert.True(t, grid.C(0, 5).Less(grid.C(1, 0)))
	assert.True(t, grid.C(1, 0).Less(grid.C(1, 1)))
	assert.False(t, grid.C(1, 1).Less(grid.C(1, 1)))

	assert.True(t, grid.Adjacent(grid.C(1, 1), grid.C(2, 2)))
	assert.False(t, grid.Adjacent(grid.C(1, 1), grid.C(1, 1)))
	assert.False(t, grid.Adjacent(grid.C(1, 1), grid.C(3, 1)))

	assert.True(t, grid.Diagonal(grid.C(0, 0), grid.C(1, 1)))
	assert.False(t, grid.Diagonal(grid.C(0, 0), grid.C(0, 1)))

	c, err := grid.ParseCoord("3,4")
	require.NoError(t, err)
	assert.Equal(t, grid.C(3, 4), c)
	c, err = grid.ParseCoord(" 7 8 ")
	require.NoError(t, err)
	assert.Equal(t, grid.C(7, 8), c)
	for _, bad := range []string{"", "1", "1,2,3", "a,b", "-1,2"} {
		_, err = grid.ParseCoord(bad)
		assert.Error(t, err, "ParseCoord(%q)", bad)
	}
	assert.Equal(t, "(3,4)", grid.C(3, 4).String())
}

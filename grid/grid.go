package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2-D slice indexed
// cells[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrUnknownCell for a
// value outside the five terrain states.
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	flat := make([]Cell, 0, w*h)
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if _, err := ParseCell(byte(c)); err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
		}
		flat = append(flat, row...)
	}

	return &Grid{Width: w, Height: h, cells: flat}, nil
}

// ParseRows builds a Grid from rows of cell codes, e.g. {"110", "1a0"}.
// Surrounding whitespace on each row is ignored.
func ParseRows(rows []string) (*Grid, error) {
	cells := make([][]Cell, 0, len(rows))
	for y, line := range rows {
		line = strings.TrimSpace(line)
		row := make([]Cell, len(line))
		for x := 0; x < len(line); x++ {
			c, err := ParseCell(line[x])
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			row[x] = c
		}
		cells = append(cells, row)
	}

	return New(cells)
}

// MustParseRows is ParseRows that panics on error. Intended for fixtures.
func MustParseRows(rows ...string) *Grid {
	g, err := ParseRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the cell at c. Out-of-bounds coordinates read as Blocked.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.cells[c.Y*g.Width+c.X]
}

// Size returns the number of cells, Width×Height.
func (g *Grid) Size() int { return len(g.cells) }

// Index maps c to its row-major index y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

// Neighbors appends the in-bounds 8-neighbours of c to buf and returns it.
// Blocked neighbours are included; EdgeCost prices them as +Inf.
func (g *Grid) Neighbors(c Coord, buf []Coord) []Coord {
	for _, d := range neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

// Rows renders the grid back into rows of cell codes.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for _, c := range g.cells[y*g.Width : (y+1)*g.Width] {
			b.WriteByte(byte(c))
		}
		rows[y] = b.String()
	}
	return rows
}

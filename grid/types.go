package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord addresses a single cell. X indexes the column, Y the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Less orders coordinates lexicographically: by X, then by Y.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Adjacent reports whether a and b are distinct 8-neighbours.
func Adjacent(a, b Coord) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return a != b && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// Diagonal reports whether a and b differ in both coordinates.
func Diagonal(a, b Coord) bool {
	return a.X != b.X && a.Y != b.Y
}

// ParseCoord reads "x,y" or "x y" into a Coord.
func ParseCoord(s string) (Coord, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Coord{}, fmt.Errorf("grid: coordinate %q: want \"x,y\"", s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Coord{}, fmt.Errorf("grid: coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Coord{}, fmt.Errorf("grid: coordinate %q: %w", s, err)
	}
	if x < 0 || y < 0 {
		return Coord{}, fmt.Errorf("grid: coordinate %q: negative component", s)
	}

	return Coord{X: x, Y: y}, nil
}

// Cell is a terrain state. Its underlying byte is the map file code.
type Cell byte

const (
	// Blocked cells cannot be entered or left.
	Blocked Cell = '0'
	// Unblocked is regular terrain.
	Unblocked Cell = '1'
	// HardToTraverse doubles the cost contribution of the cell.
	HardToTraverse Cell = '2'
	// HighwayUnblocked is regular terrain on a highway.
	HighwayUnblocked Cell = 'a'
	// HighwayHard is hard-to-traverse terrain on a highway.
	HighwayHard Cell = 'b'
)

// ParseCell converts a map code into a Cell.
func ParseCell(code byte) (Cell, error) {
	switch c := Cell(code); c {
	case Blocked, Unblocked, HardToTraverse, HighwayUnblocked, HighwayHard:
		return c, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCell, code)
	}
}

// Blocked reports whether the cell is impassable.
func (c Cell) Blocked() bool { return c == Blocked }

// HardToTraverse reports whether the cell is hard to traverse (highway or not).
func (c Cell) HardToTraverse() bool { return c == HardToTraverse || c == HighwayHard }

// Highway reports whether the cell lies on a highway. Blocked cells never do.
func (c Cell) Highway() bool { return c == HighwayUnblocked || c == HighwayHard }

// String returns the single-character map code.
func (c Cell) String() string { return string(rune(c)) }

// neighborOffsets lists the 8-neighbourhood in row-scan order:
// the row above left to right, the same row, then the row below.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is an immutable rows×cols terrain snapshot.
// Width is the number of columns, Height the number of rows.
// cells is stored row-major: cells[y*Width+x].
type Grid struct {
	Width, Height int
	cells         []Cell
}

// Map is a decoded map file: the grid together with the endpoints and the
// hard-region centres recorded by the generator.
type Map struct {
	Grid        *Grid
	Start, Goal Coord
	HardRegions []Coord
}

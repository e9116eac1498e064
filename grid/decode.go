package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Decode reads a map in the generator's plain-text layout:
//
//	sx sy          start
//	gx gy          goal
//	x y            zero or more hard-region centres (the generator writes 8)
//	<row 0>        one row of cell codes per line
//	<row 1>
//	...
//
// Blank lines are ignored. Start and goal must lie inside the grid.
// Decode only reads; writing maps back belongs to the generator.
func Decode(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		header []Coord
		rows   []string
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if len(rows) == 0 && strings.ContainsAny(line, " \t") {
			c, err := ParseCoord(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedMap, lineNo, err)
			}
			header = append(header, c)
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading map: %w", err)
	}

	if len(header) < 2 {
		return nil, fmt.Errorf("%w: missing start/goal header", ErrMalformedMap)
	}
	g, err := ParseRows(rows)
	if err != nil {
		return nil, err
	}

	m := &Map{
		Grid:        g,
		Start:       header[0],
		Goal:        header[1],
		HardRegions: header[2:],
	}
	if !g.InBounds(m.Start) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d grid", ErrMalformedMap, m.Start, g.Width, g.Height)
	}
	if !g.InBounds(m.Goal) {
		return nil, fmt.Errorf("%w: goal %v outside %dx%d grid", ErrMalformedMap, m.Goal, g.Width, g.Height)
	}

	return m, nil
}

// Package pathexport renders search results as GeoJSON.
//
// Grid cells are mapped to planar coordinates by a Projection: cell (x, y)
// becomes the centre of a CellSize square whose corner sits at Origin. With
// FlipY set, rows grow downwards (south), which matches how map files are
// drawn.
package pathexport

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mhastar"
)

// Projection maps grid coordinates onto the plane.
type Projection struct {
	Origin   orb.Point
	CellSize float64
	FlipY    bool
}

// DefaultProjection places cell (x, y) at (x+0.5, y+0.5).
func DefaultProjection() Projection {
	return Projection{CellSize: 1}
}

// corner returns the projected top-left corner of cell (x, y), where x and y
// may be fractional.
func (p Projection) corner(x, y float64) orb.Point {
	py := p.Origin[1] + y*p.CellSize
	if p.FlipY {
		py = p.Origin[1] - y*p.CellSize
	}
	return orb.Point{p.Origin[0] + x*p.CellSize, py}
}

// Point returns the centre of cell c.
func (p Projection) Point(c grid.Coord) orb.Point {
	return p.corner(float64(c.X)+0.5, float64(c.Y)+0.5)
}

// Cell returns the square footprint of c as a closed ring.
func (p Projection) Cell(c grid.Coord) orb.Polygon {
	x, y := float64(c.X), float64(c.Y)
	return orb.Polygon{orb.Ring{
		p.corner(x, y),
		p.corner(x+1, y),
		p.corner(x+1, y+1),
		p.corner(x, y+1),
		p.corner(x, y),
	}}
}

// LineString projects path through the cell centres.
func (p Projection) LineString(path []grid.Coord) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = p.Point(c)
	}
	return ls
}

// Obstacles returns one square per blocked cell of g, in row-scan order.
func (p Projection) Obstacles(g *grid.Grid) orb.MultiPolygon {
	var mp orb.MultiPolygon
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.C(x, y)
			if g.At(c).Blocked() {
				mp = append(mp, p.Cell(c))
			}
		}
	}
	return mp
}

// Options configures FeatureCollection.
type Options struct {
	Projection Projection
	Obstacles  bool
}

// Option represents a functional option for FeatureCollection.
type Option func(*Options)

// WithProjection overrides DefaultProjection.
func WithProjection(p Projection) Option {
	return func(o *Options) { o.Projection = p }
}

// WithObstacles adds a MultiPolygon feature covering every blocked cell.
func WithObstacles() Option {
	return func(o *Options) { o.Obstacles = true }
}

// Feature roles, stored in the "role" property.
const (
	RolePath      = "path"
	RoleStart     = "start"
	RoleGoal      = "goal"
	RoleObstacles = "obstacles"
)

// FeatureCollection describes res on g: the path as a LineString with the
// search diagnostics as properties, the start and goal as Points, and
// optionally the blocked cells.
func FeatureCollection(g *grid.Grid, res *mhastar.Result, opts ...Option) *geojson.FeatureCollection {
	cfg := Options{Projection: DefaultProjection()}
	for _, opt := range opts {
		opt(&cfg)
	}
	proj := cfg.Projection
	fc := geojson.NewFeatureCollection()

	ls := proj.LineString(res.Path)
	path := geojson.NewFeature(ls)
	path.Properties["role"] = RolePath
	path.Properties["cost"] = res.Cost
	path.Properties["lane"] = res.Lane
	path.Properties["heuristic"] = res.Heuristic.String()
	path.Properties["expansions"] = res.Expansions
	path.Properties["cells"] = len(res.Path)
	path.Properties["length"] = planar.Length(ls)
	fc.Append(path)

	if n := len(res.Path); n > 0 {
		for _, end := range []struct {
			role string
			c    grid.Coord
		}{{RoleStart, res.Path[0]}, {RoleGoal, res.Path[n-1]}} {
			f := geojson.NewFeature(proj.Point(end.c))
			f.Properties["role"] = end.role
			f.Properties["cell"] = end.c.String()
			fc.Append(f)
		}
	}

	if cfg.Obstacles {
		f := geojson.NewFeature(proj.Obstacles(g))
		f.Properties["role"] = RoleObstacles
		fc.Append(f)
	}
	return fc
}

// Marshal encodes FeatureCollection(g, res, opts...) as JSON.
func Marshal(g *grid.Grid, res *mhastar.Result, opts ...Option) ([]byte, error) {
	return FeatureCollection(g, res, opts...).MarshalJSON()
}

package polygon

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/hatchfill"
)

// Region is a set of closed polygons under the even-odd rule.
type Region struct {
	poly polyclip.Polygon
}

// NewRegion creates a region from closed polygons.
func NewRegion(pgs ...*Polygon) *Region {
	r := &Region{}
	for _, pg := range pgs {
		r.Add(pg)
	}
	return r
}

// Add appends a polygon. Open polygons and polygons with fewer than three
// knots are ignored.
func (r *Region) Add(pg *Polygon) {
	if pg == nil || !pg.cycle || pg.N() < 3 {
		L().Debugf("region: ignoring degenerate polygon")
		return
	}
	r.poly.Add(append(polyclip.Contour(nil), pg.contour...))
}

// Len is the number of polygons.
func (r *Region) Len() int {
	return len(r.poly)
}

// Polygons returns copies of the region's polygons.
func (r *Region) Polygons() []*Polygon {
	pgs := make([]*Polygon, len(r.poly))
	for i, c := range r.poly {
		pgs[i] = &Polygon{contour: append(polyclip.Contour(nil), c...), cycle: true}
	}
	return pgs
}

// NumVertices counts the knots of all polygons.
func (r *Region) NumVertices() int {
	return r.poly.NumVertices()
}

// IsEmpty is true for a region without polygons.
func (r *Region) IsEmpty() bool {
	return len(r.poly) == 0
}

// BoundingBox of all polygons.
func (r *Region) BoundingBox() hatchfill.Box {
	if r.IsEmpty() {
		return hatchfill.EmptyBox()
	}
	return box(r.poly.BoundingBox())
}

// Contains checks p under the even-odd rule.
func (r *Region) Contains(p hatchfill.Pair) bool {
	inside := false
	for _, c := range r.poly {
		if c.Contains(point(p)) {
			inside = !inside
		}
	}
	return inside
}

// Clip returns the part of the region within a rectangle.
func (r *Region) Clip(b hatchfill.Box) *Region {
	if r.IsEmpty() || b.IsEmpty() {
		return &Region{}
	}
	clip := polyclip.Polygon{Box(hatchfill.P(b.Min.X(), b.Max.Y()), hatchfill.P(b.Max.X(), b.Min.Y())).contour}
	return &Region{poly: r.poly.Construct(polyclip.INTERSECTION, clip)}
}

package hatch

import (
	"github.com/npillmayer/hatchfill/entity"
	"github.com/npillmayer/hatchfill/polygon"
)

// SolidRegion assembles the fill region of the boundary loops. Edges are
// approximated by polylines and collected until the polyline returns to its
// first point. Closed primitives are polygons of their own.
func (h *Hatch) SolidRegion() *polygon.Region {
	region := polygon.NewRegion()
	for _, l := range h.loops {
		var pg *polygon.Polygon
		var first entity.Entity
		for _, e := range l.Edges() {
			pts := entity.Approximate(e)
			if entity.IsClosed(e) {
				region.Add(polygon.FromPoints(pts))
				continue
			}
			if pg == nil {
				pg, first = polygon.NullPolygon(), e
			}
			for _, p := range pts {
				pg.Knot(p)
			}
			if pts[len(pts)-1].EqualTol(first.StartPoint(), entity.ContourTolerance) {
				region.Add(pg.Cycle())
				pg = nil
			}
		}
		if pg != nil {
			tracer().Debugf("solid fill: dropping open polyline of %d knots", pg.N())
		}
	}
	return region
}

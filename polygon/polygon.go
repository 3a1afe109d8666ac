/*
Package polygon implements closed polygons and even-odd regions made of them.

Polygons are built knot by knot:

	pg := NullPolygon().Knot(hatchfill.P(0, 0)).Knot(hatchfill.P(1, 3)).Knot(hatchfill.P(3, 0)).Cycle()

A Region collects polygons and interprets them under the even-odd rule, so
that nested polygons cut holes. Storage and clipping are delegated to
github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'hatchfill.polygon'.
func L() tracing.Trace {
	return tracing.Select("hatchfill.polygon")
}

// Polygon is a sequence of knots, optionally closed to a cycle.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon returns an empty polygon.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. A knot equal to its predecessor is skipped.
func (pg *Polygon) Knot(p hatchfill.Pair) *Polygon {
	if n := len(pg.contour); n > 0 && pair(pg.contour[n-1]).Equal(p) {
		return pg
	}
	pg.contour.Add(point(p))
	return pg
}

// Cycle closes the polygon. A trailing knot equal to the first one is
// removed.
func (pg *Polygon) Cycle() *Polygon {
	if n := len(pg.contour); n > 1 && pair(pg.contour[n-1]).Equal(pair(pg.contour[0])) {
		pg.contour = pg.contour[:n-1]
	}
	pg.cycle = true
	return pg
}

// FromPoints creates a polygon from a polyline. If the polyline's last point
// equals its first, the polygon is a cycle.
func FromPoints(pts []hatchfill.Pair) *Polygon {
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	if len(pts) > 2 && pts[0].Equal(pts[len(pts)-1]) {
		pg.Cycle()
	}
	return pg
}

// Box creates a rectangle from its top-left and bottom-right corners.
func Box(topleft, bottomright hatchfill.Pair) *Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(hatchfill.P(topleft.X(), bottomright.Y())).
		Knot(bottomright).
		Knot(hatchfill.P(bottomright.X(), topleft.Y())).
		Cycle()
}

// IsCycle is true for closed polygons.
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N is the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Z returns knot i. Indices wrap around for cycles.
func (pg *Polygon) Z(i int) hatchfill.Pair {
	n := len(pg.contour)
	if pg.cycle && n > 0 {
		i = ((i % n) + n) % n
	}
	return pair(pg.contour[i])
}

// Contains checks if p is inside the closed polygon, using the even-odd rule.
// Open polygons contain no points.
func (pg *Polygon) Contains(p hatchfill.Pair) bool {
	if !pg.cycle || len(pg.contour) < 3 {
		return false
	}
	return pg.contour.Contains(point(p))
}

// SignedArea is positive for counter-clockwise cycles.
func (pg *Polygon) SignedArea() float64 {
	n := len(pg.contour)
	if !pg.cycle || n < 3 {
		return 0
	}
	a := 0.0
	for i := 0; i < n; i++ {
		p, q := pg.contour[i], pg.contour[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// BoundingBox of all knots.
func (pg *Polygon) BoundingBox() hatchfill.Box {
	if len(pg.contour) == 0 {
		return hatchfill.EmptyBox()
	}
	return box(pg.contour.BoundingBox())
}

// AsString returns a path-like notation of the polygon.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, pt := range pg.contour {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", pt.X, pt.Y)
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func point(p hatchfill.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) hatchfill.Pair {
	return hatchfill.P(p.X, p.Y)
}

func box(r polyclip.Rectangle) hatchfill.Box {
	return hatchfill.BoxOf(pair(r.Min), pair(r.Max))
}

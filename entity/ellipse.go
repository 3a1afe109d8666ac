package entity

import (
	"github.com/npillmayer/hatchfill"
)

// Ellipse is an elliptical arc. Major is the vector from the center to the
// end of the major axis, Ratio is minor/major. Angle1 and Angle2 are
// eccentric angles measured from the major axis. Equal angles denote a full
// ellipse.
type Ellipse struct {
	attributed
	Center   hatchfill.Pair
	Major    hatchfill.Pair
	Ratio    float64
	Angle1   float64
	Angle2   float64
	Reversed bool
}

// NewEllipse creates an elliptical arc.
func NewEllipse(center, major hatchfill.Pair, ratio, a1, a2 float64, reversed bool) *Ellipse {
	return &Ellipse{Center: center, Major: major, Ratio: ratio, Angle1: a1, Angle2: a2, Reversed: reversed}
}

func (e *Ellipse) minor() hatchfill.Pair {
	return e.Major.Perp().Scaled(e.Ratio)
}

func (e *Ellipse) conic() conic {
	return conic{
		c:     e.Center,
		major: e.Major,
		minor: e.minor(),
		t0:    e.Angle1,
		sweep: sweepOf(e.Angle1, e.Angle2, e.Reversed),
	}
}

func (e *Ellipse) Kind() Kind { return EllipseKind }
func (e *Ellipse) StartPoint() hatchfill.Pair { return e.PointAtAngle(e.Angle1) }
func (e *Ellipse) EndPoint() hatchfill.Pair { return e.PointAtAngle(e.Angle2) }
func (e *Ellipse) CenterPoint() hatchfill.Pair { return e.Center }
func (e *Ellipse) IsReversed() bool { return e.Reversed }
func (e *Ellipse) StartAngle() float64 { return e.Angle1 }
func (e *Ellipse) AngleLength() float64 { return e.conic().extent() }
func (e *Ellipse) Length() float64 { return e.conic().length() }
func (e *Ellipse) AngleAt(p hatchfill.Pair) float64 { return e.conic().param(p) }
func (e *Ellipse) BoundingBox() hatchfill.Box { return e.conic().boundingBox() }
func (e *Ellipse) PointAtAngle(a float64) hatchfill.Pair {
	return e.conic().at(a)
}

// MiddlePoint is the point halfway along the arc length.
func (e *Ellipse) MiddlePoint() hatchfill.Pair {
	return e.PointAtDistance(e.Length() / 2)
}

func (e *Ellipse) PointAtDistance(d float64) hatchfill.Pair {
	k := e.conic()
	return k.at(k.paramAt(k.offsetAtDistance(d)))
}

func (e *Ellipse) NearestPoint(p hatchfill.Pair) hatchfill.Pair {
	return e.conic().nearest(p)
}

func (e *Ellipse) DistanceToPoint(p hatchfill.Pair) float64 {
	return e.NearestPoint(p).Dist(p)
}

func (e *Ellipse) SubArc(a1, a2 float64) Entity {
	sub := NewEllipse(e.Center, e.Major, e.Ratio, a1, a2, e.Reversed)
	sub.attr = e.attr
	return sub
}

func (e *Ellipse) Move(v hatchfill.Pair) {
	e.Center += v
}

// Rotate turns center and axes; eccentric angles are relative to the major
// axis and stay unchanged.
func (e *Ellipse) Rotate(center hatchfill.Pair, angle float64) {
	e.Center = e.Center.RotatedAround(center, angle)
	e.Major = e.Major.Rotated(angle)
}

func (e *Ellipse) Scale(center hatchfill.Pair, factor float64) {
	e.Center = e.Center.ScaledAround(center, factor)
	e.Major = e.Major.Scaled(factor)
}

// Mirror reflects the ellipse. The reflected minor axis points the other way,
// so eccentric angles change sign and the direction sense flips.
func (e *Ellipse) Mirror(axis1, axis2 hatchfill.Pair) {
	e.Center = e.Center.Mirrored(axis1, axis2)
	e.Major = e.Major.Mirrored(hatchfill.Origin, axis2-axis1)
	e.Angle1 = hatchfill.NormAngle(-e.Angle1)
	e.Angle2 = hatchfill.NormAngle(-e.Angle2)
	e.Reversed = !e.Reversed
}

func (e *Ellipse) Reverse() {
	e.Angle1, e.Angle2 = e.Angle2, e.Angle1
	e.Reversed = !e.Reversed
}

func (e *Ellipse) Clone() Entity {
	c := *e
	return &c
}

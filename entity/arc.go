package entity

import (
	"math"

	"github.com/npillmayer/hatchfill"
)

// Arc is a circular arc from Angle1 to Angle2. It runs counter-clockwise
// unless Reversed is set. Equal angles denote a full turn.
type Arc struct {
	attributed
	Center   hatchfill.Pair
	Radius   float64
	Angle1   float64
	Angle2   float64
	Reversed bool
}

// NewArc creates a circular arc.
func NewArc(center hatchfill.Pair, radius, a1, a2 float64, reversed bool) *Arc {
	return &Arc{Center: center, Radius: radius, Angle1: a1, Angle2: a2, Reversed: reversed}
}

func (a *Arc) conic() conic {
	return conic{
		c:     a.Center,
		major: hatchfill.P(a.Radius, 0),
		minor: hatchfill.P(0, a.Radius),
		t0:    a.Angle1,
		sweep: sweepOf(a.Angle1, a.Angle2, a.Reversed),
	}
}

func (a *Arc) Kind() Kind { return ArcKind }
func (a *Arc) StartPoint() hatchfill.Pair { return a.PointAtAngle(a.Angle1) }
func (a *Arc) EndPoint() hatchfill.Pair { return a.PointAtAngle(a.Angle2) }
func (a *Arc) CenterPoint() hatchfill.Pair { return a.Center }
func (a *Arc) IsReversed() bool { return a.Reversed }
func (a *Arc) StartAngle() float64 { return a.Angle1 }
func (a *Arc) AngleLength() float64 { return a.conic().extent() }
func (a *Arc) Length() float64 { return a.Radius * a.AngleLength() }
func (a *Arc) AngleAt(p hatchfill.Pair) float64 { return hatchfill.NormAngle(a.Center.AngleTo(p)) }
func (a *Arc) BoundingBox() hatchfill.Box { return a.conic().boundingBox() }
func (a *Arc) NearestPoint(p hatchfill.Pair) hatchfill.Pair { return a.conic().nearest(p) }

func (a *Arc) PointAtAngle(angle float64) hatchfill.Pair {
	return a.Center + hatchfill.Polar(a.Radius, angle)
}

func (a *Arc) MiddlePoint() hatchfill.Pair {
	k := a.conic()
	return k.at(k.paramAt(k.extent() / 2))
}

func (a *Arc) PointAtDistance(d float64) hatchfill.Pair {
	k := a.conic()
	return k.at(k.paramAt(d / a.Radius))
}

func (a *Arc) DistanceToPoint(p hatchfill.Pair) float64 {
	return a.NearestPoint(p).Dist(p)
}

func (a *Arc) SubArc(a1, a2 float64) Entity {
	sub := NewArc(a.Center, a.Radius, a1, a2, a.Reversed)
	sub.attr = a.attr
	return sub
}

func (a *Arc) Move(v hatchfill.Pair) {
	a.Center += v
}

func (a *Arc) Rotate(center hatchfill.Pair, angle float64) {
	a.Center = a.Center.RotatedAround(center, angle)
	a.Angle1 = hatchfill.NormAngle(a.Angle1 + angle)
	a.Angle2 = hatchfill.NormAngle(a.Angle2 + angle)
}

func (a *Arc) Scale(center hatchfill.Pair, factor float64) {
	a.Center = a.Center.ScaledAround(center, factor)
	a.Radius *= math.Abs(factor)
	if factor < 0 {
		a.Angle1 = hatchfill.NormAngle(a.Angle1 + math.Pi)
		a.Angle2 = hatchfill.NormAngle(a.Angle2 + math.Pi)
	}
}

// Mirror reflects the arc, which flips its direction sense.
func (a *Arc) Mirror(axis1, axis2 hatchfill.Pair) {
	axis := axis1.AngleTo(axis2)
	a.Center = a.Center.Mirrored(axis1, axis2)
	a.Angle1 = hatchfill.NormAngle(2*axis - a.Angle1)
	a.Angle2 = hatchfill.NormAngle(2*axis - a.Angle2)
	a.Reversed = !a.Reversed
}

func (a *Arc) Reverse() {
	a.Angle1, a.Angle2 = a.Angle2, a.Angle1
	a.Reversed = !a.Reversed
}

func (a *Arc) Clone() Entity {
	c := *a
	return &c
}

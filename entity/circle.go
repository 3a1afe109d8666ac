package entity

import (
	"math"

	"github.com/npillmayer/hatchfill"
)

// Circle is a full circle. Its start and end point is the point at angle 0.
type Circle struct {
	attributed
	Center   hatchfill.Pair
	Radius   float64
	Reversed bool
}

// NewCircle creates a counter-clockwise circle.
func NewCircle(center hatchfill.Pair, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius}
}

func (c *Circle) conic() conic {
	sweep := hatchfill.TwoPi
	if c.Reversed {
		sweep = -sweep
	}
	return conic{
		c:     c.Center,
		major: hatchfill.P(c.Radius, 0),
		minor: hatchfill.P(0, c.Radius),
		sweep: sweep,
	}
}

func (c *Circle) Kind() Kind { return CircleKind }
func (c *Circle) StartPoint() hatchfill.Pair { return c.PointAtAngle(0) }
func (c *Circle) EndPoint() hatchfill.Pair { return c.PointAtAngle(0) }
func (c *Circle) CenterPoint() hatchfill.Pair { return c.Center }
func (c *Circle) IsReversed() bool { return c.Reversed }
func (c *Circle) StartAngle() float64 { return 0 }
func (c *Circle) AngleLength() float64 { return hatchfill.TwoPi }
func (c *Circle) Length() float64 { return hatchfill.TwoPi * c.Radius }
func (c *Circle) MiddlePoint() hatchfill.Pair { return c.PointAtAngle(math.Pi) }
func (c *Circle) AngleAt(p hatchfill.Pair) float64 { return hatchfill.NormAngle(c.Center.AngleTo(p)) }
func (c *Circle) BoundingBox() hatchfill.Box {
	r := hatchfill.P(c.Radius, c.Radius)
	return hatchfill.BoxOf(c.Center-r, c.Center+r)
}

func (c *Circle) PointAtAngle(angle float64) hatchfill.Pair {
	return c.Center + hatchfill.Polar(c.Radius, angle)
}

func (c *Circle) PointAtDistance(d float64) hatchfill.Pair {
	k := c.conic()
	return k.at(k.paramAt(d / c.Radius))
}

func (c *Circle) NearestPoint(p hatchfill.Pair) hatchfill.Pair {
	return c.conic().nearest(p)
}

func (c *Circle) DistanceToPoint(p hatchfill.Pair) float64 {
	return math.Abs(c.Center.Dist(p) - c.Radius)
}

// SubArc cuts an arc out of the circle.
func (c *Circle) SubArc(a1, a2 float64) Entity {
	sub := NewArc(c.Center, c.Radius, a1, a2, c.Reversed)
	sub.attr = c.attr
	return sub
}

func (c *Circle) Move(v hatchfill.Pair) {
	c.Center += v
}

func (c *Circle) Rotate(center hatchfill.Pair, angle float64) {
	c.Center = c.Center.RotatedAround(center, angle)
}

func (c *Circle) Scale(center hatchfill.Pair, factor float64) {
	c.Center = c.Center.ScaledAround(center, factor)
	c.Radius *= math.Abs(factor)
}

func (c *Circle) Mirror(axis1, axis2 hatchfill.Pair) {
	c.Center = c.Center.Mirrored(axis1, axis2)
	c.Reversed = !c.Reversed
}

func (c *Circle) Reverse() {
	c.Reversed = !c.Reversed
}

func (c *Circle) Clone() Entity {
	cl := *c
	return &cl
}

// Package entity implements the curve primitives a hatch boundary is made of:
// line segments, circular arcs, full circles and elliptical arcs. It offers
// the geometric services the hatch engine relies on: boundary loops and their
// optimization into closed cycles, curve-curve intersection, point-in-region
// classification, nearest points, and area line integrals.
//
// The set of primitive kinds is closed. Entity is a sealed interface, and
// algorithms operating on entities switch over the concrete types.
package entity

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hatchfill.entity'
func tracer() tracing.Trace {
	return tracing.Select("hatchfill.entity")
}

// Kind tags the concrete type of a curve primitive.
type Kind int8

// Primitive kinds.
const (
	LineKind Kind = iota + 1
	ArcKind
	CircleKind
	EllipseKind
)

func (k Kind) String() string {
	switch k {
	case LineKind:
		return "line"
	case ArcKind:
		return "arc"
	case CircleKind:
		return "circle"
	case EllipseKind:
		return "ellipse"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Pen describes how an entity is stroked.
type Pen struct {
	Color color.RGBA
	Width float64 // in drawing units; 0 means thinnest possible
}

// Attributes are the drawing attributes every entity carries.
type Attributes struct {
	Pen   Pen
	Layer string
}

// Entity is a curve primitive. Implementations are *Line, *Arc, *Circle and
// *Ellipse; no other implementations exist.
type Entity interface {
	Kind() Kind
	StartPoint() hatchfill.Pair
	EndPoint() hatchfill.Pair
	// CenterPoint is the center of curved kinds and the middle point of a line.
	CenterPoint() hatchfill.Pair
	// IsReversed reports the direction sense of curved kinds (true for
	// clockwise). Lines are never reversed.
	IsReversed() bool
	Length() float64
	MiddlePoint() hatchfill.Pair
	// PointAtDistance returns the point at distance d from the start point,
	// measured along the curve.
	PointAtDistance(d float64) hatchfill.Pair
	NearestPoint(p hatchfill.Pair) hatchfill.Pair
	DistanceToPoint(p hatchfill.Pair) float64
	BoundingBox() hatchfill.Box
	Move(v hatchfill.Pair)
	Rotate(center hatchfill.Pair, angle float64)
	Scale(center hatchfill.Pair, factor float64)
	Mirror(axis1, axis2 hatchfill.Pair)
	Reverse()
	Clone() Entity
	Attributes() Attributes
	SetAttributes(a Attributes)
	sealed()
}

// Curved is implemented by the curved kinds Arc, Circle and Ellipse.
// Angles are polar angles for circular kinds and eccentric (parametric)
// angles for ellipses.
type Curved interface {
	Entity
	StartAngle() float64
	// AngleLength is the positive angular extent, measured in the entity's
	// direction sense; 2π for full turns.
	AngleLength() float64
	AngleAt(p hatchfill.Pair) float64
	PointAtAngle(a float64) hatchfill.Pair
	// SubArc returns the part between angles a1 and a2, sharing center,
	// radii and direction sense.
	SubArc(a1, a2 float64) Entity
	conic() conic
}

type attributed struct {
	attr Attributes
}

func (a *attributed) Attributes() Attributes {
	return a.attr
}

func (a *attributed) SetAttributes(attr Attributes) {
	a.attr = attr
}

func (a *attributed) sealed() {}

// IsClosed is true for primitives which form a closed curve on their own:
// circles, and arcs or ellipses covering a full turn.
func IsClosed(e Entity) bool {
	switch x := e.(type) {
	case *Circle:
		return true
	case *Arc:
		return x.conic().isFull()
	case *Ellipse:
		return x.conic().isFull()
	}
	return false
}

// Describe returns a short debugging representation of an entity.
func Describe(e Entity) string {
	switch x := e.(type) {
	case *Line:
		return fmt.Sprintf("line %v-%v", x.Start, x.End)
	case *Arc:
		return fmt.Sprintf("arc c=%v r=%g %.4g..%.4g rev=%v", x.Center, x.Radius, x.Angle1, x.Angle2, x.Reversed)
	case *Circle:
		return fmt.Sprintf("circle c=%v r=%g", x.Center, x.Radius)
	case *Ellipse:
		return fmt.Sprintf("ellipse c=%v M=%v ratio=%g %.4g..%.4g rev=%v", x.Center, x.Major, x.Ratio,
			x.Angle1, x.Angle2, x.Reversed)
	}
	return "<nil>"
}

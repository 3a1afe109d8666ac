/*
Package hatchfill implements the geometric basics for filling closed planar
boundaries with hatch patterns: points, affine transformations, boxes and the
numeric tolerance policy shared by all sub-packages.

Sub-packages:

	entity   curve primitives, boundary loops, intersection and containment
	pattern  hatch pattern templates and a pattern library
	polygon  closed polygons and fill regions
	render   render targets
	hatch    the hatch entity and its update pipeline

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hatchfill

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hatchfill'
func tracer() tracing.Trace {
	return tracing.Select("hatchfill")
}

// === Numeric Policy ========================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
const Deg2Rad float64 = math.Pi / 180

// TwoPi is a full turn in radians.
const TwoPi float64 = 2 * math.Pi

// Epsilon : lengths and coordinate differences below ε are considered 0.
// It is the linear tolerance for point equality throughout the module.
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// NormAngle reduces an angle to [0, 2π).
func NormAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleDiff is the counter-clockwise distance from angle a1 to angle a2,
// reduced to [0, 2π).
func AngleDiff(a1, a2 float64) float64 {
	return NormAngle(a2 - a1)
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector, stored as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Polar creates a pair from a magnitude and an angle (radians).
func Polar(r, theta float64) Pair {
	return Pair(cmplx.Rect(r, theta))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsValid is false if either coordinate is NaN or infinite.
func (p Pair) IsValid() bool {
	return !cmplx.IsNaN(p.C()) && !cmplx.IsInf(p.C())
}

// Magnitude is the length of p, interpreted as a vector.
func (p Pair) Magnitude() float64 {
	return cmplx.Abs(p.C())
}

// Dist is the euclidian distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return cmplx.Abs((q - p).C())
}

// Angle is the direction of p, interpreted as a vector, in (-π, π].
func (p Pair) Angle() float64 {
	return cmplx.Phase(p.C())
}

// AngleTo is the direction of the vector from p to q.
func (p Pair) AngleTo(q Pair) float64 {
	return (q - p).Angle()
}

// Dot is the scalar product p·q.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross is the z-component of the vector product p×q.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Unit returns p scaled to length 1. The null vector stays null.
func (p Pair) Unit() Pair {
	m := p.Magnitude()
	if m == 0 {
		return p
	}
	return p / Pair(complex(m, 0))
}

// Perp returns p rotated by 90° counter-clockwise.
func (p Pair) Perp() Pair {
	return P(-p.Y(), p.X())
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Pair) Lerp(q Pair, t float64) Pair {
	return p + (q-p)*Pair(complex(t, 0))
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return p.EqualTol(p2, Epsilon)
}

// EqualTol compares two pairs within a given distance.
func (p Pair) EqualTol(p2 Pair, tol float64) bool {
	return p.Dist(p2) <= tol
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// ScaledAround returns a new pair scaled by factor a with center c.
func (p Pair) ScaledAround(c Pair, a float64) Pair {
	return c + (p - c).Scaled(a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return p * Pair(cmplx.Rect(1, theta))
}

// RotatedAround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) RotatedAround(v Pair, theta float64) Pair {
	return (p - v).Rotated(theta) + v
}

// Mirrored returns the reflection of p at the axis through a1 and a2.
// If a1 and a2 coincide, p is returned unchanged.
func (p Pair) Mirrored(a1, a2 Pair) Pair {
	d := (a2 - a1).Unit()
	if d == 0 {
		tracer().Errorf("mirror axis is degenerate at %v", a1)
		return p
	}
	v := p - a1
	along := d.Scaled(v.Dot(d))
	return a1 + along.Scaled(2) - v
}

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows, used for
// transforming pairs.
type AT [9]float64

func (m *AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	var m AT
	m.set(0, 0, 1)
	m.set(1, 1, 1)
	m.set(2, 2, 1)
	return m
}

// Translation transform. Translate a point by v.
func Translation(v Pair) AT {
	m := Identity()
	m.set(0, 2, v.X())
	m.set(1, 2, v.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := Identity()
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	return m
}

// Scaling transform, scaling x and y independently around the origin.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformation to a new one: the result applies m first,
// then n. Returns a new transformation without changing the arguments.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			s := 0.0
			for k := 0; k < 3; k++ {
				s += n.get(row, k) * m.get(k, col)
			}
			o.set(row, col, s)
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}

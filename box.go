package hatchfill

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box. The zero value is not empty; use
// EmptyBox to start accumulating points.
type Box struct {
	Min, Max Pair
}

// EmptyBox returns a box which contains nothing. Extending it with a point
// yields the degenerate box of that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{Min: P(inf, inf), Max: P(-inf, -inf)}
}

// BoxOf returns the smallest box containing all the given points.
func BoxOf(pts ...Pair) Box {
	b := EmptyBox()
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// IsEmpty is true for a box which does not contain any point.
func (b Box) IsEmpty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y()
}

// Extend returns b grown to include p.
func (b Box) Extend(p Pair) Box {
	return Box{
		Min: P(math.Min(b.Min.X(), p.X()), math.Min(b.Min.Y(), p.Y())),
		Max: P(math.Max(b.Max.X(), p.X()), math.Max(b.Max.Y(), p.Y())),
	}
}

// Union returns the smallest box containing b and c.
func (b Box) Union(c Box) Box {
	if c.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return c
	}
	return b.Extend(c.Min).Extend(c.Max)
}

// Width of the box, 0 for empty boxes.
func (b Box) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.X() - b.Min.X()
}

// Height of the box, 0 for empty boxes.
func (b Box) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Y() - b.Min.Y()
}

// Size returns (width, height) as a pair.
func (b Box) Size() Pair {
	return P(b.Width(), b.Height())
}

// Center of the box.
func (b Box) Center() Pair {
	return b.Min.Lerp(b.Max, 0.5)
}

// Contains checks if p lies within b, borders included.
func (b Box) Contains(p Pair) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
}

func (b Box) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%v..%v]", b.Min, b.Max)
}

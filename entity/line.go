package entity

import (
	"math"

	"github.com/npillmayer/hatchfill"
)

// Line is a straight line segment from Start to End.
type Line struct {
	attributed
	Start, End hatchfill.Pair
}

// NewLine creates a line segment.
func NewLine(start, end hatchfill.Pair) *Line {
	return &Line{Start: start, End: end}
}

func (l *Line) Kind() Kind { return LineKind }
func (l *Line) StartPoint() hatchfill.Pair { return l.Start }
func (l *Line) EndPoint() hatchfill.Pair { return l.End }
func (l *Line) CenterPoint() hatchfill.Pair { return l.MiddlePoint() }
func (l *Line) IsReversed() bool { return false }
func (l *Line) Length() float64 { return l.Start.Dist(l.End) }
func (l *Line) MiddlePoint() hatchfill.Pair { return l.Start.Lerp(l.End, 0.5) }
func (l *Line) BoundingBox() hatchfill.Box { return hatchfill.BoxOf(l.Start, l.End) }
func (l *Line) Direction() hatchfill.Pair { return l.End - l.Start }
func (l *Line) DistanceToPoint(p hatchfill.Pair) float64 {
	return l.NearestPoint(p).Dist(p)
}

// PointAtDistance walks d units from the start point towards the end
// point. d is not clipped to the segment.
func (l *Line) PointAtDistance(d float64) hatchfill.Pair {
	return l.Start + l.Direction().Unit().Scaled(d)
}

// NearestPoint is the orthogonal projection of p, clamped to the segment.
func (l *Line) NearestPoint(p hatchfill.Pair) hatchfill.Pair {
	d := l.Direction()
	len2 := d.Dot(d)
	if len2 == 0 {
		return l.Start
	}
	t := (p - l.Start).Dot(d) / len2
	t = math.Max(0, math.Min(1, t))
	return l.Start.Lerp(l.End, t)
}

func (l *Line) Move(v hatchfill.Pair) {
	l.Start, l.End = l.Start.Shifted(v), l.End.Shifted(v)
}

func (l *Line) Rotate(center hatchfill.Pair, angle float64) {
	l.Start = l.Start.RotatedAround(center, angle)
	l.End = l.End.RotatedAround(center, angle)
}

func (l *Line) Scale(center hatchfill.Pair, factor float64) {
	l.Start = l.Start.ScaledAround(center, factor)
	l.End = l.End.ScaledAround(center, factor)
}

func (l *Line) Mirror(axis1, axis2 hatchfill.Pair) {
	l.Start = l.Start.Mirrored(axis1, axis2)
	l.End = l.End.Mirrored(axis1, axis2)
}

func (l *Line) Reverse() {
	l.Start, l.End = l.End, l.Start
}

func (l *Line) Clone() Entity {
	c := *l
	return &c
}

package entity

import (
	"github.com/npillmayer/hatchfill"
)

// Location classifies a point relative to a set of loops.
type Location int8

// Point locations.
const (
	Outside Location = iota
	Inside
	OnContour
)

func (loc Location) String() string {
	switch loc {
	case Inside:
		return "inside"
	case OnContour:
		return "on contour"
	}
	return "outside"
}

// Locate classifies p against a set of loops under the even-odd rule: a
// point is inside if a ray starting at p crosses the loops' edges an odd
// number of times. Islands therefore cut holes into their enclosing loop.
// Points within the linear tolerance of any edge are on the contour.
func Locate(p hatchfill.Pair, loops []*Loop) Location {
	for _, l := range loops {
		for _, e := range l.edges {
			if hatchfill.Is0(e.DistanceToPoint(p)) {
				return OnContour
			}
		}
	}
	crossings := 0
	for _, l := range loops {
		for _, e := range l.edges {
			crossings += rayCrossings(p, e)
		}
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}

// IsInside checks if p is strictly inside the region bounded by loops.
// onContour reports whether p lies on one of the loops' edges, in which case
// inside is false.
func IsInside(p hatchfill.Pair, loops []*Loop) (inside bool, onContour bool) {
	switch Locate(p, loops) {
	case Inside:
		return true, false
	case OnContour:
		return false, true
	}
	return false, false
}

// rayCrossings counts how often the horizontal ray from p towards +x crosses
// e. Every y-monotone piece is counted with the half-open rule, so a ray
// through a shared vertex is counted once.
func rayCrossings(p hatchfill.Pair, e Entity) int {
	switch x := e.(type) {
	case *Line:
		return crossesLine(p, x.Start, x.End)
	case Curved:
		return crossesConic(p, x.conic())
	}
	return 0
}

func crossesLine(p, a, b hatchfill.Pair) int {
	py := p.Y()
	if (a.Y() > py) == (b.Y() > py) {
		return 0
	}
	x := a.X() + (py-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
	if x > p.X() {
		return 1
	}
	return 0
}

func crossesConic(p hatchfill.Pair, k conic) int {
	py := p.Y()
	cuts := k.yPieces()
	n := 0
	for i := 1; i < len(cuts); i++ {
		lo, hi := cuts[i-1], cuts[i]
		za, zb := k.at(k.paramAt(lo)), k.at(k.paramAt(hi))
		if (za.Y() > py) == (zb.Y() > py) {
			continue
		}
		// y is monotone on the piece: bisect for the crossing
		above := za.Y() > py
		for j := 0; j < 60; j++ {
			mid := (lo + hi) / 2
			if (k.at(k.paramAt(mid)).Y() > py) == above {
				lo = mid
			} else {
				hi = mid
			}
		}
		if k.at(k.paramAt((lo+hi)/2)).X() > p.X() {
			n++
		}
	}
	return n
}

package entity

import (
	"math"

	"github.com/npillmayer/hatchfill"
)

// Intersect returns the intersection points of two primitives. With
// onEntities set, only points lying on both primitives are reported;
// otherwise lines are treated as infinite and arcs as full conics.
// Tangential contacts yield a single point. Overlapping collinear lines or
// coincident conics yield no points.
func Intersect(a, b Entity, onEntities bool) []hatchfill.Pair {
	if a == nil || b == nil {
		return nil
	}
	var pts []hatchfill.Pair
	switch x := a.(type) {
	case *Line:
		switch y := b.(type) {
		case *Line:
			pts = intersectLines(x, y, onEntities)
		case Curved:
			pts = intersectLineConic(x, y.conic(), onEntities)
		}
	case Curved:
		switch y := b.(type) {
		case *Line:
			pts = intersectLineConic(y, x.conic(), onEntities)
		case Curved:
			pts = intersectConics(x.conic(), y.conic(), onEntities)
		}
	}
	return pts
}

func appendUnique(pts []hatchfill.Pair, p hatchfill.Pair) []hatchfill.Pair {
	for _, q := range pts {
		if q.Equal(p) {
			return pts
		}
	}
	return append(pts, p)
}

// onSegment checks a line parameter s ∈ [0,1] with a tolerance derived from
// the linear tolerance.
func onSegment(l *Line, s float64) bool {
	tol := hatchfill.Epsilon / math.Max(l.Length(), hatchfill.Epsilon)
	return s >= -tol && s <= 1+tol
}

func intersectLines(l1, l2 *Line, onEntities bool) []hatchfill.Pair {
	d1, d2 := l1.Direction(), l2.Direction()
	div := d1.Cross(d2)
	if math.Abs(div) <= hatchfill.Epsilon*d1.Magnitude()*d2.Magnitude() {
		return nil // parallel or degenerate
	}
	w := l2.Start - l1.Start
	s := w.Cross(d2) / div
	t := w.Cross(d1) / div
	if onEntities && (!onSegment(l1, s) || !onSegment(l2, t)) {
		return nil
	}
	return []hatchfill.Pair{l1.Start + d1.Scaled(s)}
}

// intersectLineConic solves the intersection in the conic's unit frame,
// where the conic is the unit circle and the line stays a line.
func intersectLineConic(l *Line, k conic, onEntities bool) []hatchfill.Pair {
	q0, q1 := k.local(l.Start), k.local(l.End)
	d := q1 - q0
	A := d.Dot(d)
	if A == 0 {
		return nil
	}
	// nearest approach of the line to the unit circle's center
	sn := -q0.Dot(d) / A
	h := (q0 + d.Scaled(sn)).Magnitude()
	tol := hatchfill.Epsilon / math.Max(k.minRadius(), hatchfill.Epsilon)
	var params []float64
	switch {
	case h > 1+tol:
		return nil
	case h >= 1-tol:
		params = []float64{sn}
	default:
		ds := math.Sqrt((1-h*h)/A)
		params = []float64{sn - ds, sn + ds}
	}
	var pts []hatchfill.Pair
	for _, s := range params {
		p := l.Start + l.Direction().Scaled(s)
		if onEntities && (!onSegment(l, s) || !k.contains(p)) {
			continue
		}
		pts = appendUnique(pts, p)
	}
	return pts
}

func intersectConics(k1, k2 conic, onEntities bool) []hatchfill.Pair {
	var cand []hatchfill.Pair
	if k1.circular() && k2.circular() {
		cand = intersectCircles(k1.c, k1.major.Magnitude(), k2.c, k2.major.Magnitude())
	} else {
		cand = intersectConicsSampled(k1, k2)
	}
	if !onEntities {
		return cand
	}
	var pts []hatchfill.Pair
	for _, p := range cand {
		if k1.contains(p) && k2.contains(p) {
			pts = appendUnique(pts, p)
		}
	}
	return pts
}

func intersectCircles(c0 hatchfill.Pair, r0 float64, c1 hatchfill.Pair, r1 float64) []hatchfill.Pair {
	d := c0.Dist(c1)
	if d <= hatchfill.Epsilon {
		return nil // concentric
	}
	if d > r0+r1+hatchfill.Epsilon || d < math.Abs(r0-r1)-hatchfill.Epsilon {
		return nil
	}
	a := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h2 := r0*r0 - a*a
	u := (c1 - c0).Unit()
	base := c0 + u.Scaled(a)
	if h2 <= 0 {
		return []hatchfill.Pair{base}
	}
	h := math.Sqrt(h2)
	if h <= hatchfill.Epsilon {
		return []hatchfill.Pair{base}
	}
	return []hatchfill.Pair{base + u.Perp().Scaled(h), base - u.Perp().Scaled(h)}
}

// intersectConicsSampled walks along the full first conic and watches the
// implicit equation of the second conic change sign, then bisects.
func intersectConicsSampled(k1, k2 conic) []hatchfill.Pair {
	const n = 720
	g := func(t float64) float64 {
		q := k2.local(k1.at(t))
		return q.Dot(q) - 1
	}
	var pts []hatchfill.Pair
	step := hatchfill.TwoPi / n
	t0, g0 := 0.0, g(0)
	for i := 1; i <= n; i++ {
		t1 := float64(i) * step
		g1 := g(t1)
		if g0 == 0 {
			pts = appendUnique(pts, k1.at(t0))
		} else if (g0 < 0) != (g1 < 0) && g1 != 0 {
			lo, hi, glo := t0, t1, g0
			for j := 0; j < 60; j++ {
				mid := (lo + hi) / 2
				gm := g(mid)
				if (gm < 0) == (glo < 0) {
					lo, glo = mid, gm
				} else {
					hi = mid
				}
			}
			pts = appendUnique(pts, k1.at((lo+hi)/2))
		}
		t0, g0 = t1, g1
	}
	return pts
}

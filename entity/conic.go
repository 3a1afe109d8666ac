package entity

import (
	"math"

	"github.com/npillmayer/hatchfill"
)

// conic is the common parametric form of all curved kinds:
//
//	z(t) = c + major⋅cos t + minor⋅sin t,   t ∈ t0 .. t0+sweep
//
// sweep is negative for reversed (clockwise) curves. For circles and
// arcs, major=(r,0) and minor=(0,r), and t is the polar angle.
type conic struct {
	c     hatchfill.Pair
	major hatchfill.Pair
	minor hatchfill.Pair
	t0    float64
	sweep float64
}

// sweepOf returns the signed sweep from a1 to a2; equal angles denote a
// full turn.
func sweepOf(a1, a2 float64, reversed bool) float64 {
	var s float64
	if reversed {
		s = hatchfill.AngleDiff(a2, a1)
	} else {
		s = hatchfill.AngleDiff(a1, a2)
	}
	if s <= angleEpsilon {
		s = hatchfill.TwoPi
	}
	if reversed {
		return -s
	}
	return s
}

// angles closer than this are considered equal when building sweeps
const angleEpsilon = 1.0e-10

func (k conic) at(t float64) hatchfill.Pair {
	sin, cos := math.Sincos(t)
	return k.c + k.major.Scaled(cos) + k.minor.Scaled(sin)
}

// deriv is dz/dt.
func (k conic) deriv(t float64) hatchfill.Pair {
	sin, cos := math.Sincos(t)
	return k.minor.Scaled(cos) - k.major.Scaled(sin)
}

func (k conic) reversed() bool {
	return k.sweep < 0
}

func (k conic) extent() float64 {
	return math.Abs(k.sweep)
}

func (k conic) isFull() bool {
	return k.extent() >= hatchfill.TwoPi-angleEpsilon
}

func (k conic) start() hatchfill.Pair {
	return k.at(k.t0)
}

func (k conic) end() hatchfill.Pair {
	return k.at(k.t0 + k.sweep)
}

// circular is true if the conic is a circle (possibly partial).
func (k conic) circular() bool {
	r1, r2 := k.major.Magnitude(), k.minor.Magnitude()
	return math.Abs(r1-r2) <= hatchfill.Epsilon && math.Abs(k.major.Dot(k.minor)) <= hatchfill.Epsilon*r1
}

func (k conic) maxRadius() float64 {
	return math.Max(k.major.Magnitude(), k.minor.Magnitude())
}

func (k conic) minRadius() float64 {
	return math.Min(k.major.Magnitude(), k.minor.Magnitude())
}

// local maps p into the frame where the full conic is the unit circle.
func (k conic) local(p hatchfill.Pair) hatchfill.Pair {
	d := p - k.c
	det := k.major.Cross(k.minor)
	return hatchfill.P(d.Cross(k.minor)/det, k.major.Cross(d)/det)
}

// param returns the parameter angle of the point on the full conic closest
// (in the unit frame) to p.
func (k conic) param(p hatchfill.Pair) float64 {
	return hatchfill.NormAngle(k.local(p).Angle())
}

// offset is how far parameter t lies from t0, travelling in the conic's
// direction sense, in [0, 2π).
func (k conic) offset(t float64) float64 {
	if k.reversed() {
		return hatchfill.AngleDiff(t, k.t0)
	}
	return hatchfill.AngleDiff(k.t0, t)
}

// paramAt is the inverse of offset.
func (k conic) paramAt(o float64) float64 {
	if k.reversed() {
		return k.t0 - o
	}
	return k.t0 + o
}

// containsParam checks if parameter t lies on the partial conic, with
// angular tolerance tol.
func (k conic) containsParam(t, tol float64) bool {
	if k.isFull() {
		return true
	}
	o := k.offset(t)
	return o <= k.extent()+tol || o >= hatchfill.TwoPi-tol
}

// contains checks if p, known to be on the full conic, lies on the partial
// conic. Tolerance is derived from the linear tolerance.
func (k conic) contains(p hatchfill.Pair) bool {
	tol := hatchfill.Epsilon / math.Max(k.minRadius(), hatchfill.Epsilon)
	return k.containsParam(k.param(p), tol)
}

// speed is |dz/dt|.
func (k conic) speed(t float64) float64 {
	return k.deriv(t).Magnitude()
}

// arcLength from offset o1 to offset o2 (o1 <= o2), by Simpson's rule.
func (k conic) arcLength(o1, o2 float64) float64 {
	if k.circular() {
		return (o2 - o1) * k.major.Magnitude()
	}
	const n = 128
	h := (o2 - o1) / n
	if h == 0 {
		return 0
	}
	sum := k.speed(k.paramAt(o1)) + k.speed(k.paramAt(o2))
	for i := 1; i < n; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4.0
		}
		sum += w * k.speed(k.paramAt(o1+float64(i)*h))
	}
	return sum * h / 3
}

func (k conic) length() float64 {
	return k.arcLength(0, k.extent())
}

// offsetAtDistance finds the offset where the arc length from the start
// equals d.
func (k conic) offsetAtDistance(d float64) float64 {
	if d <= 0 {
		return 0
	}
	if k.circular() {
		return math.Min(d/k.major.Magnitude(), k.extent())
	}
	lo, hi := 0.0, k.extent()
	if d >= k.length() {
		return hi
	}
	for i := 0; i < 50; i++ {
		mid := (lo + hi) / 2
		if k.arcLength(0, mid) < d {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// nearest returns the point on the partial conic closest to p.
func (k conic) nearest(p hatchfill.Pair) hatchfill.Pair {
	if k.circular() {
		d := p - k.c
		if d.Magnitude() <= hatchfill.Epsilon {
			return k.start()
		}
		t := hatchfill.NormAngle(d.Angle())
		if k.containsParam(t, 0) {
			return k.at(t)
		}
		return nearerOf(p, k.start(), k.end())
	}
	// sample, then refine around the best sample by golden section search
	const n = 360
	ext := k.extent()
	step := ext / n
	best, bestDist := 0.0, math.Inf(1)
	for i := 0; i <= n; i++ {
		o := float64(i) * step
		if dd := k.at(k.paramAt(o)).Dist(p); dd < bestDist {
			best, bestDist = o, dd
		}
	}
	lo, hi := math.Max(0, best-step), math.Min(ext, best+step)
	if k.isFull() {
		lo, hi = best-step, best+step
	}
	const g = 0.6180339887498949
	f := func(o float64) float64 { return k.at(k.paramAt(o)).Dist(p) }
	for i := 0; i < 60; i++ {
		a := hi - g*(hi-lo)
		b := lo + g*(hi-lo)
		if f(a) < f(b) {
			hi = b
		} else {
			lo = a
		}
	}
	return k.at(k.paramAt((lo + hi) / 2))
}

func nearerOf(p, a, b hatchfill.Pair) hatchfill.Pair {
	if p.Dist(a) <= p.Dist(b) {
		return a
	}
	return b
}

// boundingBox includes the end points and every axis extremum within the
// sweep.
func (k conic) boundingBox() hatchfill.Box {
	box := hatchfill.BoxOf(k.start(), k.end())
	tx := math.Atan2(k.minor.X(), k.major.X())
	ty := math.Atan2(k.minor.Y(), k.major.Y())
	for _, t := range []float64{tx, tx + math.Pi, ty, ty + math.Pi} {
		t = hatchfill.NormAngle(t)
		if k.containsParam(t, 0) {
			box = box.Extend(k.at(t))
		}
	}
	return box
}

// yPieces returns the offsets splitting the conic into pieces monotone in y.
// The first entry is 0, the last is the extent.
func (k conic) yPieces() []float64 {
	ext := k.extent()
	cuts := []float64{0}
	ty := math.Atan2(k.minor.Y(), k.major.Y())
	e1 := k.offset(hatchfill.NormAngle(ty))
	e2 := k.offset(hatchfill.NormAngle(ty + math.Pi))
	if e2 < e1 {
		e1, e2 = e2, e1
	}
	for _, e := range []float64{e1, e2} {
		if e > angleEpsilon && e < ext-angleEpsilon {
			cuts = append(cuts, e)
		}
	}
	return append(cuts, ext)
}

// areaIntegral is ∫ x dy along the conic from t0 to t0+sweep.
func (k conic) areaIntegral() float64 {
	F := func(t float64) float64 {
		sin, cos := math.Sincos(t)
		sin2, cos2 := math.Sincos(2 * t)
		y := k.c.Y() + k.major.Y()*cos + k.minor.Y()*sin
		mx, my := k.major.X(), k.major.Y()
		nx, ny := k.minor.X(), k.minor.Y()
		return k.c.X()*y +
			(nx*ny-mx*my)*(-cos2/4) +
			mx*ny*(t/2+sin2/4) -
			nx*my*(t/2-sin2/4)
	}
	return F(k.t0+k.sweep) - F(k.t0)
}

// Flatness is the maximum deviation of polygon approximations from the
// curves they approximate, in drawing units.
var Flatness float64 = 0.001

// polyline samples the conic from start to end, inclusive.
func (k conic) polyline() []hatchfill.Pair {
	r := k.maxRadius()
	n := 4
	if r > Flatness {
		step := 2 * math.Acos(1-Flatness/r)
		n = int(math.Ceil(k.extent() / step))
	}
	n = max(n, 4)
	n = min(n, 4096)
	pts := make([]hatchfill.Pair, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, k.at(k.paramAt(k.extent()*float64(i)/float64(n))))
	}
	return pts
}

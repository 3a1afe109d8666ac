package entity

import (
	"math"
	"testing"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasPoint(pts []hatchfill.Pair, p hatchfill.Pair) bool {
	for _, q := range pts {
		if q.EqualTol(p, 1e-6) {
			return true
		}
	}
	return false
}

func TestIntersectLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l1 := NewLine(hatchfill.P(0, 0), hatchfill.P(2, 2))
	l2 := NewLine(hatchfill.P(0, 2), hatchfill.P(2, 0))
	pts := Intersect(l1, l2, true)
	require.Len(t, pts, 1)
	assertPair(t, hatchfill.P(1, 1), pts[0], "crossing")
	l3 := NewLine(hatchfill.P(5, 0), hatchfill.P(5, 1))
	assert.Empty(t, Intersect(l1, l3, true))
	assert.Len(t, Intersect(l1, l3, false), 1)
	l4 := NewLine(hatchfill.P(0, 1), hatchfill.P(2, 3))
	assert.Empty(t, Intersect(l1, l4, false), "parallel lines")
	l5 := NewLine(hatchfill.P(2, 2), hatchfill.P(3, 0))
	assert.Len(t, Intersect(l1, l5, true), 1, "shared end point")
}

func TestIntersectLineCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCircle(hatchfill.Origin, 1)
	pts := Intersect(NewLine(hatchfill.P(-2, 0), hatchfill.P(2, 0)), c, true)
	require.Len(t, pts, 2)
	assert.True(t, hasPoint(pts, hatchfill.P(-1, 0)))
	assert.True(t, hasPoint(pts, hatchfill.P(1, 0)))
	tangent := Intersect(c, NewLine(hatchfill.P(-2, 1), hatchfill.P(2, 1)), true)
	require.Len(t, tangent, 1)
	assertPair(t, hatchfill.P(0, 1), tangent[0], "tangent point")
	assert.Empty(t, Intersect(NewLine(hatchfill.P(-2, 3), hatchfill.P(2, 3)), c, false))
}

func TestIntersectLineArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	upper := NewArc(hatchfill.Origin, 1, 0, math.Pi, false)
	assert.Len(t, Intersect(NewLine(hatchfill.P(-2, 0.5), hatchfill.P(2, 0.5)), upper, true), 2)
	below := NewLine(hatchfill.P(-2, -0.5), hatchfill.P(2, -0.5))
	assert.Empty(t, Intersect(below, upper, true))
	assert.Len(t, Intersect(below, upper, false), 2)
}

func TestIntersectCircles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c1 := NewCircle(hatchfill.Origin, 1)
	c2 := NewCircle(hatchfill.P(1, 0), 1)
	pts := Intersect(c1, c2, true)
	require.Len(t, pts, 2)
	h := math.Sqrt(3) / 2
	assert.True(t, hasPoint(pts, hatchfill.P(0.5, h)))
	assert.True(t, hasPoint(pts, hatchfill.P(0.5, -h)))
	assert.Empty(t, Intersect(c1, NewCircle(hatchfill.Origin, 2), true), "concentric")
	a := NewArc(hatchfill.P(1, 0), 1, math.Pi/2, math.Pi, false)
	pts = Intersect(c1, a, true)
	require.Len(t, pts, 1)
	assertPair(t, hatchfill.P(0.5, h), pts[0], "arc limits crossings")
}

func TestIntersectEllipse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEllipse(hatchfill.Origin, hatchfill.P(2, 0), 0.5, 0, 0, false)
	pts := Intersect(NewLine(hatchfill.P(0, -2), hatchfill.P(0, 2)), e, true)
	require.Len(t, pts, 2)
	assert.True(t, hasPoint(pts, hatchfill.P(0, 1)))
	assert.True(t, hasPoint(pts, hatchfill.P(0, -1)))
	pts = Intersect(e, NewCircle(hatchfill.Origin, 1.5), true)
	require.Len(t, pts, 4)
	x, y := math.Sqrt(5.0/3.0), math.Sqrt(7.0/12.0)
	for _, p := range []hatchfill.Pair{hatchfill.P(x, y), hatchfill.P(-x, y), hatchfill.P(x, -y), hatchfill.P(-x, -y)} {
		assert.True(t, hasPoint(pts, p), "missing %v in %v", p, pts)
	}
}

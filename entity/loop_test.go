package entity

import (
	"testing"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) *Loop {
	return NewLoop(
		NewLine(hatchfill.P(x0, y0), hatchfill.P(x1, y0)),
		NewLine(hatchfill.P(x1, y0), hatchfill.P(x1, y1)),
		NewLine(hatchfill.P(x1, y1), hatchfill.P(x0, y1)),
		NewLine(hatchfill.P(x0, y1), hatchfill.P(x0, y0)),
	)
}

func TestOptimizeShuffled(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewLoop(
		NewLine(hatchfill.P(0, 0), hatchfill.P(10, 0)),
		NewLine(hatchfill.P(0, 10), hatchfill.P(10, 10)), // wrong direction
		NewLine(hatchfill.P(0, 10), hatchfill.P(0, 0)),
		NewLine(hatchfill.P(10, 0), hatchfill.P(10, 10)),
	)
	require.NoError(t, l.Optimize())
	assert.Equal(t, 4, l.Count())
	assert.True(t, l.IsClosed())
	assert.InDelta(t, 100.0, l.AreaLineIntegral(), 1e-9)
	assertPair(t, hatchfill.P(10, 10), l.Edges()[2].StartPoint(), "reversed edge")
}

func TestOptimizeErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	open := NewLoop(
		NewLine(hatchfill.P(0, 0), hatchfill.P(10, 0)),
		NewLine(hatchfill.P(10, 0), hatchfill.P(10, 10)),
		NewLine(hatchfill.P(10, 10), hatchfill.P(0, 10)),
	)
	assert.ErrorIs(t, open.Optimize(), ErrOpenLoop)
	mixed := NewLoop(NewCircle(hatchfill.Origin, 1), NewLine(hatchfill.P(0, 0), hatchfill.P(1, 0)))
	assert.ErrorIs(t, mixed.Optimize(), ErrInconsistentEdges)
	assert.ErrorIs(t, NewLoop().Optimize(), ErrEmptyLoop)
	two := square(0, 0, 1, 1)
	for _, e := range square(5, 5, 6, 6).Edges() {
		two.Add(e)
	}
	assert.ErrorIs(t, two.Optimize(), ErrInconsistentEdges)
}

func TestOptimizeSingleClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewLoop(NewCircle(hatchfill.Origin, 1))
	require.NoError(t, l.Optimize())
	assert.True(t, l.IsClosed())
	withDegenerate := square(0, 0, 2, 2)
	withDegenerate.Add(NewLine(hatchfill.P(2, 2), hatchfill.P(2, 2)))
	require.NoError(t, withDegenerate.Optimize())
	assert.Equal(t, 4, withDegenerate.Count())
}

func TestLoopTransforms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := square(0, 0, 2, 2)
	c := l.Clone()
	l.Move(hatchfill.P(1, 1))
	box := l.BoundingBox()
	assertPair(t, hatchfill.P(1, 1), box.Min, "moved")
	assertPair(t, hatchfill.P(0, 0), c.BoundingBox().Min, "clone unchanged")
	c.Mirror(hatchfill.P(0, 0), hatchfill.P(0, 1))
	assert.InDelta(t, -4.0, c.AreaLineIntegral(), 1e-9, "mirroring flips orientation")
	c.Scale(hatchfill.Origin, 2)
	assert.InDelta(t, -16.0, c.AreaLineIntegral(), 1e-9)
}

package hatch

import (
	"math"
	"testing"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/hatchfill/entity"
	"github.com/npillmayer/hatchfill/pattern"
	"github.com/npillmayer/hatchfill/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var p = hatchfill.P

// square returns a counter-clockwise rectangle loop.
func square(x0, y0, x1, y1 float64) *entity.Loop {
	return entity.NewLoop(
		entity.NewLine(p(x0, y0), p(x1, y0)),
		entity.NewLine(p(x1, y0), p(x1, y1)),
		entity.NewLine(p(x1, y1), p(x0, y1)),
		entity.NewLine(p(x0, y1), p(x0, y0)),
	)
}

func circle(r float64) *entity.Loop {
	return entity.NewLoop(entity.NewCircle(hatchfill.Origin, r))
}

func testLibrary(t *testing.T) *pattern.Library {
	lib := pattern.NewLibrary()
	hline := func(name string, size float64) *pattern.Template {
		return pattern.NewTemplate(name, entity.NewLine(p(0, 0), p(5, 0))).WithCell(hatchfill.Origin, p(size, size))
	}
	require.NoError(t, lib.Register(hline("HLINE", 5)))
	require.NoError(t, lib.Register(hline("TINY", 1e-12)))
	require.NoError(t, lib.Register(hline("MICRO", 1e-6)))
	require.NoError(t, lib.Register(hline("HUGE", 1e101)))
	return lib
}

func TestUpdateCircleEndToEnd(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(false, 1, 0, "HLINE", testLibrary(t))
	h.AddLoop(circle(10))
	assert.Equal(t, Undefined, h.UpdateError())
	h.Update()
	require.Equal(t, Ok, h.UpdateError(), "%v", h.Err())
	assert.Equal(t, 1, h.CountLoops())
	assert.Len(t, h.Content(), 12)
	for _, e := range h.Content() {
		require.Equal(t, entity.LineKind, e.Kind())
		assert.InDelta(t, e.StartPoint().Y(), e.EndPoint().Y(), 1e-12, "segment not horizontal")
		assert.LessOrEqual(t, e.StartPoint().Magnitude(), 10+1e-6)
		assert.LessOrEqual(t, e.EndPoint().Magnitude(), 10+1e-6)
	}
	box := h.BoundingBox()
	assert.InDelta(t, 20.0, box.Width(), 1e-9)
	assert.False(t, h.IsUpdateRunning())
}

func TestUpdateIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(false, 1, 0.3, "ANSI37", pattern.NewLibrary())
	h.AddLoop(square(0, 0, 20, 15))
	h.AddLoop(entity.NewLoop(entity.NewCircle(p(10, 7), 3)))
	h.Update()
	require.Equal(t, Ok, h.UpdateError())
	first := h.Content()
	require.NotEmpty(t, first)
	h.Update()
	assert.Equal(t, first, h.Content())
}

func TestTileRangeCoverage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cells := []hatchfill.Box{
		hatchfill.BoxOf(p(0, 0), p(5, 5)),
		hatchfill.BoxOf(p(0.5, 0.5), p(3.675, 1.2)),
	}
	bounds := []hatchfill.Box{
		hatchfill.BoxOf(p(-10, -10), p(10, 10)),
		hatchfill.BoxOf(p(0.1, 3), p(17.3, 4)),
		hatchfill.BoxOf(p(-7.25, -0.01), p(-3, 99.9)),
	}
	for _, c := range cells {
		for _, b := range bounds {
			tiles := TileRange(b, c)
			w, h := c.Width(), c.Height()
			assert.LessOrEqual(t, float64(tiles.PX1)*w, b.Min.X(), "%v in %v", b, tiles)
			assert.GreaterOrEqual(t, float64(tiles.PX2)*w, b.Max.X(), "%v in %v", b, tiles)
			assert.LessOrEqual(t, float64(tiles.PY1)*h, b.Min.Y(), "%v in %v", b, tiles)
			assert.GreaterOrEqual(t, float64(tiles.PY2)*h, b.Max.Y(), "%v in %v", b, tiles)
		}
	}
}

func TestBuildCarpet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tmpl := pattern.NewTemplate("T", entity.NewLine(p(1, 1), p(2, 1))).WithCell(p(1, 1), p(2, 2))
	tiles := Tiles{PX1: -1, PX2: 1, PY1: 0, PY2: 3, CellWidth: 2, CellHeight: 2}
	carpet := BuildCarpet(tmpl, tiles, math.Pi/2)
	require.Len(t, carpet, 6)
	// cell moved to origin, rotated, then offset by tile (-1,0)
	assert.True(t, carpet[0].StartPoint().EqualTol(p(0, -2), 1e-9), "%v", carpet[0].StartPoint())
	assert.True(t, carpet[0].EndPoint().EqualTol(p(0, -1), 1e-9), "%v", carpet[0].EndPoint())
}

func TestContainmentSoundness(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	loops := []*entity.Loop{square(0, 0, 10, 10), square(4, 4, 6, 6)}
	h := NewHatch(false, 1, 0, "ANSI31", pattern.NewLibrary())
	for _, l := range loops {
		h.AddLoop(l)
	}
	h.Update()
	require.Equal(t, Ok, h.UpdateError())
	require.NotEmpty(t, h.Content())
	for _, e := range h.Content() {
		mid := entity.Locate(e.MiddlePoint(), h.Loops())
		second := entity.Locate(e.PointAtDistance(e.Length()*SecondSampleFraction), h.Loops())
		assert.True(t, mid == entity.Inside || second == entity.Inside, entity.Describe(e))
		assert.False(t, mid == entity.Outside && second == entity.Outside, entity.Describe(e))
		island := hatchfill.BoxOf(p(4+1e-6, 4+1e-6), p(6-1e-6, 6-1e-6))
		assert.False(t, island.Contains(e.MiddlePoint()), "segment in island: %s", entity.Describe(e))
	}
}

func TestFilterInsideSecondSample(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	loops := []*entity.Loop{square(0, 0, 10, 10)}
	// middle point (10,5) lies on the border, the second sample (8.4,5) inside
	crossing := entity.NewLine(p(2, 5), p(18, 5))
	require.Equal(t, entity.OnContour, entity.Locate(crossing.MiddlePoint(), loops))
	kept := FilterInside([]entity.Entity{crossing}, loops)
	require.Len(t, kept, 1)
	assert.Same(t, crossing, kept[0])
	// both samples outside
	outside := entity.NewLine(p(12, 5), p(20, 5))
	assert.Empty(t, FilterInside([]entity.Entity{outside}, loops))
	// both samples on the border
	border := entity.NewLine(p(10, -5), p(10, 15))
	assert.Empty(t, FilterInside([]entity.Entity{border}, loops))
}

func TestCutCurves(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	loops := []*entity.Loop{square(0, 0, 10, 10)}
	carpet := []entity.Entity{
		entity.NewCircle(hatchfill.Origin, 2),
		entity.NewEllipse(hatchfill.Origin, p(4, 0), 0.5, 0, 0, false),
		entity.NewCircle(p(5, 5), 1),
	}
	cuts := CutLines(carpet, loops)
	require.Len(t, cuts, 5)
	kept := FilterInside(cuts, loops)
	require.Len(t, kept, 3)
	arc, ok := kept[0].(*entity.Arc)
	require.True(t, ok)
	assert.InDelta(t, 0.0, arc.Angle1, 1e-9)
	assert.InDelta(t, math.Pi/2, arc.Angle2, 1e-9)
	ell, ok := kept[1].(*entity.Ellipse)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, ell.Angle2, 1e-9)
	assert.True(t, ell.EndPoint().EqualTol(p(0, 2), 1e-9))
	assert.Equal(t, entity.CircleKind, kept[2].Kind(), "circle without crossings stays whole")
}

func TestSolidArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(true, 1, 0, "", nil)
	h.AddLoop(square(0, 0, 10, 10))
	h.Update()
	assert.Equal(t, Ok, h.UpdateError())
	assert.InDelta(t, 100.0, h.TotalArea(), 1e-9)
	assert.False(t, h.HasContent())
	h.AddLoop(entity.NewLoop(entity.NewCircle(p(5, 5), 1)))
	assert.InDelta(t, 100.0+math.Pi, h.TotalArea(), 1e-9)
}

func TestDegeneratePatterns(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lib := testLibrary(t)
	h := NewHatch(false, 1, 0, "TINY", lib)
	h.AddLoop(square(0, 0, 10, 10))
	h.Update()
	assert.Equal(t, TooSmall, h.UpdateError())
	assert.ErrorIs(t, h.Err(), ErrTooSmall)
	assert.Empty(t, h.Content())
	//
	h = NewHatch(false, 1, 0, "MICRO", lib)
	h.AddLoop(square(0, 0, 1e6, 1e6))
	h.Update()
	assert.Equal(t, AreaTooBig, h.UpdateError())
	assert.ErrorIs(t, h.Err(), ErrAreaTooBig)
	assert.Empty(t, h.Content())
}

func TestDegenerateExtents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lib := testLibrary(t)
	h := NewHatch(false, 1, 0, "HUGE", lib)
	h.AddLoop(square(0, 0, 10, 10))
	h.Update()
	assert.Equal(t, TooSmall, h.UpdateError(), "cell larger than MaxExtent")
	assert.ErrorIs(t, h.Err(), ErrTooSmall)
	assert.Nil(t, h.Content())
	//
	h = NewHatch(false, 1, 0, "HLINE", lib)
	h.AddLoop(square(0, 0, 10, 5e-7))
	require.True(t, h.Validate())
	h.Update()
	assert.Equal(t, TooSmall, h.UpdateError(), "boundary thinner than MinExtent")
	assert.ErrorIs(t, h.Err(), ErrTooSmall)
	assert.Nil(t, h.Content())
}

func TestMissingPattern(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(false, 1, 0, "HLINE", testLibrary(t))
	h.AddLoop(circle(10))
	h.Update()
	require.Equal(t, Ok, h.UpdateError())
	require.NotEmpty(t, h.Content())
	h.SetPattern("doesNotExist")
	h.Update()
	assert.Equal(t, PatternNotFound, h.UpdateError())
	assert.ErrorIs(t, h.Err(), ErrPatternNotFound)
	assert.ErrorIs(t, h.Err(), pattern.ErrPatternNotFound)
	assert.Empty(t, h.Content())
	assert.False(t, h.HasContent())
}

func TestInvalidContour(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(false, 1, 0, "HLINE", testLibrary(t))
	h.Update()
	assert.Equal(t, InvalidContour, h.UpdateError(), "no loops")
	open := entity.NewLoop(
		entity.NewLine(p(0, 0), p(10, 0)),
		entity.NewLine(p(10, 0), p(10, 10)),
	)
	h.AddLoop(open)
	assert.False(t, h.Validate())
	h.Update()
	assert.Equal(t, InvalidContour, h.UpdateError())
	assert.ErrorIs(t, h.Err(), ErrInvalidContour)
	assert.ErrorIs(t, h.Err(), entity.ErrOpenLoop)
	assert.Nil(t, h.Content())
}

func TestValidateReordersLoops(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(true, 1, 0, "", nil)
	h.AddLoop(entity.NewLoop(
		entity.NewLine(p(0, 0), p(10, 0)),
		entity.NewLine(p(0, 10), p(10, 10)),
		entity.NewLine(p(10, 0), p(10, 10)),
		entity.NewLine(p(0, 10), p(0, 0)),
	))
	require.True(t, h.Validate())
	assert.True(t, h.Loops()[0].IsClosed())
	assert.InDelta(t, 100.0, h.TotalArea(), 1e-9)
}

// reentrantLibrary calls back into the hatch while a pattern is requested.
type reentrantLibrary struct {
	lib   *pattern.Library
	h     *Hatch
	calls int
}

func (r *reentrantLibrary) RequestPattern(name string) *pattern.Template {
	r.calls++
	r.h.Update()
	return r.lib.RequestPattern(name)
}

func TestReentrantUpdateIsSkipped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lib := testLibrary(t)
	reference := NewHatch(false, 1, 0, "HLINE", lib)
	reference.AddLoop(circle(10))
	reference.Update()
	require.Equal(t, Ok, reference.UpdateError())
	//
	rlib := &reentrantLibrary{lib: lib}
	h := NewHatch(false, 1, 0, "HLINE", rlib)
	rlib.h = h
	h.AddLoop(circle(10))
	h.Update()
	assert.Equal(t, 1, rlib.calls)
	assert.Equal(t, Ok, h.UpdateError())
	assert.Equal(t, reference.Content(), h.Content())
	assert.False(t, h.IsUpdateRunning())
}

func TestGuardedUpdates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(false, 1, 0, "HLINE", testLibrary(t))
	h.AddLoop(circle(10))
	h.SetUpdateEnabled(false)
	h.Update()
	assert.Equal(t, Undefined, h.UpdateError())
	h.SetUpdateEnabled(true)
	h.SetUndone(true)
	h.Update()
	assert.Equal(t, Undefined, h.UpdateError())
	assert.Nil(t, h.Content())
	h.SetUndone(false)
	h.Update()
	assert.Equal(t, Ok, h.UpdateError())
}

func TestPatternAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	angle := math.Pi / 6
	h := NewHatch(false, 1, angle, "HLINE", testLibrary(t))
	h.AddLoop(square(0, 0, 20, 20))
	h.Update()
	require.Equal(t, Ok, h.UpdateError())
	require.NotEmpty(t, h.Content())
	u := hatchfill.Polar(1, angle)
	for _, e := range h.Content() {
		d := (e.EndPoint() - e.StartPoint()).Unit()
		assert.InDelta(t, 0.0, d.Cross(u), 1e-6, entity.Describe(e))
	}
}

func TestTransforms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(false, 1, 0, "HLINE", testLibrary(t))
	h.AddLoop(circle(10))
	h.Update()
	require.Len(t, h.Content(), 12)
	//
	h.Move(p(100, 0))
	assert.Equal(t, Ok, h.UpdateError())
	assert.Len(t, h.Content(), 12)
	assert.True(t, h.BoundingBox().Center().EqualTol(p(100, 0), 1e-9))
	for _, e := range h.Content() {
		assert.LessOrEqual(t, e.MiddlePoint().Dist(p(100, 0)), 10.0)
	}
	h.Move(p(-100, 0))
	//
	h.Scale(hatchfill.Origin, 2)
	assert.Equal(t, 2.0, h.ScaleFactor())
	assert.Len(t, h.Content(), 12)
	h.Scale(hatchfill.Origin, 0.5)
	//
	h.Rotate(hatchfill.Origin, math.Pi/2)
	assert.InDelta(t, math.Pi/2, h.Angle(), 1e-12)
	require.NotEmpty(t, h.Content())
	for _, e := range h.Content() {
		assert.InDelta(t, e.StartPoint().X(), e.EndPoint().X(), 1e-9, "segment not vertical")
	}
	h.Mirror(hatchfill.Origin, p(1, 1))
	assert.InDelta(t, math.Pi, h.Angle(), 1e-12)
}

func TestSwitchToSolidDropsContent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(false, 1, 0, "HLINE", testLibrary(t))
	h.AddLoop(circle(10))
	h.Update()
	require.True(t, h.HasContent())
	h.SetSolid(true)
	assert.False(t, h.HasContent())
	assert.Nil(t, h.Content())
	rec := &render.Recorder{}
	h.Draw(rec)
	assert.Equal(t, 0, rec.Count(render.StrokeOp))
	assert.Equal(t, 1, rec.Count(render.FillOp))
}

func TestSolidTransformKeepsStatus(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHatch(true, 1, 0, "", nil)
	h.AddLoop(square(0, 0, 10, 10))
	h.Move(p(5, 5))
	assert.Equal(t, Undefined, h.UpdateError())
	assert.True(t, h.BoundingBox().Min.Equal(p(5, 5)))
	assert.InDelta(t, 100.0, h.TotalArea(), 1e-9)
	h.Mirror(p(0, 0), p(0, 1))
	assert.InDelta(t, -100.0, h.TotalArea(), 1e-9)
}

func TestDrawAndHitTest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	solid := NewHatch(true, 1, 0, "", nil)
	solid.AddLoop(square(0, 0, 10, 10))
	solid.AddLoop(entity.NewLoop(entity.NewCircle(p(5, 5), 2)))
	solid.Update()
	rec := &render.Recorder{}
	solid.Draw(rec)
	require.Equal(t, 1, rec.Count(render.FillOp))
	region := rec.Ops[0].Region
	assert.Equal(t, 2, region.Len())
	assert.True(t, region.Contains(p(1, 1)))
	assert.False(t, region.Contains(p(5, 5)), "island is a hole")
	assert.Equal(t, 0.0, solid.DistanceToPoint(p(1, 1)))
	assert.InDelta(t, 5.0, solid.DistanceToPoint(p(15, 5)), 1e-9)
	//
	h := NewHatch(false, 1, 0, "HLINE", testLibrary(t))
	h.SetPen(entity.Pen{Width: 0.25})
	h.SetLayer("hatches")
	h.AddLoop(circle(10))
	h.Update()
	rec.Reset()
	h.Draw(rec)
	assert.Equal(t, len(h.Content()), rec.Count(render.StrokeOp))
	assert.Equal(t, "hatches", rec.Ops[0].Attributes.Layer)
	q, d := h.NearestPointOnEntity(p(-2, -4))
	assert.InDelta(t, 1.0, d, 1e-9)
	assert.True(t, q.EqualTol(p(-2, -5), 1e-9))
	assert.InDelta(t, 0.0, h.DistanceToPoint(p(-2, -5)), 1e-9)
}

func TestUpdateErrorNames(t *testing.T) {
	assert.Equal(t, "AreaTooBig", AreaTooBig.String())
	assert.Nil(t, Ok.Err())
	assert.Nil(t, Undefined.Err())
	assert.ErrorIs(t, InvalidContour.Err(), ErrInvalidContour)
}

package hatch

import (
	"math"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/hatchfill/entity"
	"github.com/npillmayer/hatchfill/pattern"
	"github.com/npillmayer/hatchfill/render"
)

// PatternLibrary supplies pattern templates by name. Implementations return
// a template the caller may modify, or nil for unknown names.
// *pattern.Library is the standard implementation.
type PatternLibrary interface {
	RequestPattern(name string) *pattern.Template
}

// Hatch is a boundary filled with a pattern or a solid fill.
type Hatch struct {
	solid       bool
	scale       float64
	angle       float64
	patternName string
	library     PatternLibrary

	loops   []*entity.Loop
	content []entity.Entity // nil while there is no pattern content
	attr    entity.Attributes
	box     hatchfill.Box

	status        UpdateError
	lastErr       error
	updateRunning bool
	updateEnabled bool
	undone        bool
}

// NewHatch creates a hatch without boundary loops. Pattern templates are
// requested from lib.
func NewHatch(solid bool, scale, angle float64, patternName string, lib PatternLibrary) *Hatch {
	return &Hatch{
		solid:         solid,
		scale:         scale,
		angle:         angle,
		patternName:   patternName,
		library:       lib,
		box:           hatchfill.EmptyBox(),
		updateEnabled: true,
	}
}

// IsSolid is true for solid fills.
func (h *Hatch) IsSolid() bool { return h.solid }

// ScaleFactor is the scale applied to the pattern template.
func (h *Hatch) ScaleFactor() float64 { return h.scale }

// Angle is the pattern angle in radians.
func (h *Hatch) Angle() float64 { return h.angle }

// PatternName is the name of the pattern template.
func (h *Hatch) PatternName() string { return h.patternName }

// SetSolid switches between solid fill and pattern. Switching to solid drops
// the pattern content; other changes take effect with the next update.
func (h *Hatch) SetSolid(solid bool) {
	h.solid = solid
	if solid {
		h.content = nil
	}
}

// SetPattern selects the pattern template by name.
func (h *Hatch) SetPattern(name string) { h.patternName = name }

// SetScale sets the scale applied to the pattern template.
func (h *Hatch) SetScale(scale float64) { h.scale = scale }

// SetAngle sets the pattern angle in radians.
func (h *Hatch) SetAngle(angle float64) { h.angle = angle }

// SetLibrary sets the library pattern templates are requested from.
func (h *Hatch) SetLibrary(lib PatternLibrary) { h.library = lib }

// SetPen sets the pen for the pattern content, including existing content.
func (h *Hatch) SetPen(pen entity.Pen) {
	h.attr.Pen = pen
	h.applyAttributes()
}

// SetLayer sets the layer for the pattern content, including existing content.
func (h *Hatch) SetLayer(layer string) {
	h.attr.Layer = layer
	h.applyAttributes()
}

// Attributes are the pen and layer given to the pattern content.
func (h *Hatch) Attributes() entity.Attributes {
	return h.attr
}

func (h *Hatch) applyAttributes() {
	for _, e := range h.content {
		e.SetAttributes(h.attr)
	}
}

// SetUpdateEnabled enables or disables update passes. Updates of a disabled
// hatch are silently skipped.
func (h *Hatch) SetUpdateEnabled(enabled bool) { h.updateEnabled = enabled }

// SetUndone marks the hatch as logically deleted. Undone hatches are not
// updated.
func (h *Hatch) SetUndone(undone bool) { h.undone = undone }

// IsUndone is true for logically deleted hatches.
func (h *Hatch) IsUndone() bool { return h.undone }

// IsUpdateRunning is true while an update pass is in progress.
func (h *Hatch) IsUpdateRunning() bool { return h.updateRunning }

// UpdateError is the status of the last update pass.
func (h *Hatch) UpdateError() UpdateError { return h.status }

// Err returns the error of the last update pass, with details, or nil.
func (h *Hatch) Err() error { return h.lastErr }

// AddLoop adds a copy of l as a boundary loop.
func (h *Hatch) AddLoop(l *entity.Loop) {
	h.loops = append(h.loops, l.Clone())
}

// Loops returns the boundary loops. They are owned by the hatch.
func (h *Hatch) Loops() []*entity.Loop {
	return h.loops
}

// CountLoops is the number of boundary loops.
func (h *Hatch) CountLoops() int {
	return len(h.loops)
}

// Content returns the pattern content, or nil if there is none.
func (h *Hatch) Content() []entity.Entity {
	return h.content
}

// HasContent is true after a successful update of a non-solid hatch.
func (h *Hatch) HasContent() bool {
	return h.content != nil
}

// BoundingBox covers the boundary loops and the pattern content.
func (h *Hatch) BoundingBox() hatchfill.Box {
	return h.box
}

func (h *Hatch) calculateBorders() {
	box := hatchfill.EmptyBox()
	for _, l := range h.loops {
		box = box.Union(l.BoundingBox())
	}
	for _, e := range h.content {
		box = box.Union(e.BoundingBox())
	}
	h.box = box
}

// TotalArea sums the signed areas of all boundary loops. Islands reduce the
// area only if they run opposite to their enclosing loop.
func (h *Hatch) TotalArea() float64 {
	a := 0.0
	for _, l := range h.loops {
		a += l.AreaLineIntegral()
	}
	return a
}

// Draw emits the pattern content, or the fill region for solid hatches.
func (h *Hatch) Draw(target render.Target) {
	if h.solid {
		region := h.SolidRegion()
		if !region.IsEmpty() {
			target.Fill(region, h.attr)
		}
		return
	}
	for _, e := range h.content {
		target.Stroke(e, e.Attributes())
	}
}

// NearestPointOnEntity returns the point of the hatch closest to p and its
// distance. For solid hatches the boundary is searched, otherwise the pattern
// content. An empty hatch yields an infinite distance.
func (h *Hatch) NearestPointOnEntity(p hatchfill.Pair) (hatchfill.Pair, float64) {
	nearest, dist := p, math.Inf(1)
	visit := func(e entity.Entity) {
		q := e.NearestPoint(p)
		if d := q.Dist(p); d < dist {
			nearest, dist = q, d
		}
	}
	if h.solid {
		for _, l := range h.loops {
			for _, e := range l.Edges() {
				visit(e)
			}
		}
	} else {
		for _, e := range h.content {
			visit(e)
		}
	}
	return nearest, dist
}

// DistanceToPoint is the distance of p to the hatch. Points inside the fill
// region of a solid hatch have distance 0.
func (h *Hatch) DistanceToPoint(p hatchfill.Pair) float64 {
	if h.solid && h.SolidRegion().Contains(p) {
		return 0
	}
	_, d := h.NearestPointOnEntity(p)
	return d
}

// Move translates the hatch.
func (h *Hatch) Move(v hatchfill.Pair) {
	for _, l := range h.loops {
		l.Move(v)
	}
	h.transformed()
}

// Rotate turns the hatch around center; the pattern turns along.
func (h *Hatch) Rotate(center hatchfill.Pair, angle float64) {
	for _, l := range h.loops {
		l.Rotate(center, angle)
	}
	h.angle = hatchfill.NormAngle(h.angle + angle)
	h.transformed()
}

// Scale scales the hatch around center; the pattern scales along. A negative
// factor turns the pattern by 180°.
func (h *Hatch) Scale(center hatchfill.Pair, factor float64) {
	for _, l := range h.loops {
		l.Scale(center, factor)
	}
	h.scale *= math.Abs(factor)
	if factor < 0 {
		h.angle = hatchfill.NormAngle(h.angle + math.Pi)
	}
	h.transformed()
}

// Mirror reflects the hatch at the axis through axis1 and axis2.
func (h *Hatch) Mirror(axis1, axis2 hatchfill.Pair) {
	for _, l := range h.loops {
		l.Mirror(axis1, axis2)
	}
	h.angle = hatchfill.NormAngle(h.angle + 2*axis1.AngleTo(axis2))
	h.transformed()
}

func (h *Hatch) transformed() {
	if h.solid {
		h.calculateBorders()
		return
	}
	h.Update()
}

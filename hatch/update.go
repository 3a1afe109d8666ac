package hatch

import (
	"fmt"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/hatchfill/entity"
)

// Limits of the pattern generation. Extents are in drawing units.
var (
	// MaxAreaRatio caps the ratio of boundary area to pattern cell area.
	MaxAreaRatio = 1.0e4
	// MinExtent and MaxExtent bound the extents of boundary and pattern cell.
	MinExtent = 1.0e-6
	MaxExtent = 1.0e100
	// ToleranceAngle is the minimum angular span of a cut arc.
	ToleranceAngle = 1.0e-8
	// SecondSampleFraction positions the second containment sample of a cut
	// segment, as a fraction of its length.
	SecondSampleFraction = 1 / 2.5
)

// Update regenerates the pattern content from the boundary loops and the
// pattern settings, and sets the update status.
//
// Update is a no-op if it is re-entered during an update pass, if updates
// are disabled, or if the hatch is undone. In these cases the status is
// left unchanged.
func (h *Hatch) Update() {
	if h.updateRunning {
		tracer().Debugf("hatch update already running, skipped")
		return
	}
	if !h.updateEnabled || h.undone {
		return
	}
	h.updateRunning = true
	defer func() { h.updateRunning = false }()

	h.content = nil
	if h.solid {
		h.calculateBorders()
		h.status, h.lastErr = Ok, nil
		return
	}
	content, status, err := h.generate()
	if err != nil {
		tracer().Infof("hatch update: %v", err)
	}
	h.content = content
	h.calculateBorders()
	h.status, h.lastErr = status, err
}

// Validate optimizes every boundary loop into a closed cycle. Loops may be
// reordered and edges reversed.
func (h *Hatch) Validate() bool {
	if err := h.validate(); err != nil {
		tracer().Infof("hatch contour: %v", err)
		return false
	}
	return true
}

func (h *Hatch) validate() error {
	if len(h.loops) == 0 {
		return failure(InvalidContour, "no boundary loops")
	}
	for i, l := range h.loops {
		if err := l.Optimize(); err != nil {
			return fmt.Errorf("%w: loop %d: %w", ErrInvalidContour, i, err)
		}
	}
	return nil
}

// generate runs the pattern pipeline. Nothing of the hatch is changed but
// the loops' edge order.
func (h *Hatch) generate() ([]entity.Entity, UpdateError, error) {
	if err := h.validate(); err != nil {
		return nil, InvalidContour, err
	}
	if h.library == nil {
		return nil, PatternNotFound, failure(PatternNotFound, "no pattern library")
	}
	tmpl := h.library.RequestPattern(h.patternName)
	if tmpl == nil {
		return nil, PatternNotFound, failure(PatternNotFound, "%q", h.patternName)
	}
	tmpl.Scale(h.scale)
	cell := tmpl.Cell()
	bounds := h.derotatedBounds()
	if status, err := checkExtents(bounds, cell); err != nil {
		return nil, status, err
	}
	tiles := TileRange(bounds, cell)
	tracer().Debugf("pattern %s: cell %v, boundary %v, tiles %v", tmpl.Name, cell, bounds, tiles)
	carpet := BuildCarpet(tmpl, tiles, h.angle)
	cuts := CutLines(carpet, h.loops)
	kept := FilterInside(cuts, h.loops)
	tracer().Debugf("carpet of %d primitives, %d cut segments, %d kept", len(carpet), len(cuts), len(kept))
	content := make([]entity.Entity, 0, len(kept))
	for _, e := range kept {
		e.SetAttributes(h.attr)
		content = append(content, e)
	}
	return content, Ok, nil
}

// derotatedBounds is the bounding box of the boundary loops in a frame
// rotated by the hatch angle.
func (h *Hatch) derotatedBounds() hatchfill.Box {
	box := hatchfill.EmptyBox()
	for _, l := range h.loops {
		c := l.Clone()
		c.Rotate(hatchfill.Origin, -h.angle)
		box = box.Union(c.BoundingBox())
	}
	return box
}

func checkExtents(bounds, cell hatchfill.Box) (UpdateError, error) {
	bw, bh := bounds.Width(), bounds.Height()
	cw, ch := cell.Width(), cell.Height()
	for _, x := range []float64{bw, bh, cw, ch} {
		if !(x >= MinExtent && x <= MaxExtent) {
			return TooSmall, failure(TooSmall, "boundary %gx%g, cell %gx%g", bw, bh, cw, ch)
		}
	}
	if ratio := (bw * bh) / (cw * ch); ratio > MaxAreaRatio {
		return AreaTooBig, failure(AreaTooBig, "area ratio %g", ratio)
	}
	return Ok, nil
}

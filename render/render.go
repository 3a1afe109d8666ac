// Package render defines the drawing surface hatches are drawn onto, along
// with two implementations: a Recorder which keeps the drawing operations
// for inspection, and a Raster which paints into an RGBA image.
package render

import (
	"github.com/npillmayer/hatchfill/entity"
	"github.com/npillmayer/hatchfill/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hatchfill.render'
func tracer() tracing.Trace {
	return tracing.Select("hatchfill.render")
}

// Target is a drawing surface.
type Target interface {
	// Stroke draws the outline of a curve primitive.
	Stroke(e entity.Entity, a entity.Attributes)
	// Fill paints a region under the even-odd rule.
	Fill(r *polygon.Region, a entity.Attributes)
}

// OpKind tells strokes from fills.
type OpKind int8

// Kinds of drawing operations.
const (
	StrokeOp OpKind = iota
	FillOp
)

// Op is a recorded drawing operation.
type Op struct {
	Kind       OpKind
	Entity     entity.Entity   // for strokes
	Region     *polygon.Region // for fills
	Attributes entity.Attributes
}

// Recorder is a Target which records every operation.
type Recorder struct {
	Ops []Op
}

var _ Target = (*Recorder)(nil)

// Stroke records a copy of e.
func (rec *Recorder) Stroke(e entity.Entity, a entity.Attributes) {
	rec.Ops = append(rec.Ops, Op{Kind: StrokeOp, Entity: e.Clone(), Attributes: a})
}

// Fill records r.
func (rec *Recorder) Fill(r *polygon.Region, a entity.Attributes) {
	rec.Ops = append(rec.Ops, Op{Kind: FillOp, Region: r, Attributes: a})
}

// Count returns the number of recorded operations of a kind.
func (rec *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range rec.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded operations.
func (rec *Recorder) Reset() {
	rec.Ops = rec.Ops[:0]
}

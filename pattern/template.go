// Package pattern holds hatch pattern templates and a library to look them
// up by name.
//
// A template is one repeat cell of a pattern: a set of curve primitives
// together with the cell's reference corner and size. Tiling the cell along
// both axes yields the pattern.
package pattern

import (
	"errors"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/hatchfill/entity"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hatchfill.pattern'
func tracer() tracing.Trace {
	return tracing.Select("hatchfill.pattern")
}

var (
	// ErrPatternNotFound indicates a pattern name unknown to the library.
	ErrPatternNotFound = errors.New("pattern not found")
	// ErrDuplicatePattern indicates a pattern name already registered.
	ErrDuplicatePattern = errors.New("pattern already registered")
	// ErrEmptyTemplate indicates a template without primitives or name.
	ErrEmptyTemplate = errors.New("pattern template is empty")
)

// Template is one repeat cell of a hatch pattern.
type Template struct {
	Name     string
	Entities []entity.Entity
	// CellOrigin is the reference corner of the cell, CellSize its extent.
	// A zero CellSize means the cell is the primitives' bounding box.
	CellOrigin hatchfill.Pair
	CellSize   hatchfill.Pair
}

// NewTemplate creates a template whose cell is the bounding box of its
// primitives.
func NewTemplate(name string, entities ...entity.Entity) *Template {
	return &Template{Name: name, Entities: entities}
}

// WithCell sets an explicit cell and returns the template.
func (t *Template) WithCell(origin, size hatchfill.Pair) *Template {
	t.CellOrigin, t.CellSize = origin, size
	return t
}

// Cell returns the tiling cell of the template.
func (t *Template) Cell() hatchfill.Box {
	if t.CellSize != 0 {
		return hatchfill.BoxOf(t.CellOrigin, t.CellOrigin+t.CellSize)
	}
	box := hatchfill.EmptyBox()
	for _, e := range t.Entities {
		box = box.Union(e.BoundingBox())
	}
	return box
}

// Clone creates a deep copy.
func (t *Template) Clone() *Template {
	c := &Template{
		Name:       t.Name,
		Entities:   make([]entity.Entity, len(t.Entities)),
		CellOrigin: t.CellOrigin,
		CellSize:   t.CellSize,
	}
	for i, e := range t.Entities {
		c.Entities[i] = e.Clone()
	}
	return c
}

// Scale scales primitives and cell uniformly around the origin.
func (t *Template) Scale(factor float64) {
	for _, e := range t.Entities {
		e.Scale(hatchfill.Origin, factor)
	}
	t.CellOrigin = t.CellOrigin.Scaled(factor)
	t.CellSize = t.CellSize.Scaled(factor)
}

// Move translates primitives and cell.
func (t *Template) Move(v hatchfill.Pair) {
	for _, e := range t.Entities {
		e.Move(v)
	}
	t.CellOrigin += v
}

// Rotate turns the primitives around the origin. The cell is not rotated:
// it keeps describing the template in its unrotated frame.
func (t *Template) Rotate(angle float64) {
	for _, e := range t.Entities {
		e.Rotate(hatchfill.Origin, angle)
	}
}

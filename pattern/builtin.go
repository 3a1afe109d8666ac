package pattern

import (
	"math"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/hatchfill/entity"
)

// ansiSpacing is the line distance of the ANSI patterns, 1/8 inch in mm.
const ansiSpacing = 3.175

func builtins() []*Template {
	p := hatchfill.P
	line := func(x0, y0, x1, y1 float64) entity.Entity {
		return entity.NewLine(p(x0, y0), p(x1, y1))
	}
	s := ansiSpacing
	return []*Template{
		NewTemplate("LINE", line(0, 0, 1, 0)).WithCell(hatchfill.Origin, p(1, 0.125)),
		NewTemplate("ANSI31", line(0, 0, s, s)),
		NewTemplate("ANSI37", line(0, 0, s, s), line(0, s, s, 0)),
		NewTemplate("SQUARE", line(0, 0, 1, 0), line(0, 0, 0, 1)).WithCell(hatchfill.Origin, p(1, 1)),
		NewTemplate("BRICK",
			line(0, 0, 2, 0), line(0, 0.5, 2, 0.5),
			line(0, 0, 0, 0.5), line(1, 0.5, 1, 1),
		).WithCell(hatchfill.Origin, p(2, 1)),
		NewTemplate("CIRCLES", entity.NewCircle(p(0.5, 0.5), 0.25)).WithCell(hatchfill.Origin, p(1, 1)),
		NewTemplate("SCALES", entity.NewArc(p(0.5, 0), 0.5, 0, math.Pi, false)).WithCell(hatchfill.Origin, p(1, 0.5)),
		NewTemplate("ELLIPSES", entity.NewEllipse(p(0.5, 0.5), p(0.4, 0), 0.5, 0, 0, false)).WithCell(hatchfill.Origin, p(1, 1)),
	}
}

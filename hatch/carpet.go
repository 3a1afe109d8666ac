package hatch

import (
	"fmt"
	"math"

	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/hatchfill/entity"
	"github.com/npillmayer/hatchfill/pattern"
)

// Tiles is a range of tile indices [PX1,PX2) × [PY1,PY2).
type Tiles struct {
	PX1, PX2 int
	PY1, PY2 int
	// CellWidth and CellHeight are the tile sizes.
	CellWidth, CellHeight float64
}

// Count is the number of tiles in the range.
func (t Tiles) Count() int {
	return (t.PX2 - t.PX1) * (t.PY2 - t.PY1)
}

func (t Tiles) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", t.PX1, t.PX2, t.PY1, t.PY2)
}

// TileRange computes the tiles of a cell needed to cover bounds, with tile
// (0,0) starting at the origin.
func TileRange(bounds, cell hatchfill.Box) Tiles {
	w, h := cell.Width(), cell.Height()
	return Tiles{
		PX1:        int(math.Floor(bounds.Min.X() / w)),
		PX2:        int(math.Ceil(bounds.Max.X() / w)),
		PY1:        int(math.Floor(bounds.Min.Y() / h)),
		PY2:        int(math.Ceil(bounds.Max.Y() / h)),
		CellWidth:  w,
		CellHeight: h,
	}
}

// BuildCarpet lays out copies of the template's primitives over all tiles,
// with the tile axes turned by angle. The template's cell is moved to the
// origin and the template is rotated in place.
func BuildCarpet(tmpl *pattern.Template, tiles Tiles, angle float64) []entity.Entity {
	tmpl.Move(-tmpl.Cell().Min)
	tmpl.Rotate(angle)
	rot := hatchfill.Rotation(angle)
	dx := rot.Transform(hatchfill.P(tiles.CellWidth, 0))
	dy := rot.Transform(hatchfill.P(0, tiles.CellHeight))
	carpet := make([]entity.Entity, 0, tiles.Count()*len(tmpl.Entities))
	for px := tiles.PX1; px < tiles.PX2; px++ {
		for py := tiles.PY1; py < tiles.PY2; py++ {
			offset := (dx.Scaled(float64(px)) + dy.Scaled(float64(py))).Zap()
			for _, e := range tmpl.Entities {
				c := e.Clone()
				c.Move(offset)
				carpet = append(carpet, c)
			}
		}
	}
	return carpet
}

package hatch

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/hatchfill"
	"github.com/npillmayer/hatchfill/entity"
)

// crossing is a point on a carpet primitive. angle is the parameter angle
// for curved primitives.
type crossing struct {
	pos   hatchfill.Pair
	angle float64
}

// crossings orders the crossings of one primitive by the distance travelled
// from its start: the Euclidean distance for lines, the angular offset in the
// primitive's direction sense for curved kinds.
type crossings struct {
	m      *treemap.Map
	length float64 // travel key of the end point
}

func newCrossings(start, end crossing, length float64) *crossings {
	cs := &crossings{m: treemap.NewWith(utils.Float64Comparator), length: length}
	cs.m.Put(0.0, start)
	cs.m.Put(length, end)
	return cs
}

// add inserts a crossing unless it coincides with one of its neighbours.
// Keys outside the primitive belong to an end point and are dropped.
func (cs *crossings) add(key float64, c crossing) {
	if key <= 0 || key >= cs.length {
		return
	}
	if _, v := cs.m.Floor(key); v != nil && v.(crossing).pos.Equal(c.pos) {
		return
	}
	if _, v := cs.m.Ceiling(key); v != nil && v.(crossing).pos.Equal(c.pos) {
		return
	}
	cs.m.Put(key, c)
}

// travel is the angular offset of a from the start angle of c.
func travel(c entity.Curved, a float64) float64 {
	if c.IsReversed() {
		return hatchfill.AngleDiff(a, c.StartAngle())
	}
	return hatchfill.AngleDiff(c.StartAngle(), a)
}

// CutLines splits every carpet primitive at its crossings with the loops'
// edges. Degenerate pieces are dropped; primitives without crossings are
// returned unsplit.
func CutLines(carpet []entity.Entity, loops []*entity.Loop) []entity.Entity {
	var cuts []entity.Entity
	for _, p := range carpet {
		var pts []hatchfill.Pair
		for _, l := range loops {
			for _, edge := range l.Edges() {
				pts = append(pts, entity.Intersect(p, edge, true)...)
			}
		}
		switch x := p.(type) {
		case *entity.Line:
			cuts = append(cuts, cutLine(x, pts)...)
		case entity.Curved:
			cuts = append(cuts, cutCurve(x, pts)...)
		}
	}
	return cuts
}

func cutLine(l *entity.Line, pts []hatchfill.Pair) []entity.Entity {
	length := l.Length()
	if hatchfill.Is0(length) {
		return nil
	}
	cs := newCrossings(crossing{pos: l.Start}, crossing{pos: l.End}, length)
	for _, p := range pts {
		cs.add(l.Start.Dist(p), crossing{pos: p})
	}
	if cs.m.Size() == 2 {
		return []entity.Entity{l.Clone()}
	}
	var segs []entity.Entity
	values := cs.m.Values()
	for i := 1; i < len(values); i++ {
		a, b := values[i-1].(crossing), values[i].(crossing)
		if a.pos.Dist(b.pos) < hatchfill.Epsilon {
			continue
		}
		seg := entity.NewLine(a.pos, b.pos)
		seg.SetAttributes(l.Attributes())
		segs = append(segs, seg)
	}
	return segs
}

func cutCurve(c entity.Curved, pts []hatchfill.Pair) []entity.Entity {
	ext := c.AngleLength()
	start := crossing{pos: c.StartPoint(), angle: c.StartAngle()}
	endAngle := c.StartAngle() + ext
	if c.IsReversed() {
		endAngle = c.StartAngle() - ext
	}
	end := crossing{pos: c.EndPoint(), angle: hatchfill.NormAngle(endAngle)}
	cs := newCrossings(start, end, ext)
	for _, p := range pts {
		a := c.AngleAt(p)
		cs.add(travel(c, a), crossing{pos: p, angle: a})
	}
	if cs.m.Size() == 2 {
		return []entity.Entity{c.Clone()}
	}
	var segs []entity.Entity
	keys, values := cs.m.Keys(), cs.m.Values()
	for i := 1; i < len(values); i++ {
		if keys[i].(float64)-keys[i-1].(float64) < ToleranceAngle {
			continue
		}
		a, b := values[i-1].(crossing), values[i].(crossing)
		segs = append(segs, c.SubArc(a.angle, b.angle))
	}
	return segs
}

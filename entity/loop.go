package entity

import (
	"errors"
	"fmt"

	"github.com/npillmayer/hatchfill"
)

var (
	// ErrEmptyLoop indicates a loop without any (non-degenerate) edges.
	ErrEmptyLoop = errors.New("loop has no edges")
	// ErrOpenLoop indicates a loop whose edges do not connect into a cycle.
	ErrOpenLoop = errors.New("loop is not closed")
	// ErrInconsistentEdges indicates edges which do not form one single cycle,
	// e.g. a full circle mixed with other edges, or two separate cycles.
	ErrInconsistentEdges = errors.New("loop has inconsistent edges")
)

// ContourTolerance is the maximum gap between the end point of an edge and
// the start point of its successor for the two to count as connected.
var ContourTolerance float64 = 1.0e-6

// Loop is an ordered sequence of edges forming one closed boundary of a
// hatch, either the outer border or an island.
type Loop struct {
	edges []Entity
}

// NewLoop creates a loop from edges. The edges are not checked until
// Optimize is called.
func NewLoop(edges ...Entity) *Loop {
	l := &Loop{}
	for _, e := range edges {
		l.Add(e)
	}
	return l
}

// Add appends an edge. nil edges are ignored.
func (l *Loop) Add(e Entity) {
	if e != nil {
		l.edges = append(l.edges, e)
	}
}

// Count is the number of edges.
func (l *Loop) Count() int {
	return len(l.edges)
}

// Edges returns the edges in traversal order. The slice is shared with
// the loop.
func (l *Loop) Edges() []Entity {
	return l.edges
}

// Optimize orders the edges into one closed, directed cycle, starting with
// the first edge in its given direction. Edges are reversed where necessary
// and degenerate edges are dropped. A single closed primitive (circle, full
// arc or full ellipse) is a loop by itself.
//
// On error, the order of edges is left unchanged, though single edges may
// have been reversed.
func (l *Loop) Optimize() error {
	var rest []Entity
	for _, e := range l.edges {
		if !IsClosed(e) && hatchfill.Is0(e.Length()) {
			tracer().Debugf("dropping degenerate edge %s", Describe(e))
			continue
		}
		rest = append(rest, e)
	}
	if len(rest) == 0 {
		return ErrEmptyLoop
	}
	for _, e := range rest {
		if IsClosed(e) {
			if len(rest) == 1 {
				l.edges = rest
				return nil
			}
			return fmt.Errorf("%w: closed %s mixed with %d other edges", ErrInconsistentEdges,
				e.Kind(), len(rest)-1)
		}
	}
	first := rest[0]
	chain := []Entity{first}
	rest = rest[1:]
	for len(rest) > 0 {
		end := chain[len(chain)-1].EndPoint()
		if end.EqualTol(first.StartPoint(), ContourTolerance) {
			return fmt.Errorf("%w: cycle closes with %d edges left over", ErrInconsistentEdges, len(rest))
		}
		found := -1
		for i, e := range rest {
			if e.StartPoint().EqualTol(end, ContourTolerance) {
				found = i
				break
			}
			if e.EndPoint().EqualTol(end, ContourTolerance) {
				e.Reverse()
				found = i
				break
			}
		}
		if found < 0 {
			return fmt.Errorf("%w: no edge connects to %v", ErrOpenLoop, end)
		}
		chain = append(chain, rest[found])
		rest = append(rest[:found], rest[found+1:]...)
	}
	if end := chain[len(chain)-1].EndPoint(); !end.EqualTol(first.StartPoint(), ContourTolerance) {
		return fmt.Errorf("%w: gap between %v and %v", ErrOpenLoop, end, first.StartPoint())
	}
	l.edges = chain
	return nil
}

// IsClosed checks if the edges, in their current order, form a closed cycle.
func (l *Loop) IsClosed() bool {
	n := len(l.edges)
	if n == 0 {
		return false
	}
	if n == 1 {
		return IsClosed(l.edges[0])
	}
	for i, e := range l.edges {
		next := l.edges[(i+1)%n]
		if !e.EndPoint().EqualTol(next.StartPoint(), ContourTolerance) {
			return false
		}
	}
	return true
}

// AreaLineIntegral is the signed area enclosed by the loop: positive for
// counter-clockwise traversal, negative for clockwise.
func (l *Loop) AreaLineIntegral() float64 {
	a := 0.0
	for _, e := range l.edges {
		a += AreaLineIntegral(e)
	}
	return a
}

// BoundingBox of all edges.
func (l *Loop) BoundingBox() hatchfill.Box {
	box := hatchfill.EmptyBox()
	for _, e := range l.edges {
		box = box.Union(e.BoundingBox())
	}
	return box
}

// Clone creates a deep copy.
func (l *Loop) Clone() *Loop {
	c := &Loop{edges: make([]Entity, len(l.edges))}
	for i, e := range l.edges {
		c.edges[i] = e.Clone()
	}
	return c
}

func (l *Loop) Move(v hatchfill.Pair) {
	for _, e := range l.edges {
		e.Move(v)
	}
}

func (l *Loop) Rotate(center hatchfill.Pair, angle float64) {
	for _, e := range l.edges {
		e.Rotate(center, angle)
	}
}

func (l *Loop) Scale(center hatchfill.Pair, factor float64) {
	for _, e := range l.edges {
		e.Scale(center, factor)
	}
}

// Mirror reflects all edges; this reverses the loop's orientation.
func (l *Loop) Mirror(axis1, axis2 hatchfill.Pair) {
	for _, e := range l.edges {
		e.Mirror(axis1, axis2)
	}
}

// AreaLineIntegral is ∮ x dy along a single primitive, i.e. its signed
// contribution to the area of a loop it is part of.
func AreaLineIntegral(e Entity) float64 {
	switch x := e.(type) {
	case *Line:
		return 0.5 * (x.Start.X() + x.End.X()) * (x.End.Y() - x.Start.Y())
	case Curved:
		return x.conic().areaIntegral()
	}
	return 0
}

// Approximate returns a polyline following e from its start point to its
// end point, within Flatness.
func Approximate(e Entity) []hatchfill.Pair {
	switch x := e.(type) {
	case *Line:
		return []hatchfill.Pair{x.Start, x.End}
	case Curved:
		return x.conic().polyline()
	}
	return nil
}

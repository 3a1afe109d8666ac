package hatch

import (
	"github.com/npillmayer/hatchfill/entity"
)

// FilterInside keeps the cut segments lying inside the loops. A segment is
// tested at its middle point and, unless that is strictly inside, at a
// second point SecondSampleFraction along its length. It is kept if either
// sample is strictly inside.
func FilterInside(cuts []entity.Entity, loops []*entity.Loop) []entity.Entity {
	var kept []entity.Entity
	for _, s := range cuts {
		if isInside(s, loops) {
			kept = append(kept, s)
		}
	}
	return kept
}

func isInside(s entity.Entity, loops []*entity.Loop) bool {
	if entity.Locate(s.MiddlePoint(), loops) == entity.Inside {
		return true
	}
	p := s.PointAtDistance(s.Length() * SecondSampleFraction)
	return entity.Locate(p, loops) == entity.Inside
}

/*
Package hatch fills closed boundaries with a repeating pattern or with a
solid fill.

A Hatch owns one or more boundary loops (an outer border plus islands) and
the name of a pattern template. An update pass validates the loops, tiles
the pattern cell over the boundary's extent (the "carpet"), cuts every carpet
primitive at its crossings with the boundary, and keeps the pieces lying
inside. The kept pieces are the hatch's pattern content.

	h := hatch.NewHatch(false, 1.0, 0.0, "ANSI31", pattern.NewLibrary())
	h.AddLoop(entity.NewLoop(entity.NewCircle(hatchfill.P(0, 0), 10)))
	h.Update()
	if h.UpdateError() != hatch.Ok {
		...
	}

Solid hatches skip pattern generation. Drawing them assembles a fill region
from the boundary loops.

The package is not safe for concurrent use. Updates re-entered from within
an update pass on the same call stack are skipped.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hatchfill.hatch'
func tracer() tracing.Trace {
	return tracing.Select("hatchfill.hatch")
}

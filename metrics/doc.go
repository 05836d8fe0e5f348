/*
Package metrics provides some pre-manufactured measures on forest trees.

All measures are derived from a single walk over a tree's Euler tour: the
bracket structure of the tour encodes the tree shape, so depth counters
over open brackets recover heights, element depths and branching data
without touching forest internals.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'forest'
func tracer() tracing.Trace {
	return tracing.Select("forest")
}

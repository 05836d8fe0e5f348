/*
Package forest maintains connectivity over a dynamic forest of unrooted
trees.

A forest holds disjoint trees over caller-supplied elements. Clients add
and remove single elements, link elements living in different trees into
one tree, cut an existing tree edge into two trees, and ask whether two
elements currently belong to the same tree. All of these run in O(log n)
sequence operations, plus — for link — a pointer-fixup walk proportional
to the re-rooted path.

Internally every tree is linearized as an Euler tour: a walk that enters
each element once and returns over each edge once. The tour of a tree with
k>1 elements holds exactly 2k−1 occurrences (one entry per element plus
one return per edge); an isolated element's tour holds a single entry.
Linking splices one tour into another, cutting splits a contiguous run out
of a tour — both a bounded number of split/merge operations on the
underlying balanced sequence (package seq). Tree identity is the canonical
minimum occurrence of a tour, so connectivity is two O(log n) walks and a
pointer comparison.

Forests are single-threaded: there is no internal locking, callers
serialize access themselves. Violated structural preconditions (an absent
element, cutting a non-edge, linking an already-connected pair) are
surfaced as errors and leave the forest unchanged.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'forest'
func tracer() tracing.Trace {
	return tracing.Select("forest")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// ForestError is an error type for the forest module
type ForestError string

func (e ForestError) Error() string {
	return string(e)
}

// ErrDuplicateVertex signals adding an element that is already present.
const ErrDuplicateVertex = ForestError("vertex already present in forest")

// ErrVertexNotFound is flagged whenever an operation references an element
// that is not part of the forest.
const ErrVertexNotFound = ForestError("vertex not found")

// ErrNotATreeEdge signals cutting a pair of elements that are not joined by
// a current tree edge.
const ErrNotATreeEdge = ForestError("vertices are not joined by a tree edge")

// ErrLinkWouldCycle signals linking two elements that already live in the
// same tree, which would close a cycle.
const ErrLinkWouldCycle = ForestError("vertices already connected; link would create a cycle")

// ErrCompleted signals that a forest builder has already completed a forest and
// it's illegal to stage further vertices or edges.
const ErrCompleted = ForestError("forbidden to stage edits; forest has been completed")

package forest

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/forest/seq"
)

// step is the payload of a single tour occurrence: which element the walk
// is at, and whether it enters the element's subtree or returns into it
// from a child.
type step[K comparable] struct {
	v     *vnode[K]
	enter bool
}

// vnode is the per-element record of a forest.
//
// first is the element's entry occurrence, last the final occurrence of
// the element in its tour (equal to first for elements without children
// in the current orientation). parent follows the current root
// orientation and is nil for a tree's root.
type vnode[K comparable] struct {
	id        K
	parent    *vnode[K]
	neighbors map[*vnode[K]]struct{}
	first     *seq.Occ[step[K]]
	last      *seq.Occ[step[K]]
}

// tree is one connected component: its tour and its designated root.
type tree[K comparable] struct {
	tour *seq.Seq[step[K]]
	root *vnode[K]
}

// Forest maintains a dynamic collection of disjoint trees over elements
// of a comparable type K.
//
// A forest created by
//
//	forest.New[K]()
//
// is a valid empty object. Forests are not safe for concurrent use.
//
//	Operation     |   Cost
//	--------------+------------------------------
//	Add, Remove   |   O(log n)
//	Connected     |   O(log n)
//	Cut           |   O(log n)
//	Link          |   O(log n) + re-rooted path
type Forest[K comparable] struct {
	vertices map[K]*vnode[K]
	trees    map[*seq.Occ[step[K]]]*tree[K] // keyed by the tour's canonical minimum
	sink     EventSink
}

// New creates an empty forest.
func New[K comparable]() *Forest[K] {
	return &Forest[K]{
		vertices: make(map[K]*vnode[K]),
		trees:    make(map[*seq.Occ[step[K]]]*tree[K]),
	}
}

// Order returns the number of elements in the forest.
func (f *Forest[K]) Order() int {
	return len(f.vertices)
}

// TreeCount returns the number of disjoint trees.
func (f *Forest[K]) TreeCount() int {
	return len(f.trees)
}

// Has reports whether x is an element of the forest.
func (f *Forest[K]) Has(x K) bool {
	_, ok := f.vertices[x]
	return ok
}

// Add inserts x as a new isolated element, forming a tree of its own.
// Inserting a present element returns ErrDuplicateVertex.
func (f *Forest[K]) Add(x K) error {
	if _, ok := f.vertices[x]; ok {
		return ErrDuplicateVertex
	}
	vn := &vnode[K]{
		id:        x,
		neighbors: make(map[*vnode[K]]struct{}),
	}
	t := &tree[K]{tour: seq.New[step[K]]()}
	vn.first = t.tour.AddMax(step[K]{v: vn, enter: true})
	vn.last = vn.first
	t.root = vn
	f.vertices[x] = vn
	f.trees[vn.first] = t
	tracer().Debugf("forest: added vertex %v", x)
	f.publish(Event{Op: OpAdd, U: x})
	return nil
}

// Remove deletes x from the forest. Incident tree edges are cut first, so
// every former neighbor of x ends up as the root of its own tree.
func (f *Forest[K]) Remove(x K) error {
	vn, ok := f.vertices[x]
	if !ok {
		return ErrVertexNotFound
	}
	for len(vn.neighbors) > 0 {
		var n *vnode[K]
		for n = range vn.neighbors {
			break
		}
		f.cutEdge(vn, n)
	}
	t := f.treeOf(vn)
	assert(t != nil, "remove: isolated vertex has no registered tree")
	delete(f.trees, vn.first)
	delete(f.vertices, x)
	tracer().Debugf("forest: removed vertex %v", x)
	f.publish(Event{Op: OpRemove, U: x})
	return nil
}

// Connected reports whether u and v currently belong to the same tree.
func (f *Forest[K]) Connected(u, v K) (bool, error) {
	un, ok := f.vertices[u]
	if !ok {
		return false, ErrVertexNotFound
	}
	vn, ok := f.vertices[v]
	if !ok {
		return false, ErrVertexNotFound
	}
	return un.first.First() == vn.first.First(), nil
}

// Neighbors returns the elements joined to x by a tree edge.
func (f *Forest[K]) Neighbors(x K) ([]K, error) {
	vn, ok := f.vertices[x]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ns := make([]K, 0, len(vn.neighbors))
	for n := range vn.neighbors {
		ns = append(ns, n.id)
	}
	return ns, nil
}

// Degree returns the number of tree edges incident to x.
func (f *Forest[K]) Degree(x K) (int, error) {
	vn, ok := f.vertices[x]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return len(vn.neighbors), nil
}

// Root returns the designated root of the tree containing x.
func (f *Forest[K]) Root(x K) (K, error) {
	vn, ok := f.vertices[x]
	if !ok {
		var zero K
		return zero, ErrVertexNotFound
	}
	t := f.treeOf(vn)
	assert(t != nil, "vertex belongs to no registered tree")
	return t.root.id, nil
}

// TreeSize returns the number of elements in the tree containing x.
//
// A tour over k joined elements holds 2k−1 occurrences, so the size
// falls out of the tour length. O(tree size).
func (f *Forest[K]) TreeSize(x K) (int, error) {
	vn, ok := f.vertices[x]
	if !ok {
		return 0, ErrVertexNotFound
	}
	t := f.treeOf(vn)
	assert(t != nil, "vertex belongs to no registered tree")
	occs := t.tour.Len()
	if occs <= 1 {
		return 1, nil
	}
	return (occs + 1) / 2, nil
}

// Visit is one stop of an Euler tour: the element reached and whether the
// walk enters its subtree or returns into it from below.
type Visit[K comparable] struct {
	Element  K
	Entering bool
}

// Tour returns an iterator over the Euler tour of the tree containing x,
// starting at the designated root. Diagnostic surface; mutating the
// forest during an in-progress traversal is undefined.
func (f *Forest[K]) Tour(x K) (iter.Seq[Visit[K]], error) {
	vn, ok := f.vertices[x]
	if !ok {
		return nil, ErrVertexNotFound
	}
	t := f.treeOf(vn)
	assert(t != nil, "vertex belongs to no registered tree")
	return func(yield func(Visit[K]) bool) {
		for o := range t.tour.Range() {
			st := o.Value()
			if !yield(Visit[K]{Element: st.v.id, Entering: st.enter}) {
				return
			}
		}
	}, nil
}

// treeOf resolves the registered tree of a vertex through the canonical
// minimum of its tour.
func (f *Forest[K]) treeOf(vn *vnode[K]) *tree[K] {
	return f.trees[vn.first.First()]
}

// --- Edit events ------------------------------------------------------

// Op enumerates forest edit operations for event reporting.
type Op int8

const (
	OpAdd Op = iota
	OpRemove
	OpLink
	OpCut
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpLink:
		return "link"
	case OpCut:
		return "cut"
	}
	return "<unknown op>"
}

// Event describes one successful forest mutation. V is nil for the
// single-element operations add and remove.
type Event struct {
	Op   Op
	U, V any
}

// EventSink receives edit events. Publish is called synchronously after
// each successful mutation and must not call back into the forest.
type EventSink interface {
	Publish(Event)
}

// Notify installs sink as the receiver of edit events. A nil sink stops
// event reporting.
func (f *Forest[K]) Notify(sink EventSink) {
	f.sink = sink
}

func (f *Forest[K]) publish(ev Event) {
	if f.sink != nil {
		f.sink.Publish(ev)
	}
}

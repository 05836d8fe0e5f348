package forest

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/forest/seq"

// Link joins the trees of u and v with a new tree edge (u,v). v's tree is
// re-rooted at v first, then its tour is spliced into u's tour right
// after u's final occurrence. u's tree keeps its designated root.
//
// Linking two elements of the same tree would close a cycle and returns
// ErrLinkWouldCycle without touching the forest.
func (f *Forest[K]) Link(u, v K) error {
	un, ok := f.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	vn, ok := f.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}
	ut := f.treeOf(un)
	vt := f.treeOf(vn)
	assert(ut != nil && vt != nil, "link: vertex belongs to no registered tree")
	if ut == vt {
		return ErrLinkWouldCycle
	}
	f.makeRoot(vt, vn)
	delete(f.trees, vn.first) // vt dissolves into ut
	// splice: … u ⟨v's tour⟩ return-to-u …
	suffix := ut.tour.SplitAfter(un.last)
	ut.tour.MergeAfter(vt.tour)
	ret := ut.tour.AddMax(step[K]{v: un, enter: false})
	ut.tour.MergeAfter(suffix)
	un.last = ret
	vn.parent = un
	un.neighbors[vn] = struct{}{}
	vn.neighbors[un] = struct{}{}
	tracer().Debugf("forest: linked %v – %v", u, v)
	f.publish(Event{Op: OpLink, U: u, V: v})
	return nil
}

// Cut removes the tree edge between u and v, splitting their tree in two.
// The half without the old root becomes a tree rooted at whichever of u,v
// it contains. The pair may be given in either orientation; a pair not
// joined by a tree edge returns ErrNotATreeEdge.
func (f *Forest[K]) Cut(u, v K) error {
	un, ok := f.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	vn, ok := f.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}
	if _, ok := un.neighbors[vn]; !ok {
		return ErrNotATreeEdge
	}
	f.cutEdge(un, vn)
	tracer().Debugf("forest: cut %v – %v", u, v)
	f.publish(Event{Op: OpCut, U: u, V: v})
	return nil
}

// cutEdge severs the tree edge between neighbors a and b. The child side
// is excised from the shared tour and registered as a tree of its own,
// rooted at the child.
func (f *Forest[K]) cutEdge(a, b *vnode[K]) {
	var p, c *vnode[K]
	switch {
	case b.parent == a:
		p, c = a, b
	case a.parent == b:
		p, c = b, a
	default:
		assert(false, "cut: neighbors without a parent link between them")
	}
	t := f.treeOf(p)
	assert(t != nil, "cut: vertex belongs to no registered tree")

	// seam is p's occurrence right before c's subtree; it survives as p's
	// final occurrence if the excised return was it before.
	seam := c.first.Prev()
	assert(seam != nil && seam.Value().v == p, "cut: child segment not preceded by parent occurrence")

	rest := t.tour.SplitBefore(c.first)
	tail := rest.SplitAfter(c.last)
	ret, err := tail.RemoveMin()
	assert(err == nil, "cut: child segment not followed by return occurrence")
	assert(ret.Value().v == p && !ret.Value().enter, "cut: expected return occurrence of parent")
	t.tour.MergeAfter(tail)
	if p.last == ret {
		p.last = seam
	}

	c.parent = nil
	delete(p.neighbors, c)
	delete(c.neighbors, p)
	f.trees[c.first] = &tree[K]{tour: rest, root: c}
}

// makeRoot re-designates v as the root of tree t.
//
// The tour occurrences never move (except for one rotation of the whole
// tour), only their reading changes: along the old path v…root the
// parent links reverse and each vertex's first/last occurrences are
// re-derived from its former child segment's circular neighborhood. Cost
// is O(log n) per path vertex.
func (f *Forest[K]) makeRoot(t *tree[K], v *vnode[K]) {
	if t.root == v {
		return
	}
	r := t.root
	head := t.tour.Min() // r's entry occurrence, the registry key

	chain := []*vnode[K]{v}
	for x := v; x != r; x = x.parent {
		assert(x.parent != nil, "make-root: path does not reach the tree root")
		chain = append(chain, x.parent)
	}
	firsts := make([]*seq.Occ[step[K]], len(chain))
	lasts := make([]*seq.Occ[step[K]], len(chain))
	for i, x := range chain {
		firsts[i], lasts[i] = x.first, x.last
	}

	// the old root's closing occurrence disappears; v gets a fresh one
	closing, err := t.tour.RemoveMax()
	assert(err == nil, "make-root: tour of a multi-vertex tree is empty")
	assert(closing == r.last, "make-root: tour does not close at the old root")

	v.parent = nil
	for i := 1; i < len(chain); i++ {
		chain[i].parent = chain[i-1]
	}
	for i := 1; i < len(chain); i++ {
		x := chain[i]
		cf, cl := firsts[i-1], lasts[i-1] // old child segment of x on the path
		nf := cl.Next()
		if nf == nil {
			// circular wrap past the dropped closing, only the old root gets here
			assert(x == r, "make-root: tour wrap at an inner path vertex")
			nf = t.tour.Min()
		}
		x.first = nf
		x.last = cf.Prev()
		if nf != firsts[i] {
			// two occurrences of x swap roles: an old return becomes the
			// entry, the old entry becomes a return
			st := nf.Value()
			assert(st.v == x && !st.enter, "make-root: new entry is not an old return of the path vertex")
			st.enter = true
			nf.SetValue(st)
			ost := firsts[i].Value()
			ost.enter = false
			firsts[i].SetValue(ost)
		}
	}

	// rotate the tour to start at v and close it again
	if t.tour.Min() != v.first {
		rest := t.tour.SplitBefore(v.first)
		t.tour.MergeBefore(rest)
	}
	v.last = t.tour.AddMax(step[K]{v: v, enter: false})
	t.root = v

	delete(f.trees, head)
	f.trees[v.first] = t
}

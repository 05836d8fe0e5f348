package forest

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/forest/seq"
)

// ErrCorrupt reports a violated structural invariant found by Check.
const ErrCorrupt = ForestError("forest structure corrupted")

// Check validates the forest's structural invariants: the trees partition
// the element set, every tour is a well-bracketed Euler tour of 2k−1
// occurrences agreeing with the parent links and neighbor sets, and every
// element's cached first/last occurrences are accurate.
//
// This checker is intentionally strict and meant for tests; it walks
// every tour completely.
func (f *Forest[K]) Check() error {
	seen := make(map[*vnode[K]]bool)
	for head, t := range f.trees {
		if err := f.checkTree(head, t, seen); err != nil {
			return err
		}
	}
	if len(seen) != len(f.vertices) {
		return fmt.Errorf("%w: %d vertices registered, %d covered by tours",
			ErrCorrupt, len(f.vertices), len(seen))
	}
	for id, vn := range f.vertices {
		if !seen[vn] {
			return fmt.Errorf("%w: vertex %v not covered by any tour", ErrCorrupt, id)
		}
	}
	return nil
}

func (f *Forest[K]) checkTree(head *seq.Occ[step[K]], t *tree[K], seen map[*vnode[K]]bool) error {
	if err := t.tour.Check(); err != nil {
		return err
	}
	if t.tour.Min() != head {
		return fmt.Errorf("%w: tree registered under a stale occurrence", ErrCorrupt)
	}
	if t.root == nil || t.root.first != head {
		return fmt.Errorf("%w: tour does not start at the designated root", ErrCorrupt)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: designated root %v has a parent", ErrCorrupt, t.root.id)
	}

	var stack []*vnode[K]
	entries := 0
	occs := 0
	firsts := make(map[*vnode[K]]*seq.Occ[step[K]])
	lasts := make(map[*vnode[K]]*seq.Occ[step[K]])
	counts := make(map[*vnode[K]]int)
	for o := range t.tour.Range() {
		occs++
		st := o.Value()
		if firsts[st.v] == nil {
			firsts[st.v] = o
		}
		lasts[st.v] = o
		counts[st.v]++
		if st.enter {
			entries++
			if seen[st.v] {
				return fmt.Errorf("%w: vertex %v entered twice", ErrCorrupt, st.v.id)
			}
			seen[st.v] = true
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if st.v.parent != top {
					return fmt.Errorf("%w: vertex %v entered from %v but parented to another",
						ErrCorrupt, st.v.id, top.id)
				}
				if _, ok := top.neighbors[st.v]; !ok {
					return fmt.Errorf("%w: tour edge %v – %v missing from neighbor set",
						ErrCorrupt, top.id, st.v.id)
				}
				if _, ok := st.v.neighbors[top]; !ok {
					return fmt.Errorf("%w: neighbor sets of %v – %v asymmetric",
						ErrCorrupt, top.id, st.v.id)
				}
			} else if st.v != t.root {
				return fmt.Errorf("%w: tour opens at %v instead of the root", ErrCorrupt, st.v.id)
			}
			stack = append(stack, st.v)
			continue
		}
		if len(stack) < 2 {
			return fmt.Errorf("%w: return occurrence of %v without an open child", ErrCorrupt, st.v.id)
		}
		stack = stack[:len(stack)-1]
		if stack[len(stack)-1] != st.v {
			return fmt.Errorf("%w: return occurrence of %v does not match the open bracket",
				ErrCorrupt, st.v.id)
		}
	}
	if len(stack) != 1 || stack[0] != t.root {
		return fmt.Errorf("%w: tour brackets do not close at the root", ErrCorrupt)
	}
	if entries > 1 && occs != 2*entries-1 {
		return fmt.Errorf("%w: tour of %d vertices has %d occurrences", ErrCorrupt, entries, occs)
	}
	for vn, first := range firsts {
		if vn.first != first {
			return fmt.Errorf("%w: stale first occurrence cached for %v", ErrCorrupt, vn.id)
		}
		if vn.last != lasts[vn] {
			return fmt.Errorf("%w: stale last occurrence cached for %v", ErrCorrupt, vn.id)
		}
		children := len(vn.neighbors)
		if vn.parent != nil {
			children-- // the edge towards the parent returns into the parent, not vn
		}
		if counts[vn] != 1+children {
			return fmt.Errorf("%w: vertex %v occurs %d times, expected %d",
				ErrCorrupt, vn.id, counts[vn], 1+children)
		}
	}
	return nil
}

package seq

// Sequence surgery: split at an occurrence, merge two sequences.
//
// Split walks the path from the split occurrence up to the structural root,
// folding the hanging subtrees into a left and a right accumulate with
// join. Every level contributes O(1) joins whose cost telescopes, so a
// whole split is O(log n). Merge is a single three-way join. Neither
// operation touches occurrence handles.

// SplitAfter partitions the sequence right after o. The receiver keeps
// everything up to and including o; the returned sequence holds the rest
// (possibly empty). o must belong to the receiver.
func (s *Seq[T]) SplitAfter(o *Occ[T]) *Seq[T] {
	left, right := s.splitAt(o, true)
	s.root = left
	return &Seq[T]{root: right}
}

// SplitBefore partitions the sequence right before o. The receiver keeps
// everything preceding o (possibly nothing); the returned sequence holds o
// and the rest. o must belong to the receiver.
func (s *Seq[T]) SplitBefore(o *Occ[T]) *Seq[T] {
	left, right := s.splitAt(o, false)
	s.root = left
	return &Seq[T]{root: right}
}

// splitAt cuts the tree at o; keepPivotLeft selects the side o lands on.
func (s *Seq[T]) splitAt(o *Occ[T], keepPivotLeft bool) (left, right *Occ[T]) {
	assert(o != nil, "split called with nil occurrence")
	assert(o.root() == s.root, "split occurrence does not belong to this sequence")

	cur := o
	p := o.parent
	l, r := o.left, o.right
	if l != nil {
		l.parent = nil
	}
	if r != nil {
		r.parent = nil
	}
	o.detach()
	if keepPivotLeft {
		left = join(l, o, nil)
		right = r
	} else {
		left = l
		right = join(nil, o, r)
	}
	for p != nil {
		next := p.parent
		fromLeft := p.left == cur
		sibL, sibR := p.left, p.right
		p.detach()
		if fromLeft {
			// p and its right subtree come after the cut
			if sibR != nil {
				sibR.parent = nil
			}
			right = join(right, p, sibR)
		} else {
			if sibL != nil {
				sibL.parent = nil
			}
			left = join(sibL, p, left)
		}
		cur = p
		p = next
	}
	return left, right
}

// MergeAfter appends all of other's occurrences after the receiver's.
// other is emptied and must not be reused.
func (s *Seq[T]) MergeAfter(other *Seq[T]) {
	if other == nil || other.root == nil {
		return
	}
	s.root = concat(s.root, other.root)
	other.root = nil
}

// MergeBefore prepends all of other's occurrences before the receiver's.
// other is emptied and must not be reused.
func (s *Seq[T]) MergeBefore(other *Seq[T]) {
	if other == nil || other.root == nil {
		return
	}
	s.root = concat(other.root, s.root)
	other.root = nil
}

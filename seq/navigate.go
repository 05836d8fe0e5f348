package seq

// root walks the parent chain up to the structural tree root.
func (o *Occ[T]) root() *Occ[T] {
	r := o
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// First returns the canonical minimum occurrence of the sequence this
// occurrence currently belongs to, in O(log n).
//
// Two occurrences belong to the same sequence iff their First results are
// the same handle. This is the owner-identity query: it spares every
// occurrence a back-pointer to its sequence, which merges and splits would
// otherwise have to repair.
func (o *Occ[T]) First() *Occ[T] {
	m := o.root()
	for m.left != nil {
		m = m.left
	}
	return m
}

// Next returns the occurrence following o in sequence order, or nil if o
// is the last one.
func (o *Occ[T]) Next() *Occ[T] {
	if o.right != nil {
		m := o.right
		for m.left != nil {
			m = m.left
		}
		return m
	}
	c, p := o, o.parent
	for p != nil && p.right == c {
		c, p = p, p.parent
	}
	return p
}

// Prev returns the occurrence preceding o in sequence order, or nil if o
// is the first one.
func (o *Occ[T]) Prev() *Occ[T] {
	if o.left != nil {
		m := o.left
		for m.right != nil {
			m = m.right
		}
		return m
	}
	c, p := o, o.parent
	for p != nil && p.left == c {
		c, p = p, p.parent
	}
	return p
}

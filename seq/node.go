package seq

// Occ is one occurrence inside a sequence.
//
// An occurrence is simultaneously the caller-visible handle and the node of
// the balancing tree. Handles are never invalidated by sequence surgery;
// split and merge only relink tree pointers.
type Occ[T any] struct {
	value               T
	parent, left, right *Occ[T]
	height              int
}

// Value returns the payload carried by this occurrence.
func (o *Occ[T]) Value() T {
	return o.value
}

// SetValue replaces the payload carried by this occurrence. The sequence
// structure is unaffected.
func (o *Occ[T]) SetValue(v T) {
	o.value = v
}

func height[T any](o *Occ[T]) int {
	if o == nil {
		return 0
	}
	return o.height
}

// recalc sets the height of a node to max(left.H,right.H)+1.
func (o *Occ[T]) recalc() {
	o.height = max(height(o.left), height(o.right)) + 1
}

// detach resets a node to a fresh single-node subtree.
func (o *Occ[T]) detach() {
	o.parent, o.left, o.right = nil, nil, nil
	o.height = 1
}

// rotateLeft rotates n with its right child and returns the new subtree
// root. The returned root has a nil parent; the caller relinks it.
func rotateLeft[T any](n *Occ[T]) *Occ[T] {
	r := n.right
	assert(r != nil, "rotateLeft called without right child")
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.left = n
	n.parent = r
	r.parent = nil
	n.recalc()
	r.recalc()
	return r
}

// rotateRight rotates n with its left child, mirror of rotateLeft.
func rotateRight[T any](n *Occ[T]) *Occ[T] {
	l := n.left
	assert(l != nil, "rotateRight called without left child")
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.right = n
	n.parent = l
	l.parent = nil
	n.recalc()
	l.recalc()
	return l
}

// rebalance restores the AVL balance of a single node and returns the
// subtree root replacing it. A balance factor beyond ±2 indicates a bug in
// the surgery code, not bad input.
func rebalance[T any](n *Occ[T]) *Occ[T] {
	n.recalc()
	bf := height(n.left) - height(n.right)
	assert(bf >= -2 && bf <= 2, "rebalance: balance factor out of range")
	if bf > 1 {
		if height(n.left.left) < height(n.left.right) {
			n.left = rotateLeft(n.left)
			n.left.parent = n
		}
		return rotateRight(n)
	}
	if bf < -1 {
		if height(n.right.right) < height(n.right.left) {
			n.right = rotateRight(n.right)
			n.right.parent = n
		}
		return rotateLeft(n)
	}
	return n
}

// retrace rebalances ascending from n to the top and returns the tree root.
func retrace[T any](n *Occ[T]) *Occ[T] {
	cur := n
	var root *Occ[T]
	for cur != nil {
		p := cur.parent
		fromLeft := p != nil && p.left == cur
		m := rebalance(cur)
		if p == nil {
			m.parent = nil
			root = m
		} else if fromLeft {
			p.left = m
			m.parent = p
		} else {
			p.right = m
			m.parent = p
		}
		cur = p
	}
	return root
}

// join builds one tree from left subtree, pivot node m and right subtree,
// preserving sequence order l < m < r. Subtree arguments may be nil; m must
// be a detached single node or the root of its own subtree.
//
// This is the structural primitive underneath split and merge. Height
// differences are absorbed by descending the taller tree's spine and
// rebalancing on the way out, keeping the whole operation O(|h(l)-h(r)|).
func join[T any](l, m, r *Occ[T]) *Occ[T] {
	assert(m != nil, "join called with nil pivot")
	hl, hr := height(l), height(r)
	if hl-hr >= -1 && hl-hr <= 1 {
		return joinBalanced(l, m, r)
	}
	if hl > hr {
		return joinRight(l, m, r)
	}
	return joinLeft(l, m, r)
}

// joinBalanced links l and r directly under m.
func joinBalanced[T any](l, m, r *Occ[T]) *Occ[T] {
	m.left, m.right, m.parent = l, r, nil
	if l != nil {
		l.parent = m
	}
	if r != nil {
		r.parent = m
	}
	m.recalc()
	return m
}

// joinRight descends the right spine of the taller left tree until the
// height gap closes, then attaches m and unwinds with rebalancing.
func joinRight[T any](l, m, r *Occ[T]) *Occ[T] {
	if height(l)-height(r) <= 1 {
		return joinBalanced(l, m, r)
	}
	t := joinRight(l.right, m, r)
	l.right = t
	t.parent = l
	out := rebalance(l)
	out.parent = nil
	return out
}

// joinLeft is the mirror of joinRight for a taller right tree.
func joinLeft[T any](l, m, r *Occ[T]) *Occ[T] {
	if height(r)-height(l) <= 1 {
		return joinBalanced(l, m, r)
	}
	t := joinLeft(l, m, r.left)
	r.left = t
	t.parent = r
	out := rebalance(r)
	out.parent = nil
	return out
}

// detachMin removes the leftmost node from the subtree rooted at root and
// returns it together with the rebalanced remainder.
func detachMin[T any](root *Occ[T]) (m, rest *Occ[T]) {
	assert(root != nil, "detachMin called on empty subtree")
	m = root
	for m.left != nil {
		m = m.left
	}
	p := m.parent
	c := m.right
	if p == nil {
		if c != nil {
			c.parent = nil
		}
		m.detach()
		return m, c
	}
	p.left = c
	if c != nil {
		c.parent = p
	}
	m.detach()
	return m, retrace(p)
}

// concat joins two subtrees in sequence order, either of which may be nil.
//
// The minimum of the right tree is detached and reused as the join pivot.
func concat[T any](l, r *Occ[T]) *Occ[T] {
	if l == nil {
		if r != nil {
			r.parent = nil
		}
		return r
	}
	if r == nil {
		l.parent = nil
		return l
	}
	m, rest := detachMin(r)
	return join(l, m, rest)
}

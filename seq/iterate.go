package seq

import "iter"

// Each walks occurrences in order.
//
// Iteration stops early if the callback returns false.
func (s *Seq[T]) Each(fn func(o *Occ[T]) bool) {
	if s == nil || s.root == nil || fn == nil {
		return
	}
	inorder(s.root, fn)
}

// Range returns an iterator over all occurrences in order.
//
// A fresh traversal reflects all mutations completed before it starts;
// mutating the sequence during an in-progress traversal is undefined.
func (s *Seq[T]) Range() iter.Seq[*Occ[T]] {
	return func(yield func(*Occ[T]) bool) {
		if s == nil || s.root == nil {
			return
		}
		inorder(s.root, yield)
	}
}

func inorder[T any](n *Occ[T], fn func(*Occ[T]) bool) bool {
	if n == nil {
		return true
	}
	if !inorder(n.left, fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return inorder(n.right, fn)
}

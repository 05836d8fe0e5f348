package seq

import "fmt"

// Check validates structural sequence invariants.
//
// This checker is intentionally strict and should be used in tests while
// the implementation is evolving.
func (s *Seq[T]) Check() error {
	if s == nil {
		return nil
	}
	if s.root == nil {
		return nil
	}
	if s.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupt)
	}
	_, err := checkNode(s.root)
	return err
}

func checkNode[T any](n *Occ[T]) (height int, err error) {
	if n == nil {
		return 0, nil
	}
	if n.left != nil && n.left.parent != n {
		return 0, fmt.Errorf("%w: left child disowns parent", ErrCorrupt)
	}
	if n.right != nil && n.right.parent != n {
		return 0, fmt.Errorf("%w: right child disowns parent", ErrCorrupt)
	}
	hl, err := checkNode(n.left)
	if err != nil {
		return 0, err
	}
	hr, err := checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if n.height != max(hl, hr)+1 {
		return 0, fmt.Errorf("%w: stale height %d (children %d/%d)", ErrCorrupt, n.height, hl, hr)
	}
	if bf := hl - hr; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: balance factor %d", ErrCorrupt, bf)
	}
	return n.height, nil
}

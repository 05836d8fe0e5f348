package seq

// Seq owns a totally ordered collection of occurrences.
//
// A sequence created by
//
//	seq.New[T]()
//
// is valid and empty. All operations run in O(log n) unless noted
// otherwise. Clients usually interpret the order as circular ("after the
// last occurrence comes the first again"), but storage is linear with an
// explicit minimum; wrap-around is the client's concern.
type Seq[T any] struct {
	root *Occ[T]
}

// New creates an empty sequence.
func New[T any]() *Seq[T] {
	return &Seq[T]{}
}

// IsEmpty reports whether the sequence has no occurrences.
func (s *Seq[T]) IsEmpty() bool {
	return s == nil || s.root == nil
}

// Len returns the number of occurrences.
//
// This is intentionally recursive and simple; callers on hot paths track
// counts themselves. O(n).
func (s *Seq[T]) Len() int {
	if s == nil {
		return 0
	}
	return count(s.root)
}

func count[T any](n *Occ[T]) int {
	if n == nil {
		return 0
	}
	return count(n.left) + 1 + count(n.right)
}

// Min returns the first occurrence, or nil for an empty sequence.
func (s *Seq[T]) Min() *Occ[T] {
	if s.IsEmpty() {
		return nil
	}
	m := s.root
	for m.left != nil {
		m = m.left
	}
	return m
}

// Max returns the last occurrence, or nil for an empty sequence.
func (s *Seq[T]) Max() *Occ[T] {
	if s.IsEmpty() {
		return nil
	}
	m := s.root
	for m.right != nil {
		m = m.right
	}
	return m
}

// AddMin inserts a new occurrence before all existing ones and returns its
// handle.
func (s *Seq[T]) AddMin(v T) *Occ[T] {
	o := &Occ[T]{value: v, height: 1}
	if s.root == nil {
		s.root = o
		return o
	}
	m := s.root
	for m.left != nil {
		m = m.left
	}
	m.left = o
	o.parent = m
	s.root = retrace(m)
	return o
}

// AddMax inserts a new occurrence after all existing ones and returns its
// handle.
func (s *Seq[T]) AddMax(v T) *Occ[T] {
	o := &Occ[T]{value: v, height: 1}
	if s.root == nil {
		s.root = o
		return o
	}
	m := s.root
	for m.right != nil {
		m = m.right
	}
	m.right = o
	o.parent = m
	s.root = retrace(m)
	return o
}

// RemoveMin removes and returns the first occurrence.
func (s *Seq[T]) RemoveMin() (*Occ[T], error) {
	if s.IsEmpty() {
		return nil, ErrEmptySequence
	}
	m, rest := detachMin(s.root)
	s.root = rest
	return m, nil
}

// RemoveMax removes and returns the last occurrence.
func (s *Seq[T]) RemoveMax() (*Occ[T], error) {
	if s.IsEmpty() {
		return nil, ErrEmptySequence
	}
	m := s.root
	for m.right != nil {
		m = m.right
	}
	p := m.parent
	c := m.left
	if p == nil {
		if c != nil {
			c.parent = nil
		}
		m.detach()
		s.root = c
		return m, nil
	}
	p.right = c
	if c != nil {
		c.parent = p
	}
	m.detach()
	s.root = retrace(p)
	return m, nil
}

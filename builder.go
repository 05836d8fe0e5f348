package forest

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Builder incrementally stages elements and edges and finalizes them into
// a Forest.
//
// Builder collects vertices and tree edges and materializes the forest
// only when Forest() is called. Staging is cheap and unordered; edge
// endpoints need not be staged beforehand, unknown endpoints are staged
// implicitly.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[K comparable] struct {
	vertices []K
	staged   map[K]bool
	edges    [][2]K

	done   bool
	dirty  bool
	forest *Forest[K]
}

// NewBuilder creates a new and empty forest builder.
func NewBuilder[K comparable]() *Builder[K] {
	return &Builder[K]{}
}

// Forest returns the forest built from all staged vertices and edges.
//
// It is illegal to continue staging after Forest has been called, but
// Forest may be called multiple times. A staged edge that would close a
// cycle surfaces ErrLinkWouldCycle here.
func (b *Builder[K]) Forest() (*Forest[K], error) {
	if b == nil {
		return New[K](), nil
	}
	if b.dirty {
		f, err := b.buildForest()
		if err != nil {
			return nil, err
		}
		b.forest = f
		b.dirty = false
	}
	b.done = true
	if b.forest == nil {
		tracer().Debugf("forest builder: forest is empty")
		b.forest = New[K]()
	}
	return b.forest, nil
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[K]) Reset() {
	b.vertices = nil
	b.staged = nil
	b.edges = nil
	b.done = false
	b.dirty = false
	b.forest = nil
}

// AddVertex stages an element. Staging the same element twice returns
// ErrDuplicateVertex.
func (b *Builder[K]) AddVertex(x K) error {
	if b == nil {
		return ErrVertexNotFound
	}
	if b.done {
		return ErrCompleted
	}
	if b.staged[x] {
		return ErrDuplicateVertex
	}
	b.stage(x)
	b.dirty = true
	return nil
}

// AddEdge stages a tree edge between u and v. Unknown endpoints are
// staged implicitly. Whether the edge closes a cycle is only decided at
// materialization, except for the trivial self-loop.
func (b *Builder[K]) AddEdge(u, v K) error {
	if b == nil {
		return ErrVertexNotFound
	}
	if b.done {
		return ErrCompleted
	}
	if u == v {
		return ErrLinkWouldCycle
	}
	b.stage(u)
	b.stage(v)
	b.edges = append(b.edges, [2]K{u, v})
	b.dirty = true
	return nil
}

func (b *Builder[K]) stage(x K) {
	if b.staged == nil {
		b.staged = make(map[K]bool)
	}
	if !b.staged[x] {
		b.staged[x] = true
		b.vertices = append(b.vertices, x)
	}
}

func (b *Builder[K]) buildForest() (*Forest[K], error) {
	f := New[K]()
	for _, x := range b.vertices {
		err := f.Add(x)
		assert(err == nil, "builder: staged vertex set contains a duplicate")
	}
	for _, e := range b.edges {
		if err := f.Link(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

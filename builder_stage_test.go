package forest

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	b := NewBuilder[string]()
	f, err := b.Forest()
	if err != nil {
		t.Fatal(err)
	}
	if f.Order() != 0 {
		t.Errorf("expected empty forest, got %d vertices", f.Order())
	}
}

func TestBuilderStagesVerticesAndEdges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	b := NewBuilder[string]()
	if err := b.AddVertex("lonely"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddEdge("a", "b"); err != nil { // endpoints staged implicitly
		t.Fatal(err)
	}
	if err := b.AddEdge("b", "c"); err != nil {
		t.Fatal(err)
	}
	f, err := b.Forest()
	if err != nil {
		t.Fatal(err)
	}
	if f.Order() != 4 || f.TreeCount() != 2 {
		t.Errorf("expected 4 vertices in 2 trees, got %d in %d", f.Order(), f.TreeCount())
	}
	conn, err := f.Connected("a", "c")
	if err != nil {
		t.Fatal(err)
	}
	if !conn {
		t.Errorf("expected staged edges to connect a and c")
	}
	if err := f.Check(); err != nil {
		t.Error(err)
	}
}

func TestBuilderIsIdempotentAndSealed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	b := NewBuilder[int]()
	b.AddEdge(1, 2)
	f1, err := b.Forest()
	if err != nil {
		t.Fatal(err)
	}
	f2, err := b.Forest()
	if err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Errorf("expected repeated Forest() calls to return the same forest")
	}
	if err := b.AddVertex(3); !errors.Is(err, ErrCompleted) {
		t.Errorf("expected ErrCompleted after materialization, got %v", err)
	}
	if err := b.AddEdge(3, 4); !errors.Is(err, ErrCompleted) {
		t.Errorf("expected ErrCompleted after materialization, got %v", err)
	}
	b.Reset()
	if err := b.AddVertex(3); err != nil {
		t.Errorf("expected staging to work again after Reset, got %v", err)
	}
}

func TestBuilderRejectsCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	b := NewBuilder[int]()
	if err := b.AddEdge(1, 1); !errors.Is(err, ErrLinkWouldCycle) {
		t.Errorf("expected self-loop to be rejected at staging, got %v", err)
	}
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 1) // closes a cycle, detected at materialization
	if _, err := b.Forest(); !errors.Is(err, ErrLinkWouldCycle) {
		t.Errorf("expected ErrLinkWouldCycle at materialization, got %v", err)
	}
}

func TestBuilderDuplicateVertex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	b := NewBuilder[string]()
	b.AddVertex("a")
	if err := b.AddVertex("a"); !errors.Is(err, ErrDuplicateVertex) {
		t.Errorf("expected ErrDuplicateVertex, got %v", err)
	}
	// implicit staging via an edge is not a duplicate
	if err := b.AddEdge("a", "b"); err != nil {
		t.Errorf("expected edge staging to tolerate known endpoints, got %v", err)
	}
}

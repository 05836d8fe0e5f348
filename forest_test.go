package forest

import (
	"errors"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAddAndConnectedSelf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	f := New[string]()
	if err := f.Add("a"); err != nil {
		t.Fatal(err)
	}
	conn, err := f.Connected("a", "a")
	if err != nil {
		t.Fatal(err)
	}
	if !conn {
		t.Errorf("expected connected(a,a) to be true after add")
	}
	if f.Order() != 1 || f.TreeCount() != 1 {
		t.Errorf("expected 1 vertex in 1 tree, got %d in %d", f.Order(), f.TreeCount())
	}
	if err := f.Check(); err != nil {
		t.Error(err)
	}
}

func TestAddDuplicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	f := New[string]()
	if err := f.Add("a"); err != nil {
		t.Fatal(err)
	}
	if err := f.Add("a"); !errors.Is(err, ErrDuplicateVertex) {
		t.Errorf("expected ErrDuplicateVertex, got %v", err)
	}
}

func TestVertexNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	f := New[string]()
	f.Add("a")
	if _, err := f.Connected("a", "nope"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("expected ErrVertexNotFound from connected, got %v", err)
	}
	if err := f.Link("a", "nope"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("expected ErrVertexNotFound from link, got %v", err)
	}
	if err := f.Cut("a", "nope"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("expected ErrVertexNotFound from cut, got %v", err)
	}
	if err := f.Remove("nope"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("expected ErrVertexNotFound from remove, got %v", err)
	}
}

func TestRemoveIsolatesNeighbors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	f := New[string]()
	for _, x := range []string{"hub", "a", "b", "c"} {
		f.Add(x)
	}
	f.Link("hub", "a")
	f.Link("hub", "b")
	f.Link("hub", "c")
	if err := f.Remove("hub"); err != nil {
		t.Fatal(err)
	}
	if f.Has("hub") {
		t.Errorf("expected hub to be gone")
	}
	if f.Order() != 3 || f.TreeCount() != 3 {
		t.Errorf("expected 3 isolated vertices, got %d in %d trees", f.Order(), f.TreeCount())
	}
	for _, x := range []string{"a", "b", "c"} {
		d, err := f.Degree(x)
		if err != nil {
			t.Fatal(err)
		}
		if d != 0 {
			t.Errorf("expected %s to be isolated, degree is %d", x, d)
		}
	}
	if err := f.Check(); err != nil {
		t.Error(err)
	}
}

func TestNeighborsAndDegree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	f := New[string]()
	for _, x := range []string{"a", "b", "c", "d"} {
		f.Add(x)
	}
	f.Link("a", "b")
	f.Link("a", "c")
	f.Link("c", "d")
	ns, err := f.Neighbors("a")
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(ns)
	if len(ns) != 2 || ns[0] != "b" || ns[1] != "c" {
		t.Errorf("expected neighbors of a to be [b c], got %v", ns)
	}
	if d, _ := f.Degree("c"); d != 2 {
		t.Errorf("expected degree(c) = 2, got %d", d)
	}
	if d, _ := f.Degree("d"); d != 1 {
		t.Errorf("expected degree(d) = 1, got %d", d)
	}
}

func TestTreeSizeAndTour(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	f := New[string]()
	for _, x := range []string{"a", "b", "c"} {
		f.Add(x)
	}
	if k, _ := f.TreeSize("a"); k != 1 {
		t.Errorf("expected singleton tree size 1, got %d", k)
	}
	f.Link("a", "b")
	f.Link("a", "c")
	if k, _ := f.TreeSize("b"); k != 3 {
		t.Errorf("expected tree size 3, got %d", k)
	}
	visits, err := f.Tour("a")
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	opens := 0
	for v := range visits {
		n++
		if v.Entering {
			opens++
		}
	}
	if n != 5 {
		t.Errorf("expected tour of 5 occurrences, got %d", n)
	}
	if opens != 3 {
		t.Errorf("expected 3 entering occurrences, got %d", opens)
	}
}

func TestRootDesignation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	f := New[string]()
	for _, x := range []string{"a", "b", "c"} {
		f.Add(x)
	}
	if r, _ := f.Root("a"); r != "a" {
		t.Errorf("expected isolated vertex to be its own root, got %v", r)
	}
	f.Link("a", "b") // b's tree is re-rooted at b and spliced below a
	if r, _ := f.Root("b"); r != "a" {
		t.Errorf("expected root a after link(a,b), got %v", r)
	}
	f.Link("c", "a") // a's tree re-roots at a, joins below c
	if r, _ := f.Root("b"); r != "c" {
		t.Errorf("expected root c after link(c,a), got %v", r)
	}
}

type recordingSink struct {
	events []Event
}

func (rs *recordingSink) Publish(ev Event) {
	rs.events = append(rs.events, ev)
}

func TestEventReporting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest")
	defer teardown()
	//
	f := New[string]()
	sink := &recordingSink{}
	f.Notify(sink)
	f.Add("a")
	f.Add("b")
	f.Link("a", "b")
	f.Cut("a", "b")
	f.Remove("b")
	if err := f.Link("a", "a"); err == nil {
		t.Fatal("expected self-link to fail")
	}
	ops := make([]Op, 0, len(sink.events))
	for _, ev := range sink.events {
		ops = append(ops, ev.Op)
	}
	want := []Op{OpAdd, OpAdd, OpLink, OpCut, OpRemove}
	if len(ops) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(ops), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], ops[i])
		}
	}
}

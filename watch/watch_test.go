package watch

import (
	"testing"
	"time"

	"github.com/npillmayer/forest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHubBroadcastsEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest.watch")
	defer teardown()
	//
	hub := NewHub()
	defer hub.Close()
	ch, ok := hub.Subscribe(nil, 16)
	if !ok {
		t.Fatal("expected subscription to succeed")
	}
	f := forest.New[string]()
	f.Notify(hub)
	f.Add("a")
	f.Add("b")
	f.Link("a", "b")
	//
	want := []forest.Op{forest.OpAdd, forest.OpAdd, forest.OpLink}
	for i, op := range want {
		select {
		case ev, open := <-ch:
			if !open {
				t.Fatalf("event channel closed after %d events", i)
			}
			if ev.Op != op {
				t.Errorf("event %d: expected %v, got %v", i, op, ev.Op)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestHubMultipleSubscribers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest.watch")
	defer teardown()
	//
	hub := NewHub()
	defer hub.Close()
	ch1, _ := hub.Subscribe(nil, 4)
	ch2, _ := hub.Subscribe(nil, 4)
	hub.Publish(forest.Event{Op: forest.OpAdd, U: "x"})
	for i, ch := range []<-chan forest.Event{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.U != "x" {
				t.Errorf("subscriber %d: unexpected event payload %v", i, ev.U)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d timed out", i)
		}
	}
}

func TestHubCloseEndsSubscriptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "forest.watch")
	defer teardown()
	//
	hub := NewHub()
	ch, _ := hub.Subscribe(nil, 4)
	hub.Close()
	select {
	case _, open := <-ch:
		if open {
			t.Errorf("expected no event on a closed hub")
		}
	case <-time.After(time.Second):
		t.Fatal("expected subscriber channel to be closed")
	}
	// publishing into a closed hub must not panic, events are dropped
	hub.Publish(forest.Event{Op: forest.OpAdd, U: "late"})
}

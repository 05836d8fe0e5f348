package watch

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/forest"
)

// Hub broadcasts forest edit events to any number of subscribers.
//
// A hub decouples the single-threaded forest from concurrent observers:
// the forest publishes synchronously into the hub, subscribers receive on
// buffered channels. Publishing never blocks; events for subscribers with
// a full buffer are dropped for that subscriber.
type Hub struct {
	cast *caster.Caster
}

var _ forest.EventSink = (*Hub)(nil)

// NewHub creates a hub and starts its broadcast loop.
func NewHub() *Hub {
	return &Hub{
		cast: caster.New(nil),
	}
}

// Publish broadcasts ev to all current subscribers (part of interface
// forest.EventSink). Install a hub with Forest.Notify(hub).
func (h *Hub) Publish(ev forest.Event) {
	ok := h.cast.TryPub(ev)
	if !ok {
		tracer().Infof("watch hub: dropped event %v, hub is closed", ev.Op)
	}
}

// Subscribe registers a new subscriber channel with the given buffer
// capacity. The channel is closed when ctx is done or the hub closes.
// ctx may be nil.
func (h *Hub) Subscribe(ctx context.Context, capacity uint) (<-chan forest.Event, bool) {
	ch, ok := h.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	out := make(chan forest.Event, capacity)
	go func() {
		defer close(out)
		for m := range ch {
			ev, isEvent := m.(forest.Event)
			if !isEvent {
				continue
			}
			select {
			case out <- ev:
			default:
				tracer().Debugf("watch hub: subscriber too slow, dropping %v event", ev.Op)
			}
		}
	}()
	return out, true
}

// Close shuts down the hub and closes all subscriber channels. Events
// published afterwards are dropped.
func (h *Hub) Close() {
	h.cast.Close()
}

package sse

import (
	"sync"
)

// Event is one push notification for connected viewers. Data is serialized
// by the HTTP layer; the hub only fans it out.
type Event struct {
	Event string
	Data  interface{}
}

// Hub broadcasts attendance events to every connected dashboard viewer.
// The scan feed is not per-user: every viewer sees the same stream.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a viewer and returns the event channel and a cleanup
// function. The cleanup must be called exactly once when the viewer
// disconnects.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; !ok {
			return
		}
		delete(h.subscribers, ch)
		close(ch)
	}

	return ch, cleanup
}

// Publish sends an event to every subscriber. A viewer whose channel is
// full misses the event rather than blocking the publisher.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of connected viewers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

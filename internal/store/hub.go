package store

import "sync"

// Change identifies which collection was written.
type Change struct {
	Collection string `json:"collection"`
}

// Hub broadcasts a Change to every subscriber after each store write, so
// presentation subscribers can refresh without polling. Publishing never
// blocks: a subscriber that is not draining its channel misses the change.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan Change
	next int
}

// NewHub constructs an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Change)}
}

// Subscribe registers a new subscriber. The returned cancel function must be
// called to release the subscription.
func (h *Hub) Subscribe() (<-chan Change, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan Change, 16)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish notifies all subscribers that collection changed.
func (h *Hub) Publish(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- Change{Collection: collection}:
		default:
		}
	}
}

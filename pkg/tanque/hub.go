package tanque

import (
	"sync"

	"galeana-pepper/domain"
)

// Hub fans tank updates out to live subscribers. Publish never blocks: a
// subscriber whose buffer is full is dropped and its channel closed.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan domain.TanqueResponse
	nextID int
	buffer int
	closed bool
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   map[int]chan domain.TanqueResponse{},
		buffer: buffer,
	}
}

// Subscribe returns a channel of updates and a func that cancels the subscription.
func (h *Hub) Subscribe() (<-chan domain.TanqueResponse, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan domain.TanqueResponse, h.buffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) Publish(update domain.TanqueResponse) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- update:
		default:
			delete(h.subs, id)
			close(ch)
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close ends every subscription. Later subscribers receive a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

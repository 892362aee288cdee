// Package feed is the status-update channel behind the live booking screen.
// Subscriptions are keyed by booking id and returned as explicit handles so a
// consumer can unsubscribe on teardown instead of leaving a dangling callback.
package feed

import (
	"sync"

	"parkspot/internal/domain/booking"
)

type StatusUpdate struct {
	BookingID string         `json:"bookingId"`
	Status    booking.Status `json:"status"`
}

// Subscription is a cancellable handle. Updates arrive on C until Cancel is
// called, after which C is closed. Cancel is idempotent.
type Subscription struct {
	C      <-chan StatusUpdate
	cancel func()
	once   sync.Once
}

func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan StatusUpdate
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[int]chan StatusUpdate),
	}
}

// Subscribe registers interest in one booking id.
func (h *Hub) Subscribe(bookingID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan StatusUpdate, 8)

	if h.subs[bookingID] == nil {
		h.subs[bookingID] = make(map[int]chan StatusUpdate)
	}
	h.subs[bookingID][id] = ch

	return &Subscription{
		C: ch,
		cancel: func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if listeners, ok := h.subs[bookingID]; ok {
				if c, ok := listeners[id]; ok {
					delete(listeners, id)
					close(c)
				}
				if len(listeners) == 0 {
					delete(h.subs, bookingID)
				}
			}
		},
	}
}

// Publish delivers an update to every subscriber of the booking. Delivery is
// non-blocking: a subscriber that stopped draining its channel is skipped.
func (h *Hub) Publish(update StatusUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[update.BookingID] {
		select {
		case ch <- update:
		default:
		}
	}
}

// Close cancels every open subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for bookingID, listeners := range h.subs {
		for id, ch := range listeners {
			delete(listeners, id)
			close(ch)
		}
		delete(h.subs, bookingID)
	}
}

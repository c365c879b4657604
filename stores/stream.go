package stores

import (
	"sync"

	"salonbook-backend/models"
)

// Subscription is a handle to a live booking listener. Cancel removes the
// listener; once Cancel returns no further callbacks are delivered.
type Subscription struct {
	hub *bookingHub
	id  int
}

func (s *Subscription) Cancel() {
	s.hub.remove(s.id)
}

// bookingHub fans the full current booking sequence out to registered
// listeners on every mutation. Callbacks run synchronously under the hub
// lock, so they must be quick and must not re-enter the hub.
type bookingHub struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func([]models.Booking)
}

func newBookingHub() *bookingHub {
	return &bookingHub{listeners: make(map[int]func([]models.Booking))}
}

func (h *bookingHub) subscribe(onChange func([]models.Booking)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.listeners[id] = onChange
	return &Subscription{hub: h, id: id}
}

func (h *bookingHub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, id)
}

// broadcast replaces every listener's view with the full sequence. Each push
// is a whole-list snapshot, never an incremental patch.
func (h *bookingHub) broadcast(bookings []models.Booking) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, onChange := range h.listeners {
		onChange(bookings)
	}
}

package repository

import (
	"log/slog"
	"sync"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra/localstore"
)

// StorageKey is the canonical booking list key. It must match the key the
// original client used so existing stored state keeps loading.
const StorageKey = "parkspot_bookings"

// BookingStore is the single source of truth for bookings created in this
// process. Every mutation is mirrored to the backing store before the call
// returns; a failed mirror write is logged and swallowed, leaving the
// in-memory list authoritative for the rest of the session. Records are never
// deleted, cancellation is a status flip via Update.
type BookingStore struct {
	mu       sync.RWMutex
	store    localstore.Store
	bookings []*booking.Booking
}

// NewBookingStore loads the persisted list from the canonical key. A missing,
// unreadable, or non-array value yields an empty list, never an error.
func NewBookingStore(store localstore.Store) *BookingStore {
	records := localstore.LoadOrDefault(store, StorageKey, []Record{})

	bookings := make([]*booking.Booking, 0, len(records))
	for _, r := range records {
		bookings = append(bookings, FromRecord(r))
	}

	return &BookingStore{
		store:    store,
		bookings: bookings,
	}
}

// Add inserts b unless a record with the same id already exists. Insertion is
// idempotent on id: a duplicate add leaves the store unchanged.
func (s *BookingStore) Add(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.ID() == b.ID() {
			return
		}
	}

	clone := *b
	s.bookings = append(s.bookings, &clone)
	s.persistLocked()
}

// Update applies transform to the record matching id and persists the full
// list. A missing id is a no-op.
func (s *BookingStore) Update(id string, transform func(*booking.Booking)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.bookings {
		if existing.ID() != id {
			continue
		}
		clone := *existing
		transform(&clone)
		s.bookings[i] = &clone
		s.persistLocked()
		return
	}
}

// List returns the bookings in insertion order. Entries are copies; mutating
// them does not touch the store.
func (s *BookingStore) List() []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		clone := *b
		out = append(out, &clone)
	}
	return out
}

func (s *BookingStore) ListByUser(userID string) []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*booking.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID() == userID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out
}

func (s *BookingStore) FindByID(id string) (*booking.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID() == id {
			clone := *b
			return &clone, true
		}
	}
	return nil, false
}

func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

// persistLocked mirrors the full list to the backing store. Durability is
// best-effort: on failure the in-memory list stays authoritative and the
// error is reduced to a diagnostic.
func (s *BookingStore) persistLocked() {
	records := make([]Record, 0, len(s.bookings))
	for _, b := range s.bookings {
		records = append(records, ToRecord(b))
	}

	if err := localstore.Save(s.store, StorageKey, records); err != nil {
		slog.Warn("booking persistence degraded, in-memory state remains authoritative",
			"key", StorageKey, "error", err.Error())
	}
}

// Package state owns the process-wide session state: identity, the active
// booking handoff pointer, the legacy bookings mirror, and the theme flag.
// State is seeded once at startup from three storage keys with independent
// fail-soft parsing; after that it lives in memory.
package state

import (
	"sync"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra/localstore"
	"parkspot/internal/infra/repository"
)

// Storage keys owned by the session state. They must match the keys the
// original client wrote so existing stored sessions keep loading.
const (
	KeyUser      = "user"
	KeyAuthToken = "auth_token"
	// KeyBookings is the legacy mirror, persisted separately from the
	// canonical booking store key. Kept for compatibility; new code paths
	// read from the booking store.
	KeyBookings = "bookings"
)

type AppState struct {
	mu            sync.RWMutex
	user          user.User
	token         string
	activeBooking *booking.Booking
	bookings      []repository.Record
	isDarkMode    bool
}

// NewAppState seeds the session from storage. Each key is parsed
// independently: a corrupt user record must not block loading the bookings
// mirror, and vice versa. The token key holds a raw string, not JSON.
func NewAppState(store localstore.Store) *AppState {
	s := &AppState{}

	s.user = localstore.LoadOrDefault(store, KeyUser, user.User{})
	if raw, ok := store.Get(KeyAuthToken); ok {
		s.token = string(raw)
	}
	s.bookings = localstore.LoadOrDefault(store, KeyBookings, []repository.Record{})

	return s
}

// Login sets identity and token together. Persistence happens at the mock
// authentication call site, not here.
func (s *AppState) Login(u user.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.token = token
}

// Logout clears the in-memory session. Storage cleanup is the caller's
// responsibility and must remove each persisted key individually.
func (s *AppState) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user.User{}
	s.token = ""
	s.activeBooking = nil
	s.bookings = nil
}

// SetActiveBooking replaces the cross-screen handoff pointer with a value
// copy of b. The copy is not authoritative for booking status.
func (s *AppState) SetActiveBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b == nil {
		s.activeBooking = nil
		return
	}
	clone := *b
	s.activeBooking = &clone
}

func (s *AppState) ActiveBooking() *booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeBooking == nil {
		return nil
	}
	clone := *s.activeBooking
	return &clone
}

// SetBookings bulk-replaces the legacy mirror.
func (s *AppState) SetBookings(records []repository.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append([]repository.Record(nil), records...)
}

func (s *AppState) Bookings() []repository.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]repository.Record(nil), s.bookings...)
}

// ToggleTheme flips the theme flag and returns the new value. The flag has
// no durability requirement.
func (s *AppState) ToggleTheme() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isDarkMode = !s.isDarkMode
	return s.isDarkMode
}

func (s *AppState) IsDarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isDarkMode
}

func (s *AppState) User() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, !s.user.IsZero()
}

func (s *AppState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

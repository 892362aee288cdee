// Package mockapi stands in for the backend. Every operation resolves
// deterministic in-memory data after a fixed artificial latency, preserving
// the asynchronous contract a real remote API would have. Reads never fail on
// normal input; lookups by id fail with a NotFound sentinel; writes fail with
// ErrValidationFailed when required fields are absent. There are no injected
// transient failures.
package mockapi

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/catalog"
	"parkspot/internal/domain/user"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type account struct {
	user         user.User
	passwordHash string
}

type Facade struct {
	latency time.Duration
	clock   clock.Clock

	mu       sync.RWMutex
	garages  []catalog.Garage
	accounts map[string]account
	bookings []Booking
}

func NewFacade(cfg config.MockConfig, clk clock.Clock) *Facade {
	return &Facade{
		latency:  cfg.Latency,
		clock:    clk,
		garages:  defaultCatalog(),
		accounts: make(map[string]account),
		bookings: seedBookings(clk.Now()),
	}
}

// delay simulates network latency. The timer always fires; ctx is honored
// only so an abandoned caller does not pin a goroutine.
func (f *Facade) delay(ctx context.Context) error {
	if f.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(f.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

// Login verifies a registered account, or falls back to the demo identity
// with the provided email when no account exists for it.
func (f *Facade) Login(ctx context.Context, email, pass string) (user.User, error) {
	if err := f.delay(ctx); err != nil {
		return user.User{}, err
	}

	f.mu.RLock()
	acct, registered := f.accounts[strings.ToLower(email)]
	f.mu.RUnlock()

	if registered {
		if err := password.ComparePassword(acct.passwordHash, pass); err != nil {
			return user.User{}, ErrInvalidCredentials
		}
		return acct.user, nil
	}

	demo := DemoUser
	demo.Email = email
	return demo, nil
}

func (f *Facade) Register(ctx context.Context, name, email, pass string) (user.User, error) {
	if err := f.delay(ctx); err != nil {
		return user.User{}, err
	}
	if name == "" || email == "" {
		return user.User{}, errs.Mark(errs.New("name and email are required"), errs.ErrValidationFailed)
	}

	hash, err := password.HashPassword(pass)
	if err != nil {
		return user.User{}, errs.Mark(err, errs.ErrValidationFailed)
	}

	newUser := user.User{
		ID:    fmt.Sprintf("user-%s", uuid.NewString()),
		Name:  name,
		Email: email,
	}

	f.mu.Lock()
	f.accounts[strings.ToLower(email)] = account{user: newUser, passwordHash: hash}
	f.mu.Unlock()

	return newUser, nil
}

func (f *Facade) FetchProfile(ctx context.Context, userID string) (user.User, error) {
	if err := f.delay(ctx); err != nil {
		return user.User{}, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, acct := range f.accounts {
		if acct.user.ID == userID {
			return acct.user, nil
		}
	}
	return DemoUser, nil
}

func (f *Facade) UpdateProfile(ctx context.Context, userID string, updates ProfileUpdate) (user.User, error) {
	if err := f.delay(ctx); err != nil {
		return user.User{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for email, acct := range f.accounts {
		if acct.user.ID != userID {
			continue
		}
		applyProfileUpdate(&acct.user, updates)
		f.accounts[email] = acct
		return acct.user, nil
	}

	updated := DemoUser
	applyProfileUpdate(&updated, updates)
	return updated, nil
}

func applyProfileUpdate(u *user.User, updates ProfileUpdate) {
	if updates.Name != nil {
		u.Name = *updates.Name
	}
	if updates.Email != nil {
		u.Email = *updates.Email
	}
	if updates.Phone != nil {
		u.Phone = *updates.Phone
	}
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

// FetchGarages returns the full catalog, or the garages whose name, address,
// or description contains the query, case-insensitive.
func (f *Facade) FetchGarages(ctx context.Context, query string) ([]catalog.Garage, error) {
	if err := f.delay(ctx); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(query))
	out := make([]catalog.Garage, 0, len(f.garages))
	for _, g := range f.garages {
		if term != "" && !garageMatches(g, term) {
			continue
		}
		out = append(out, cloneGarage(g))
	}
	return out, nil
}

func garageMatches(g catalog.Garage, term string) bool {
	return strings.Contains(strings.ToLower(g.Name), term) ||
		strings.Contains(strings.ToLower(g.Location.Address), term) ||
		strings.Contains(strings.ToLower(g.Description), term)
}

func (f *Facade) FetchGarage(ctx context.Context, id string) (catalog.Garage, error) {
	if err := f.delay(ctx); err != nil {
		return catalog.Garage{}, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, g := range f.garages {
		if g.ID == id {
			return cloneGarage(g), nil
		}
	}
	return catalog.Garage{}, errs.ErrGarageNotFound
}

func (f *Facade) FetchFloors(ctx context.Context, garageID string) ([]catalog.Floor, error) {
	g, err := f.FetchGarage(ctx, garageID)
	if err != nil {
		return nil, err
	}
	return g.Floors, nil
}

// FetchSlots returns the layout of the first floor matching floorID across
// the catalog, mirroring the original lookup order.
func (f *Facade) FetchSlots(ctx context.Context, floorID string) ([]catalog.Slot, error) {
	if err := f.delay(ctx); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, g := range f.garages {
		for _, floor := range g.Floors {
			if floor.ID == floorID {
				cloned := cloneGarage(g)
				for _, cf := range cloned.Floors {
					if cf.ID == floorID {
						return cf.Layout, nil
					}
				}
			}
		}
	}
	return nil, errs.ErrFloorNotFound
}

func (f *Facade) FetchSlot(ctx context.Context, garageID, slotID string) (catalog.Slot, error) {
	g, err := f.FetchGarage(ctx, garageID)
	if err != nil {
		return catalog.Slot{}, err
	}

	slot, ok := g.FindSlot(slotID)
	if !ok {
		return catalog.Slot{}, errs.ErrSlotNotFound
	}
	return slot, nil
}

// cloneGarage deep-copies a catalog entry so callers can never mutate the
// shared mock data through returned slices.
func cloneGarage(g catalog.Garage) catalog.Garage {
	var out catalog.Garage
	if err := copier.CopyWithOption(&out, &g, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on invalid input types; fall back to the shallow copy.
		return g
	}
	return out
}

// ---------------------------------------------------------------------------
// Bookings / payment
// ---------------------------------------------------------------------------

// CreateBooking validates required references and records a confirmed booking
// on the facade side. Slot availability is advisory and deliberately not
// checked here: the mock backend never reconciles catalog state with bookings.
func (f *Facade) CreateBooking(ctx context.Context, input CreateBookingInput) (Booking, error) {
	if err := f.delay(ctx); err != nil {
		return Booking{}, err
	}
	if input.GarageID == "" || input.SlotID == "" {
		return Booking{}, errs.Mark(errs.New("garage id and slot id are required"), errs.ErrValidationFailed)
	}

	userID := input.UserID
	if userID == "" {
		userID = DemoUser.ID
	}
	plate := input.VehiclePlate
	if plate == "" {
		plate = "TEMP-123"
	}
	hours := input.DurationHours
	if hours <= 0 {
		hours = 1
	}

	now := f.clock.Now()
	created := Booking{
		ID:           booking.GenerateID(),
		GarageID:     input.GarageID,
		UserID:       userID,
		SlotID:       input.SlotID,
		Status:       booking.StatusConfirmed.String(),
		TotalPrice:   input.TotalPrice,
		VehiclePlate: plate,
		Time: BookingTime{
			Start:         now,
			End:           now.Add(time.Duration(hours * float64(time.Hour))),
			DurationHours: hours,
		},
	}

	f.mu.Lock()
	f.bookings = append(f.bookings, created)
	f.mu.Unlock()

	return created, nil
}

func (f *Facade) CancelBooking(ctx context.Context, id string) (Booking, error) {
	if err := f.delay(ctx); err != nil {
		return Booking{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings[i].Status = booking.StatusCancelled.String()
			return f.bookings[i], nil
		}
	}
	return Booking{}, errs.ErrBookingNotFound
}

func (f *Facade) FetchBooking(ctx context.Context, id string) (Booking, error) {
	if err := f.delay(ctx); err != nil {
		return Booking{}, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return Booking{}, errs.ErrBookingNotFound
}

func (f *Facade) FetchUserBookings(ctx context.Context, userID string) ([]Booking, error) {
	if err := f.delay(ctx); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Booking, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// ProcessPayment always succeeds deterministically once the intent carries a
// booking reference and a non-negative amount.
func (f *Facade) ProcessPayment(ctx context.Context, intent PaymentIntent) (PaymentIntent, error) {
	if err := f.delay(ctx); err != nil {
		return PaymentIntent{}, err
	}
	if intent.BookingID == "" || intent.Amount < 0 {
		return PaymentIntent{}, errs.Mark(errs.New("booking id and non-negative amount are required"), errs.ErrValidationFailed)
	}

	intent.Status = PaymentPaid
	return intent, nil
}

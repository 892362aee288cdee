package queries

import (
	"context"

	"parkspot/internal/infra/repository"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/state"
)

type BookingQueries interface {
	ListUserBookings(ctx context.Context, userID string) ([]*BookingView, error)
	GetBooking(ctx context.Context, id string) (*BookingView, error)
	GetActiveBooking(ctx context.Context) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store    *repository.BookingStore
	appState *state.AppState
}

func NewBookingQueries(store *repository.BookingStore, appState *state.AppState) BookingQueries {
	return &bookingQueriesImpl{
		store:    store,
		appState: appState,
	}
}

func (q *bookingQueriesImpl) ListUserBookings(_ context.Context, userID string) ([]*BookingView, error) {
	bookings := q.store.ListByUser(userID)

	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, FromEntity(b))
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetBooking(_ context.Context, id string) (*BookingView, error) {
	b, ok := q.store.FindByID(id)
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	return FromEntity(b), nil
}

// GetActiveBooking reads the handoff pointer. The pointer is a value copy and
// not authoritative for status; screens that need current status should read
// the booking by id instead.
func (q *bookingQueriesImpl) GetActiveBooking(_ context.Context) (*BookingView, error) {
	b := q.appState.ActiveBooking()
	if b == nil {
		return nil, errs.ErrBookingNotFound
	}
	return FromEntity(b), nil
}

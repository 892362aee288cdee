package commands

import (
	"context"
	"errors"
	"log/slog"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/catalog"
	"parkspot/internal/feed"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/infra/localstore"
	"parkspot/internal/infra/mockapi"
	"parkspot/internal/infra/repository"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/state"
	"parkspot/internal/usecase/queries"
)

// BookingFacade is the booking/payment surface of the mock remote API.
type BookingFacade interface {
	FetchGarage(ctx context.Context, id string) (catalog.Garage, error)
	CreateBooking(ctx context.Context, input mockapi.CreateBookingInput) (mockapi.Booking, error)
	CancelBooking(ctx context.Context, id string) (mockapi.Booking, error)
	ProcessPayment(ctx context.Context, intent mockapi.PaymentIntent) (mockapi.PaymentIntent, error)
}

// ConfirmResult is the pending payload handed to the payment step. It carries
// everything that step needs; nothing is persisted centrally until payment
// succeeds, so abandoning the flow abandons the draft.
type ConfirmResult struct {
	Booking    mockapi.Booking `json:"booking"`
	Garage     catalog.Garage  `json:"garage"`
	Slot       catalog.Slot    `json:"slot"`
	TotalPrice float64         `json:"totalPrice"`
}

type BookingCommands interface {
	ConfirmBooking(ctx context.Context, req reqdto.ConfirmBookingRequest, userID string) (*ConfirmResult, error)
	CompletePayment(ctx context.Context, req reqdto.PaymentRequest, userID string) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	facade   BookingFacade
	store    *repository.BookingStore
	appState *state.AppState
	kv       localstore.Store
	hub      *feed.Hub
	clock    clock.Clock
}

func NewBookingCommands(
	facade BookingFacade,
	store *repository.BookingStore,
	appState *state.AppState,
	kv localstore.Store,
	hub *feed.Hub,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		facade:   facade,
		store:    store,
		appState: appState,
		kv:       kv,
		hub:      hub,
		clock:    clk,
	}
}

// ConfirmBooking validates the assembled selection and freezes the total at
// slot.pricePerHour × durationHours. The facade records a confirmed booking;
// nothing reaches the canonical store until payment.
func (c *bookingCommandsImpl) ConfirmBooking(
	ctx context.Context,
	req reqdto.ConfirmBookingRequest,
	userID string,
) (*ConfirmResult, error) {
	garage, err := c.facade.FetchGarage(ctx, req.GarageID)
	if err != nil {
		return nil, err
	}

	slot, ok := garage.FindSlot(req.SlotID)
	if !ok {
		return nil, errs.ErrSlotNotFound
	}
	if !slot.IsAvailable() {
		return nil, errs.ErrSlotUnavailable
	}

	plate, err := booking.NewPlate(req.VehiclePlate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	duration, err := booking.NewDuration(req.DurationHours)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	total := slot.PricePerHour * duration.Hours()

	created, err := c.facade.CreateBooking(ctx, mockapi.CreateBookingInput{
		GarageID:      garage.ID,
		SlotID:        slot.ID,
		UserID:        userID,
		VehiclePlate:  plate.String(),
		DurationHours: duration.Hours(),
		TotalPrice:    total,
	})
	if err != nil {
		return nil, err
	}

	return &ConfirmResult{
		Booking:    created,
		Garage:     garage,
		Slot:       slot,
		TotalPrice: total,
	}, nil
}

// CompletePayment turns the confirmed payload into the durable record. A
// payload missing its upstream selection yields ErrIncompleteSelection, which
// the surface maps to a redirect rather than a partial submit.
func (c *bookingCommandsImpl) CompletePayment(
	ctx context.Context,
	req reqdto.PaymentRequest,
	userID string,
) (*queries.BookingView, error) {
	if req.BookingID == "" || req.GarageID == "" || req.SlotID == "" {
		return nil, errs.ErrIncompleteSelection
	}
	if req.TotalPrice < 0 {
		return nil, errs.Mark(errs.New("total price cannot be negative"), errs.ErrValidationFailed)
	}

	duration := req.DurationHours
	if duration <= 0 {
		return nil, errs.Mark(errs.New("duration must be positive"), errs.ErrValidationFailed)
	}

	method := mockapi.PaymentMethod(req.Method)
	if method == "" {
		method = mockapi.MethodCard
	}

	if _, err := c.facade.ProcessPayment(ctx, mockapi.PaymentIntent{
		BookingID: req.BookingID,
		Amount:    req.TotalPrice,
		Method:    method,
		Status:    mockapi.PaymentPending,
	}); err != nil {
		return nil, err
	}

	start := c.clock.Now()
	timeRange, err := booking.NewTimeRange(start, duration)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	// The booking keeps the id issued at confirmation; the total stays
	// frozen as confirmed, it is not recomputed here.
	entity := booking.ReconstructBooking(
		req.BookingID,
		req.GarageID,
		req.SlotID,
		userID,
		req.VehiclePlate,
		req.TotalPrice,
		timeRange,
		booking.StatusConfirmed,
	)
	if err := entity.Activate(); err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	c.store.Add(entity)
	c.appState.SetActiveBooking(entity)
	c.mirrorBooking(entity)
	c.hub.Publish(feed.StatusUpdate{BookingID: entity.ID(), Status: booking.StatusActive})

	return queries.FromEntity(entity), nil
}

// mirrorBooking maintains the legacy app-state bookings copy under its own
// storage key. Known duplication with the canonical store, kept for
// compatibility with previously persisted sessions.
func (c *bookingCommandsImpl) mirrorBooking(entity *booking.Booking) {
	records := append(c.appState.Bookings(), repository.ToRecord(entity))
	c.appState.SetBookings(records)
	if err := localstore.Save(c.kv, state.KeyBookings, records); err != nil {
		slog.Warn("legacy mirror persistence degraded", "key", state.KeyBookings, "error", err.Error())
	}
}

// CancelBooking flips the record's status in place. The record stays in the
// store; there is no delete path.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id string) (*queries.BookingView, error) {
	existing, ok := c.store.FindByID(id)
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	if !existing.Status().CanCancel() {
		return nil, errs.ErrBookingNotCancelable
	}

	c.store.Update(id, func(b *booking.Booking) {
		if err := b.Cancel(); err != nil {
			slog.Warn("cancel skipped during update", "booking_id", id, "status", b.Status().String())
		}
	})

	// Best-effort facade-side cancellation; the facade may never have seen
	// this id (e.g. state restored from storage).
	if _, err := c.facade.CancelBooking(ctx, id); err != nil && !errors.Is(err, errs.ErrBookingNotFound) {
		slog.Warn("facade cancellation failed", "booking_id", id, "error", err.Error())
	}

	if active := c.appState.ActiveBooking(); active != nil && active.ID() == id {
		c.appState.SetActiveBooking(nil)
	}

	c.hub.Publish(feed.StatusUpdate{BookingID: id, Status: booking.StatusCancelled})

	updated, _ := c.store.FindByID(id)
	return queries.FromEntity(updated), nil
}

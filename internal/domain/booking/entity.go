package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPlateTooShort     = errors.New("vehicle plate too short")
	ErrInvalidDuration   = errors.New("duration not in allowed set")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCancelable     = errors.New("booking cannot be cancelled")
)

// Booking is the durable unit of record. TotalPrice is computed once at
// construction and never recomputed, even if the catalog price changes later.
type Booking struct {
	id           string
	garageID     string
	slotID       string
	userID       string
	vehiclePlate Plate
	totalPrice   float64
	timeRange    TimeRange
	status       Status
}

// NewBooking builds a confirmed booking from the assembled selection.
// The total is frozen here: pricePerHour × duration hours.
func NewBooking(
	garageID, slotID, userID string,
	plate Plate,
	pricePerHour float64,
	duration Duration,
	start time.Time,
) (*Booking, error) {
	if pricePerHour < 0 {
		return nil, ErrNegativePrice
	}

	timeRange, err := NewTimeRange(start, duration.Hours())
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:           GenerateID(),
		garageID:     garageID,
		slotID:       slotID,
		userID:       userID,
		vehiclePlate: plate,
		totalPrice:   pricePerHour * duration.Hours(),
		timeRange:    timeRange,
		status:       StatusConfirmed,
	}, nil
}

// ReconstructBooking rebuilds an entity from stored state. Stored values are
// trusted as written; no invariants are re-checked on load.
func ReconstructBooking(
	id, garageID, slotID, userID, vehiclePlate string,
	totalPrice float64,
	timeRange TimeRange,
	status Status,
) *Booking {
	return &Booking{
		id:           id,
		garageID:     garageID,
		slotID:       slotID,
		userID:       userID,
		vehiclePlate: Plate{value: vehiclePlate},
		totalPrice:   totalPrice,
		timeRange:    timeRange,
		status:       status,
	}
}

func GenerateID() string {
	return fmt.Sprintf("booking-%s", uuid.NewString())
}

// Activate marks the booking as the running session after payment success.
func (b *Booking) Activate() error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusActive
	return nil
}

// Cancel is the user-initiated end state. The record is kept, never removed.
func (b *Booking) Cancel() error {
	if !b.status.CanCancel() {
		return ErrNotCancelable
	}
	b.status = StatusCancelled
	return nil
}

// Complete marks an active booking whose time window has elapsed.
func (b *Booking) Complete() error {
	if b.status != StatusActive {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) HasElapsed(now time.Time) bool {
	return b.timeRange.HasElapsed(now)
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) ID() string           { return b.id }
func (b *Booking) GarageID() string     { return b.garageID }
func (b *Booking) SlotID() string       { return b.slotID }
func (b *Booking) UserID() string       { return b.userID }
func (b *Booking) VehiclePlate() string { return b.vehiclePlate.value }
func (b *Booking) TotalPrice() float64  { return b.totalPrice }
func (b *Booking) Time() TimeRange      { return b.timeRange }
func (b *Booking) Status() Status       { return b.status }

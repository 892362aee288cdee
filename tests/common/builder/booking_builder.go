//go:build unit || e2e

package builder

import (
	"time"

	dombooking "parkspot/internal/domain/booking"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/infra/repository"
	"parkspot/internal/usecase/queries"
)

type BookingBuilder struct {
	ID            string
	GarageID      string
	SlotID        string
	UserID        string
	VehiclePlate  string
	PricePerHour  float64
	DurationHours float64
	Start         time.Time
	Status        dombooking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            "booking-test",
		GarageID:      "garage-1",
		SlotID:        "slot-1",
		UserID:        "user-mock",
		VehiclePlate:  "ABC-1234",
		PricePerHour:  6,
		DurationHours: 2,
		Start:         time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:        dombooking.StatusConfirmed,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	plate, err := dombooking.NewPlate(b.VehiclePlate)
	if err != nil {
		return nil, err
	}
	duration, err := dombooking.NewDuration(b.DurationHours)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.GarageID, b.SlotID, b.UserID, plate, b.PricePerHour, duration, b.Start)
}

// BuildStored rebuilds an entity the way the store does on load, with the
// builder's id and status taken as written.
func (b *BookingBuilder) BuildStored() *dombooking.Booking {
	timeRange := dombooking.ReconstructTimeRange(
		b.Start,
		b.Start.Add(time.Duration(b.DurationHours*float64(time.Hour))),
		b.DurationHours,
	)
	return dombooking.ReconstructBooking(
		b.ID,
		b.GarageID,
		b.SlotID,
		b.UserID,
		b.VehiclePlate,
		b.PricePerHour*b.DurationHours,
		timeRange,
		b.Status,
	)
}

func (b *BookingBuilder) BuildRecord() repository.Record {
	return repository.ToRecord(b.BuildStored())
}

func (b *BookingBuilder) BuildConfirmRequestDTO() reqdto.ConfirmBookingRequest {
	return reqdto.ConfirmBookingRequest{
		GarageID:      b.GarageID,
		SlotID:        b.SlotID,
		VehiclePlate:  b.VehiclePlate,
		DurationHours: b.DurationHours,
	}
}

func (b *BookingBuilder) BuildPaymentRequestDTO() reqdto.PaymentRequest {
	return reqdto.PaymentRequest{
		BookingID:     b.ID,
		GarageID:      b.GarageID,
		SlotID:        b.SlotID,
		VehiclePlate:  b.VehiclePlate,
		DurationHours: b.DurationHours,
		TotalPrice:    b.PricePerHour * b.DurationHours,
		Method:        "card",
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.FromEntity(b.BuildStored())
}

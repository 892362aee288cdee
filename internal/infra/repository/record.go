package repository

import (
	"time"

	"parkspot/internal/domain/booking"
)

// Record is the wire shape of a persisted booking. The field names match the
// JSON layout the original client wrote under its storage keys and must stay
// stable across releases.
type Record struct {
	ID           string     `json:"id"`
	GarageID     string     `json:"garageId"`
	UserID       string     `json:"userId"`
	SlotID       string     `json:"slotId"`
	Status       string     `json:"status"`
	TotalPrice   float64    `json:"totalPrice"`
	VehiclePlate string     `json:"vehiclePlate"`
	Time         TimeRecord `json:"time"`
}

type TimeRecord struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"durationHours"`
}

func ToRecord(b *booking.Booking) Record {
	return Record{
		ID:           b.ID(),
		GarageID:     b.GarageID(),
		UserID:       b.UserID(),
		SlotID:       b.SlotID(),
		Status:       b.Status().String(),
		TotalPrice:   b.TotalPrice(),
		VehiclePlate: b.VehiclePlate(),
		Time: TimeRecord{
			Start:         b.Time().Start(),
			End:           b.Time().End(),
			DurationHours: b.Time().DurationHours(),
		},
	}
}

func FromRecord(r Record) *booking.Booking {
	timeRange := booking.ReconstructTimeRange(r.Time.Start, r.Time.End, r.Time.DurationHours)
	return booking.ReconstructBooking(
		r.ID,
		r.GarageID,
		r.SlotID,
		r.UserID,
		r.VehiclePlate,
		r.TotalPrice,
		timeRange,
		booking.Status(r.Status),
	)
}

package queries

import (
	"time"

	"parkspot/internal/domain/booking"
)

// Read models (DTO for read side)
type BookingView struct {
	ID           string   `json:"id"`
	GarageID     string   `json:"garageId"`
	UserID       string   `json:"userId"`
	SlotID       string   `json:"slotId"`
	Status       string   `json:"status"`
	TotalPrice   float64  `json:"totalPrice"`
	VehiclePlate string   `json:"vehiclePlate"`
	Time         TimeView `json:"time"`
}

type TimeView struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"durationHours"`
}

func FromEntity(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:           b.ID(),
		GarageID:     b.GarageID(),
		UserID:       b.UserID(),
		SlotID:       b.SlotID(),
		Status:       b.Status().String(),
		TotalPrice:   b.TotalPrice(),
		VehiclePlate: b.VehiclePlate(),
		Time: TimeView{
			Start:         b.Time().Start(),
			End:           b.Time().End(),
			DurationHours: b.Time().DurationHours(),
		},
	}
}

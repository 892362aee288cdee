package response

import (
	"time"

	"parkspot/internal/domain/catalog"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

type BookingResponse struct {
	ID           string      `json:"id"`
	GarageID     string      `json:"garageId"`
	UserID       string      `json:"userId"`
	SlotID       string      `json:"slotId"`
	Status       string      `json:"status"`
	TotalPrice   float64     `json:"totalPrice"`
	VehiclePlate string      `json:"vehiclePlate"`
	Time         BookingTime `json:"time"`
}

type BookingTime struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"durationHours"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		GarageID:     v.GarageID,
		UserID:       v.UserID,
		SlotID:       v.SlotID,
		Status:       v.Status,
		TotalPrice:   v.TotalPrice,
		VehiclePlate: v.VehiclePlate,
		Time: BookingTime{
			Start:         v.Time.Start,
			End:           v.Time.End,
			DurationHours: v.Time.DurationHours,
		},
	}
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

// ConfirmBookingResponse echoes the selection back with the frozen total so
// the payment step can be submitted without refetching the catalog.
type ConfirmBookingResponse struct {
	BookingID    string         `json:"bookingId"`
	Garage       catalog.Garage `json:"garage"`
	Slot         catalog.Slot   `json:"slot"`
	VehiclePlate string         `json:"vehiclePlate"`
	Duration     float64        `json:"durationHours"`
	TotalPrice   float64        `json:"totalPrice"`
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		BookingID:    r.Booking.ID,
		Garage:       r.Garage,
		Slot:         r.Slot,
		VehiclePlate: r.Booking.VehiclePlate,
		Duration:     r.Booking.Time.DurationHours,
		TotalPrice:   r.TotalPrice,
	}
}

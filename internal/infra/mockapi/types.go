package mockapi

import "time"

// Booking is the facade's wire shape, mirroring the backend contract the
// original client consumed.
type Booking struct {
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

type CreateBookingInput struct {
	GarageID      string
	SlotID        string
	UserID        string
	VehiclePlate  string
	DurationHours float64
	TotalPrice    float64
}

type ProfileUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodWallet PaymentMethod = "wallet"
	MethodCash   PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type PaymentIntent struct {
	BookingID string        `json:"bookingId"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Status    PaymentStatus `json:"status"`
}

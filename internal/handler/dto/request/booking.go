package request

// ConfirmBookingRequest carries the assembled selection into the
// confirmation step. All references are required here: confirmation is the
// first point where a partial draft is rejected.
type ConfirmBookingRequest struct {
	GarageID      string  `json:"garageId" binding:"required"`
	SlotID        string  `json:"slotId" binding:"required"`
	VehiclePlate  string  `json:"vehiclePlate" binding:"required"`
	DurationHours float64 `json:"durationHours" binding:"required"`
}

// PaymentRequest is deliberately not bind-validated field by field: a payload
// missing its upstream selection must reach the usecase so the flow can
// redirect to a safe entry point instead of failing with a bare 400.
type PaymentRequest struct {
	BookingID     string  `json:"bookingId"`
	GarageID      string  `json:"garageId"`
	SlotID        string  `json:"slotId"`
	VehiclePlate  string  `json:"vehiclePlate"`
	DurationHours float64 `json:"durationHours"`
	TotalPrice    float64 `json:"totalPrice"`
	Method        string  `json:"method"`
}

// CancelBookingRequest is empty today; cancellation is addressed by path id.
type CancelBookingRequest struct{}

package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrGarageNotFound = errors.New("garage not found")
	ErrFloorNotFound  = errors.New("floor not found")
	ErrSlotNotFound   = errors.New("slot not found")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrSlotUnavailable      = errors.New("slot not available")
	ErrBookingNotCancelable = errors.New("booking cannot be cancelled")

	// Selection pipeline errors
	ErrIncompleteSelection = errors.New("selection payload incomplete")
	ErrInvalidDuration     = errors.New("duration not in allowed set")
	ErrInvalidPlate        = errors.New("vehicle plate too short")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Persistence errors (absorbed at the store boundary, never user-facing)
	ErrPersistenceDegraded  = errors.New("persistence degraded")
	ErrMalformedStoredState = errors.New("malformed stored state")
)

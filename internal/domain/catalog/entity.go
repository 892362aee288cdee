// Package catalog holds the read-only garage/floor/slot entities served by the
// mock remote facade. Slot status is advisory mock data: it is never reconciled
// against the booking store, so booking a slot does not flip it to occupied.
package catalog

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotOccupied  SlotStatus = "occupied"
	SlotReserved  SlotStatus = "reserved"
)

func (s SlotStatus) IsValid() bool {
	switch s {
	case SlotAvailable, SlotOccupied, SlotReserved:
		return true
	default:
		return false
	}
}

type VehicleSize string

const (
	SizeCompact  VehicleSize = "compact"
	SizeStandard VehicleSize = "standard"
	SizeLarge    VehicleSize = "large"
)

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city,omitempty"`
}

type Slot struct {
	ID           string      `json:"id"`
	Number       string      `json:"number"`
	Status       SlotStatus  `json:"status"`
	Level        int         `json:"level"`
	VehicleSize  VehicleSize `json:"vehicleSize"`
	PricePerHour float64     `json:"pricePerHour"`
}

func (s Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

type Floor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Level          int    `json:"level"`
	TotalSlots     int    `json:"totalSlots"`
	AvailableSlots int    `json:"availableSlots"`
	Layout         []Slot `json:"layout,omitempty"`
}

type Garage struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Image          string   `json:"image,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	PricePerHour   float64  `json:"pricePerHour"`
	Amenities      []string `json:"amenities,omitempty"`
	TotalSlots     int      `json:"totalSlots"`
	AvailableSlots int      `json:"availableSlots"`
	Location       Location `json:"location"`
	Floors         []Floor  `json:"floors,omitempty"`
}

// FindSlot walks every floor layout in order and returns the first slot with
// the given id.
func (g Garage) FindSlot(slotID string) (Slot, bool) {
	for _, floor := range g.Floors {
		for _, slot := range floor.Layout {
			if slot.ID == slotID {
				return slot, true
			}
		}
	}
	return Slot{}, false
}

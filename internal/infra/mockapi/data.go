package mockapi

import (
	"fmt"
	"time"

	"parkspot/internal/domain/catalog"
	"parkspot/internal/domain/user"
)

// DemoUser is the identity returned by the mock auth operations when the
// caller has not registered an account.
var DemoUser = user.User{
	ID:    "user-mock",
	Name:  "Demo Driver",
	Email: "demo@parkspot.app",
	Phone: "123-456-7890",
}

// makeLayout builds a 12-slot floor layout. Every third slot is occupied and
// prices cycle through four steps above the garage base rate, so the catalog
// is deterministic without being uniform.
func makeLayout(basePrice float64, idSuffix string, level int) []catalog.Slot {
	slots := make([]catalog.Slot, 0, 12)
	for i := 0; i < 12; i++ {
		status := catalog.SlotAvailable
		if (i+1)%3 == 0 {
			status = catalog.SlotOccupied
		}
		slots = append(slots, catalog.Slot{
			ID:           fmt.Sprintf("slot-%d%s", i+1, idSuffix),
			Number:       fmt.Sprintf("%d", i+1),
			Status:       status,
			Level:        level,
			VehicleSize:  catalog.SizeStandard,
			PricePerHour: basePrice + float64(i%4),
		})
	}
	return slots
}

func countAvailable(slots []catalog.Slot) int {
	n := 0
	for _, s := range slots {
		if s.IsAvailable() {
			n++
		}
	}
	return n
}

func makeFloors(basePrice float64) []catalog.Floor {
	ground := makeLayout(basePrice, "", 1)
	second := makeLayout(basePrice, "-b", 2)

	return []catalog.Floor{
		{
			ID:             "floor-a",
			Name:           "Ground Floor",
			Level:          0,
			TotalSlots:     len(ground),
			AvailableSlots: countAvailable(ground),
			Layout:         ground,
		},
		{
			ID:             "floor-b",
			Name:           "Second Floor",
			Level:          1,
			TotalSlots:     len(second),
			AvailableSlots: countAvailable(second),
			Layout:         second,
		},
	}
}

func defaultCatalog() []catalog.Garage {
	return []catalog.Garage{
		{
			ID:             "garage-1",
			Name:           "Downtown Eco Park",
			Description:    "Secure multi-level parking with EV charging and concierge.",
			PricePerHour:   6,
			Amenities:      []string{"CCTV", "EV", "Valet"},
			TotalSlots:     120,
			AvailableSlots: 48,
			Rating:         4.6,
			Location:       catalog.Location{Lat: 23.8103, Lng: 90.4125, Address: "12 West Park St"},
			Floors:         makeFloors(6),
		},
		{
			ID:             "garage-2",
			Name:           "Airport Express Parking",
			Description:    "Best place to keep your car before a flight.",
			PricePerHour:   8,
			Amenities:      []string{"24/7", "Shuttle"},
			TotalSlots:     80,
			AvailableSlots: 20,
			Rating:         4.2,
			Location:       catalog.Location{Lat: 23.8203, Lng: 90.4225, Address: "Airport Rd"},
			Floors:         makeFloors(8),
		},
		{
			ID:             "garage-3",
			Name:           "Harbor Panorama Parking",
			Description:    "Rooftop views, EV superchargers, and luggage assistance.",
			PricePerHour:   7,
			Amenities:      []string{"Rooftop", "EV", "Concierge"},
			TotalSlots:     150,
			AvailableSlots: 72,
			Rating:         4.8,
			Location:       catalog.Location{Lat: 23.799, Lng: 90.406, Address: "Harbor Link Road"},
			Floors:         makeFloors(7),
		},
	}
}

func seedBookings(now time.Time) []Booking {
	return []Booking{
		{
			ID:           "booking-1",
			GarageID:     "garage-1",
			UserID:       DemoUser.ID,
			SlotID:       "slot-1",
			Status:       "active",
			TotalPrice:   18,
			VehiclePlate: "ABX-9080",
			Time: BookingTime{
				Start:         now,
				End:           now.Add(2 * time.Hour),
				DurationHours: 2,
			},
		},
		{
			ID:           "booking-2",
			GarageID:     "garage-2",
			UserID:       DemoUser.ID,
			SlotID:       "slot-5",
			Status:       "confirmed",
			TotalPrice:   24,
			VehiclePlate: "XYZ-1234",
			Time: BookingTime{
				Start:         now.Add(-24 * time.Hour),
				End:           now.Add(-22 * time.Hour),
				DurationHours: 2,
			},
		},
	}
}

//go:build unit

package mockapi_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/infra/mockapi"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacade(t *testing.T) *mockapi.Facade {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	return mockapi.NewFacade(config.NewTestConfig().Mock, clk)
}

func TestFacade_Auth(t *testing.T) {
	ctx := context.Background()

	t.Run("login without registration falls back to the demo identity", func(t *testing.T) {
		f := newFacade(t)

		u, err := f.Login(ctx, "visitor@example.com", "whatever")
		require.NoError(t, err)
		assert.Equal(t, mockapi.DemoUser.ID, u.ID)
		assert.Equal(t, "visitor@example.com", u.Email)
	})

	t.Run("registered account requires the right password", func(t *testing.T) {
		f := newFacade(t)

		registered, err := f.Register(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)
		assert.NotEqual(t, mockapi.DemoUser.ID, registered.ID)

		u, err := f.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)

		_, err = f.Login(ctx, "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, mockapi.ErrInvalidCredentials)
	})

	t.Run("register rejects missing fields", func(t *testing.T) {
		f := newFacade(t)

		_, err := f.Register(ctx, "", "someone@example.com", "password123")
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("profile update applies only provided fields", func(t *testing.T) {
		f := newFacade(t)

		registered, err := f.Register(ctx, "Bob", "bob@example.com", "password123")
		require.NoError(t, err)

		name := "Robert"
		updated, err := f.UpdateProfile(ctx, registered.ID, mockapi.ProfileUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Robert", updated.Name)
		assert.Equal(t, "bob@example.com", updated.Email)
	})
}

func TestFacade_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("full catalog", func(t *testing.T) {
		f := newFacade(t)

		garages, err := f.FetchGarages(ctx, "")
		require.NoError(t, err)
		require.Len(t, garages, 3)
		assert.Equal(t, "garage-1", garages[0].ID)
		assert.Equal(t, 6.0, garages[0].PricePerHour)
	})

	t.Run("search filters case-insensitively on name, address, description", func(t *testing.T) {
		f := newFacade(t)

		byName, err := f.FetchGarages(ctx, "AIRPORT")
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "garage-2", byName[0].ID)

		byAddress, err := f.FetchGarages(ctx, "harbor link")
		require.NoError(t, err)
		require.Len(t, byAddress, 1)
		assert.Equal(t, "garage-3", byAddress[0].ID)

		none, err := f.FetchGarages(ctx, "no such place")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("garage lookup by id", func(t *testing.T) {
		f := newFacade(t)

		g, err := f.FetchGarage(ctx, "garage-1")
		require.NoError(t, err)
		assert.Equal(t, "Downtown Eco Park", g.Name)
		require.Len(t, g.Floors, 2)
		assert.Equal(t, "floor-a", g.Floors[0].ID)
		assert.Len(t, g.Floors[0].Layout, 12)

		_, err = f.FetchGarage(ctx, "garage-absent")
		assert.ErrorIs(t, err, errs.ErrGarageNotFound)
	})

	t.Run("slot layout is deterministic", func(t *testing.T) {
		f := newFacade(t)

		slots, err := f.FetchSlots(ctx, "floor-a")
		require.NoError(t, err)
		require.Len(t, slots, 12)

		// slot-1 in garage-1: base rate 6, available.
		assert.Equal(t, "slot-1", slots[0].ID)
		assert.Equal(t, 6.0, slots[0].PricePerHour)
		assert.True(t, slots[0].IsAvailable())

		// Every third slot is occupied.
		assert.False(t, slots[2].IsAvailable())
		assert.False(t, slots[5].IsAvailable())

		_, err = f.FetchSlots(ctx, "floor-absent")
		assert.ErrorIs(t, err, errs.ErrFloorNotFound)
	})

	t.Run("returned catalog entries are isolated copies", func(t *testing.T) {
		f := newFacade(t)

		g, err := f.FetchGarage(ctx, "garage-1")
		require.NoError(t, err)
		g.Floors[0].Layout[0].PricePerHour = 999

		again, err := f.FetchGarage(ctx, "garage-1")
		require.NoError(t, err)
		assert.Equal(t, 6.0, again.Floors[0].Layout[0].PricePerHour)
	})
}

func TestFacade_Bookings(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults missing optional fields", func(t *testing.T) {
		f := newFacade(t)

		created, err := f.CreateBooking(ctx, mockapi.CreateBookingInput{
			GarageID: "garage-1",
			SlotID:   "slot-1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, mockapi.DemoUser.ID, created.UserID)
		assert.Equal(t, "TEMP-123", created.VehiclePlate)
		assert.Equal(t, 1.0, created.Time.DurationHours)
		assert.Equal(t, "confirmed", created.Status)
	})

	t.Run("create rejects missing references", func(t *testing.T) {
		f := newFacade(t)

		_, err := f.CreateBooking(ctx, mockapi.CreateBookingInput{SlotID: "slot-1"})
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("seeded bookings are visible for the demo user", func(t *testing.T) {
		f := newFacade(t)

		bookings, err := f.FetchUserBookings(ctx, mockapi.DemoUser.ID)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, "booking-1", bookings[0].ID)
		assert.Equal(t, "active", bookings[0].Status)
	})

	t.Run("cancel flips status and unknown id fails", func(t *testing.T) {
		f := newFacade(t)

		cancelled, err := f.CancelBooking(ctx, "booking-1")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", cancelled.Status)

		_, err = f.CancelBooking(ctx, "booking-absent")
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("payment succeeds deterministically", func(t *testing.T) {
		f := newFacade(t)

		intent, err := f.ProcessPayment(ctx, mockapi.PaymentIntent{
			BookingID: "booking-1",
			Amount:    12,
			Method:    mockapi.MethodCard,
		})
		require.NoError(t, err)
		assert.Equal(t, mockapi.PaymentPaid, intent.Status)

		_, err = f.ProcessPayment(ctx, mockapi.PaymentIntent{Amount: 12})
		assert.ErrorIs(t, err, errs.ErrValidationFailed)

		_, err = f.ProcessPayment(ctx, mockapi.PaymentIntent{BookingID: "booking-1", Amount: -1})
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
	})
}

func TestFacade_Latency(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	f := mockapi.NewFacade(config.MockConfig{Latency: 50 * time.Millisecond}, clk)

	t.Run("cancelled context aborts the call", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.FetchGarages(ctx, "")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("call resolves after the artificial delay", func(t *testing.T) {
		start := time.Now()
		_, err := f.FetchGarages(context.Background(), "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})
}

//go:build unit

package jobs_test

import (
	"testing"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/feed"
	"parkspot/internal/infra/localstore"
	"parkspot/internal/infra/repository"
	"parkspot/internal/jobs"
	"parkspot/internal/pkg/clock"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(store *repository.BookingStore, id string, status booking.Status, start time.Time, hours float64) {
	b := builder.NewBookingBuilder()
	b.ID = id
	b.Status = status
	b.Start = start
	b.DurationHours = hours
	store.Add(b.BuildStored())
}

func TestSweep(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("completes active bookings whose window has elapsed", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())
		hub := feed.NewHub()
		defer hub.Close()
		clk := clock.NewMockClock(start)

		seedBooking(store, "booking-elapsed", booking.StatusActive, start, 1)
		seedBooking(store, "booking-running", booking.StatusActive, start, 6)
		seedBooking(store, "booking-confirmed", booking.StatusConfirmed, start.Add(-24*time.Hour), 1)

		sub := hub.Subscribe("booking-elapsed")
		defer sub.Cancel()

		sweeper := jobs.NewExpirySweeper(store, hub, clk, 0)
		clk.Add(2 * time.Hour)
		sweeper.Sweep()

		elapsed, ok := store.FindByID("booking-elapsed")
		require.True(t, ok)
		assert.Equal(t, booking.StatusCompleted, elapsed.Status())

		running, ok := store.FindByID("booking-running")
		require.True(t, ok)
		assert.Equal(t, booking.StatusActive, running.Status())

		// Only active bookings are swept, even with an elapsed window.
		confirmed, ok := store.FindByID("booking-confirmed")
		require.True(t, ok)
		assert.Equal(t, booking.StatusConfirmed, confirmed.Status())

		select {
		case update := <-sub.C:
			assert.Equal(t, booking.StatusCompleted, update.Status)
		default:
			t.Fatal("expected a completion update on the feed")
		}
	})

	t.Run("sweep is idempotent", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())
		hub := feed.NewHub()
		defer hub.Close()
		clk := clock.NewMockClock(start)

		seedBooking(store, "booking-1", booking.StatusActive, start, 1)

		sweeper := jobs.NewExpirySweeper(store, hub, clk, 0)
		clk.Add(2 * time.Hour)
		sweeper.Sweep()
		sweeper.Sweep()

		b, ok := store.FindByID("booking-1")
		require.True(t, ok)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})
}

func TestSweeperLifecycle(t *testing.T) {
	t.Run("zero interval disables the loop", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())
		hub := feed.NewHub()
		defer hub.Close()

		sweeper := jobs.NewExpirySweeper(store, hub, clock.NewRealClock(), 0)
		sweeper.Start()
		sweeper.Stop()
	})

	t.Run("start and stop with a running ticker", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())
		hub := feed.NewHub()
		defer hub.Close()

		sweeper := jobs.NewExpirySweeper(store, hub, clock.NewRealClock(), time.Hour)
		sweeper.Start()
		sweeper.Stop()
	})
}

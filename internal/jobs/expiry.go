// Package jobs holds background maintenance work. The expiry sweeper closes
// the one lifecycle transition no user action triggers: an active booking
// whose time window has elapsed becomes completed.
package jobs

import (
	"log/slog"
	"time"

	"parkspot/internal/domain/booking"
	"parkspot/internal/feed"
	"parkspot/internal/infra/repository"
	"parkspot/internal/pkg/clock"
)

type ExpirySweeper struct {
	store    *repository.BookingStore
	hub      *feed.Hub
	clock    clock.Clock
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewExpirySweeper(store *repository.BookingStore, hub *feed.Hub, clk clock.Clock, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{
		store:    store,
		hub:      hub,
		clock:    clk,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. A non-positive interval disables the sweeper.
func (j *ExpirySweeper) Start() {
	if j.interval <= 0 {
		close(j.done)
		return
	}
	go j.run()
	slog.Info("expiry sweeper started", "interval", j.interval.String())
}

func (j *ExpirySweeper) Stop() {
	if j.interval <= 0 {
		return
	}
	close(j.stop)
	<-j.done
	slog.Info("expiry sweeper stopped")
}

func (j *ExpirySweeper) run() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Sweep()
		case <-j.stop:
			return
		}
	}
}

// Sweep completes every active booking whose window has elapsed and announces
// the transition on the feed.
func (j *ExpirySweeper) Sweep() {
	now := j.clock.Now()

	for _, b := range j.store.List() {
		if !b.IsActive() || !b.HasElapsed(now) {
			continue
		}

		id := b.ID()
		j.store.Update(id, func(target *booking.Booking) {
			if err := target.Complete(); err != nil {
				slog.Warn("skipping completion for booking in unexpected state",
					"booking_id", id, "status", target.Status().String())
			}
		})
		j.hub.Publish(feed.StatusUpdate{BookingID: id, Status: booking.StatusCompleted})
	}
}

package bootstrap

import (
	"context"

	"parkspot/internal/feed"
	"parkspot/internal/infra/repository"
	"parkspot/internal/jobs"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewHub,
		NewExpirySweeper,
	),
	fx.Invoke(
		func(*jobs.ExpirySweeper) {},
	),
)

func NewHub(lc fx.Lifecycle) *feed.Hub {
	hub := feed.NewHub()

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})

	return hub
}

func NewExpirySweeper(
	lc fx.Lifecycle,
	cfg config.Config,
	store *repository.BookingStore,
	hub *feed.Hub,
	clk clock.Clock,
) *jobs.ExpirySweeper {
	sweeper := jobs.NewExpirySweeper(store, hub, clk, cfg.Jobs.ExpiryInterval)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})

	return sweeper
}

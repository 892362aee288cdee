package components

import (
	"parkspot/internal/infra/mockapi"
	"parkspot/internal/infra/repository"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/state"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		state.NewAppState,
		repository.NewBookingStore,
		fx.Annotate(
			NewMockFacade,
			fx.As(new(commands.AuthFacade)),
			fx.As(new(commands.BookingFacade)),
			fx.As(new(queries.CatalogFacade)),
		),
	),
)

func NewMockFacade(cfg config.Config, clk clock.Clock) *mockapi.Facade {
	return mockapi.NewFacade(cfg.Mock, clk)
}

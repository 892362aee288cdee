package queries

import (
	"context"

	"parkspot/internal/domain/catalog"
)

// CatalogFacade is the read surface of the mock remote API the catalog
// queries depend on.
type CatalogFacade interface {
	FetchGarages(ctx context.Context, query string) ([]catalog.Garage, error)
	FetchGarage(ctx context.Context, id string) (catalog.Garage, error)
	FetchFloors(ctx context.Context, garageID string) ([]catalog.Floor, error)
	FetchSlots(ctx context.Context, floorID string) ([]catalog.Slot, error)
}

type CatalogQueries interface {
	ListGarages(ctx context.Context, query string) ([]catalog.Garage, error)
	GetGarage(ctx context.Context, id string) (catalog.Garage, error)
	ListFloors(ctx context.Context, garageID string) ([]catalog.Floor, error)
	ListSlots(ctx context.Context, floorID string) ([]catalog.Slot, error)
}

type catalogQueriesImpl struct {
	facade CatalogFacade
}

func NewCatalogQueries(facade CatalogFacade) CatalogQueries {
	return &catalogQueriesImpl{facade: facade}
}

func (q *catalogQueriesImpl) ListGarages(ctx context.Context, query string) ([]catalog.Garage, error) {
	return q.facade.FetchGarages(ctx, query)
}

func (q *catalogQueriesImpl) GetGarage(ctx context.Context, id string) (catalog.Garage, error) {
	return q.facade.FetchGarage(ctx, id)
}

func (q *catalogQueriesImpl) ListFloors(ctx context.Context, garageID string) ([]catalog.Floor, error) {
	return q.facade.FetchFloors(ctx, garageID)
}

func (q *catalogQueriesImpl) ListSlots(ctx context.Context, floorID string) ([]catalog.Slot, error) {
	return q.facade.FetchSlots(ctx, floorID)
}

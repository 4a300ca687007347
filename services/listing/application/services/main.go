package services

import (
	"fmt"

	"github.com/metazeka/backend/pkg/app"
	"github.com/metazeka/backend/pkg/config"
	"github.com/metazeka/backend/pkg/logger"
	"github.com/metazeka/backend/services/listing/domain/repositories"
	"github.com/metazeka/backend/services/listing/infrastructure/persistence/postgres"
	"github.com/metazeka/backend/services/listing/infrastructure/persistence/postgrest"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Listing *ListingService
}

// New wires the listing services to the record store held by the Application.
// It fails when the configured driver has no matching store handle.
func New(a *app.Application) (*Services, error) {
	if err := config.ValidateStore(a.Config); err != nil {
		return nil, err
	}

	var repo repositories.ListingRepository
	switch a.Config.StoreDriver {
	case config.StoreDriverPostgres:
		if a.Db == nil {
			return nil, fmt.Errorf("listing services: %s driver selected but no database pool", a.Config.StoreDriver)
		}
		repo = postgres.NewListingRepository(a.Db, a.Config.ListingsTable)
	case config.StoreDriverPostgREST:
		if a.Store == nil {
			return nil, fmt.Errorf("listing services: %s driver selected but no REST client", a.Config.StoreDriver)
		}
		repo = postgrest.NewListingRepository(a.Store, a.Config.ListingsTable)
	default:
		return nil, fmt.Errorf("listing services: unknown store driver %q", a.Config.StoreDriver)
	}

	return NewWithRepository(repo, a.Logger)
}

// NewWithRepository wires the listing services around an existing repository.
func NewWithRepository(repo repositories.ListingRepository, log logger.Logger) (*Services, error) {
	listing, err := NewListingService(repo, log)
	if err != nil {
		return nil, err
	}
	return &Services{Listing: listing}, nil
}

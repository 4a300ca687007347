package repositories

import (
	"context"

	"github.com/metazeka/backend/services/listing/domain/models"
)

// ListingRepository is the persistence interface for listings.
// The domain layer owns this interface; infrastructure implements it.
//
// Every failure is a *domain.StoreError carrying the store's own message.
// Not-found failures also match domain.ErrListingNotFound.
type ListingRepository interface {
	// ListByUser returns at most limit listings for userID, newest first.
	// It never returns a nil slice on success.
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Listing, error)

	GetByID(ctx context.Context, id string) (*models.Listing, error)

	// Create inserts draft and returns the stored row.
	Create(ctx context.Context, draft *models.Draft) (*models.Listing, error)

	// Update overwrites the columns present in patch and returns the row.
	Update(ctx context.Context, id string, patch models.Patch) (*models.Listing, error)

	// Delete removes matching rows. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
}

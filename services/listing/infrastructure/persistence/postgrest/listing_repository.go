// Package postgrest implements the listing repository over the Supabase REST API.
package postgrest

import (
	"context"
	"errors"

	"github.com/metazeka/backend/pkg/postgrest"
	"github.com/metazeka/backend/services/listing/domain"
	"github.com/metazeka/backend/services/listing/domain/models"
)

// codeInvalidText is Postgres' invalid_text_representation, raised when an id
// filter is not a valid uuid.
const codeInvalidText = "22P02"

// ListingRepository implements repositories.ListingRepository against a
// PostgREST endpoint. Ids are passed through untouched; one the id column
// rejects as malformed is reported like a missing row.
type ListingRepository struct {
	client *postgrest.Client
	table  string
}

// NewListingRepository returns a ListingRepository for table.
func NewListingRepository(client *postgrest.Client, table string) *ListingRepository {
	return &ListingRepository{client: client, table: table}
}

func (r *ListingRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Listing, error) {
	rows := []*models.Listing{}
	err := r.client.From(r.table).
		Select("*").
		Eq("user_id", userID).
		Order("created_at", false).
		Limit(limit).
		Execute(ctx, &rows)
	if err != nil {
		return nil, storeError("list", err)
	}
	if rows == nil {
		rows = []*models.Listing{}
	}
	return rows, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var l models.Listing
	if err := r.client.From(r.table).Select("*").Eq("id", id).Single().Execute(ctx, &l); err != nil {
		return nil, storeError("get", err)
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, draft *models.Draft) (*models.Listing, error) {
	var l models.Listing
	if err := r.client.From(r.table).Insert(draft).Select("*").Single().Execute(ctx, &l); err != nil {
		return nil, storeError("create", err)
	}
	return &l, nil
}

func (r *ListingRepository) Update(ctx context.Context, id string, patch models.Patch) (*models.Listing, error) {
	var l models.Listing
	err := r.client.From(r.table).
		Update(patch.Columns()).
		Eq("id", id).
		Select("*").
		Single().
		Execute(ctx, &l)
	if err != nil {
		return nil, storeError("update", err)
	}
	return &l, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.From(r.table).Delete().Eq("id", id).Execute(ctx, nil); err != nil {
		se := storeError("delete", err)
		if errors.Is(se, domain.ErrListingNotFound) {
			return nil
		}
		return se
	}
	return nil
}

func (r *ListingRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx); err != nil {
		return storeError("ping", err)
	}
	return nil
}

// storeError keeps PostgREST's message verbatim. PGRST116 and a malformed id
// are the not-found class.
func storeError(op string, err error) error {
	se := &domain.StoreError{Op: op, Message: err.Error(), Err: err}
	var pe *postgrest.Error
	if errors.As(err, &pe) {
		se.Code = pe.Code
		se.NotFound = pe.Code == postgrest.CodeNoRows || pe.Code == codeInvalidText
	}
	return se
}

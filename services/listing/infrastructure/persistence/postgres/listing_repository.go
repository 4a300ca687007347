package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/metazeka/backend/pkg/database"
	"github.com/metazeka/backend/services/listing/domain"
	"github.com/metazeka/backend/services/listing/domain/models"
)

const columns = "id::text, user_id, title, description, created_at"

// ListingRepository implements repositories.ListingRepository against PostgreSQL.
type ListingRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewListingRepository returns a ListingRepository over table, backed by the
// given connection pool.
func NewListingRepository(db *database.Database, table string) *ListingRepository {
	return &ListingRepository{pool: db.Pool(), table: pgx.Identifier{table}.Sanitize()}
}

func (r *ListingRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Listing, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2", columns, r.table),
		userID, limit,
	)
	if err != nil {
		return nil, storeError("list", err)
	}
	listings, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[models.Listing])
	if err != nil {
		return nil, storeError("list", err)
	}
	if listings == nil {
		listings = []*models.Listing{}
	}
	return listings, nil
}

// GetByID returns ErrListingNotFound for a malformed id; it cannot match a uuid key.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, storeError("get", pgx.ErrNoRows)
	}
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", columns, r.table),
		uid,
	)
	if err != nil {
		return nil, storeError("get", err)
	}
	l, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[models.Listing])
	if err != nil {
		return nil, storeError("get", err)
	}
	return l, nil
}

func (r *ListingRepository) Create(ctx context.Context, draft *models.Draft) (*models.Listing, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf("INSERT INTO %s (user_id, title, description) VALUES ($1, $2, $3) RETURNING %s", r.table, columns),
		draft.UserID, draft.Title, draft.Description,
	)
	if err != nil {
		return nil, storeError("create", err)
	}
	l, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[models.Listing])
	if err != nil {
		return nil, storeError("create", err)
	}
	return l, nil
}

func (r *ListingRepository) Update(ctx context.Context, id string, patch models.Patch) (*models.Listing, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, storeError("update", pgx.ErrNoRows)
	}

	sql, args := buildUpdate(r.table, uid, patch)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeError("update", err)
	}
	l, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[models.Listing])
	if err != nil {
		return nil, storeError("update", err)
	}
	return l, nil
}

// Delete treats a malformed id as already gone.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	if _, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table), uid); err != nil {
		return storeError("delete", err)
	}
	return nil
}

func (r *ListingRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return storeError("ping", err)
	}
	return nil
}

// buildUpdate renders an UPDATE for the present patch columns in a fixed
// order (title, description) followed by the id predicate.
func buildUpdate(table string, id uuid.UUID, patch models.Patch) (string, []any) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if patch.Title.Set {
		args = append(args, patch.Title.Raw())
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Description.Set {
		args = append(args, patch.Description.Raw())
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	args = append(args, id)
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), columns), args
}

// storeError keeps the server's message verbatim. No rows, or more than one
// where one was expected, is the not-found class.
func storeError(op string, err error) error {
	se := &domain.StoreError{Op: op, Message: err.Error(), Err: err}
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		se.Code = pgErr.Code
		se.Message = pgErr.Message
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, pgx.ErrTooManyRows):
		se.NotFound = true
	}
	return se
}

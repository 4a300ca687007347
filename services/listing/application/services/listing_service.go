package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/metazeka/backend/pkg/logger"
	"github.com/metazeka/backend/pkg/telemetry"
	"github.com/metazeka/backend/services/listing/domain"
	"github.com/metazeka/backend/services/listing/domain/models"
	"github.com/metazeka/backend/services/listing/domain/repositories"
)

const meterName = "github.com/metazeka/backend/services/listing"

// ListingService validates listing requests and forwards them to the store.
// Validation failures never reach the repository. Every store call is counted
// and timed on the global meter.
type ListingService struct {
	repo     repositories.ListingRepository
	log      logger.Logger
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewListingService returns a ListingService over repo.
func NewListingService(repo repositories.ListingRepository, log logger.Logger) (*ListingService, error) {
	meter := otel.Meter(meterName)

	calls, err := meter.Int64Counter("listings.store.calls",
		metric.WithDescription("Record store calls by operation and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("listings.store.calls counter: %w", err)
	}
	duration, err := meter.Float64Histogram("listings.store.duration",
		metric.WithDescription("Record store call latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("listings.store.duration histogram: %w", err)
	}

	return &ListingService{repo: repo, log: log, calls: calls, duration: duration}, nil
}

// List returns the newest listings for q.UserID, at most q.Limit of them.
func (s *ListingService) List(ctx context.Context, q models.ListQuery) ([]*models.Listing, error) {
	if q.UserID == "" {
		return nil, &domain.ValidationError{Message: models.MessageUserIDRequired}
	}
	if q.Limit <= 0 {
		return nil, &domain.ValidationError{Message: models.MessageInvalidLimit}
	}

	start := time.Now()
	listings, err := s.repo.ListByUser(ctx, q.UserID, q.Limit)
	s.observe(ctx, "list", start, err)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

// Get returns one listing. A missing id yields ErrListingNotFound.
func (s *ListingService) Get(ctx context.Context, id string) (*models.Listing, error) {
	start := time.Now()
	l, err := s.repo.GetByID(ctx, id)
	s.observe(ctx, "get", start, err)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// Create inserts a listing for userID.
func (s *ListingService) Create(ctx context.Context, userID, title string, description *string) (*models.Listing, error) {
	draft, err := models.NewDraft(userID, title, description)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	l, err := s.repo.Create(ctx, draft)
	s.observe(ctx, "create", start, err)
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	s.log.InfoContext(ctx, "listing created", "listing_id", l.ID, "user_id", l.UserID)
	return l, nil
}

// Update applies patch to listing id. An empty patch re-reads the row.
func (s *ListingService) Update(ctx context.Context, id string, patch models.Patch) (*models.Listing, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	op := "update"
	start := time.Now()
	var (
		l   *models.Listing
		err error
	)
	if patch.Empty() {
		op = "get"
		l, err = s.repo.GetByID(ctx, id)
	} else {
		l, err = s.repo.Update(ctx, id, patch)
	}
	s.observe(ctx, op, start, err)
	if err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	return l, nil
}

// Delete removes listing id. A missing id is not an error.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.observe(ctx, "delete", start, err)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return nil
}

// Ping reports whether the record store is reachable.
func (s *ListingService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *ListingService) observe(ctx context.Context, op string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
		s.log.ErrorContext(ctx, "store call failed", "operation", op, "error", err)
		telemetry.CaptureError(ctx, err, storeTags(op, err))
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	)
	s.calls.Add(ctx, 1, attrs)
	s.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, attrs)
}

func storeTags(op string, err error) map[string]string {
	tags := map[string]string{"operation": op}
	var se *domain.StoreError
	if errors.As(err, &se) && se.Code != "" {
		tags["store_code"] = se.Code
	}
	return tags
}

package handlers

import (
	"context"
	"net/http"

	"github.com/metazeka/backend/services/listing/domain/models"
)

// ListingResponse wraps a single listing.
type ListingResponse struct {
	OK   bool            `json:"ok"   example:"true"`
	Data *models.Listing `json:"data"`
} // @name ListingResponse

// ListingsResponse wraps a page of listings. Data is [] when nothing matches.
type ListingsResponse struct {
	OK   bool              `json:"ok"   example:"true"`
	Data []*models.Listing `json:"data"`
} // @name ListingsResponse

// OKResponse is returned by operations with no payload.
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
} // @name OKResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	OK    bool   `json:"ok"    example:"false"`
	Error string `json:"error" example:"user_id required"`
} // @name ErrorResponse

// storeContext keeps request values (trace, request id) but outlives a client
// disconnect, so an issued store call always runs to completion.
func storeContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

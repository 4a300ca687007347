// Package errhttp maps domain errors to HTTP status codes and envelope text.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/metazeka/backend/pkg/httpx"
	listingdomain "github.com/metazeka/backend/services/listing/domain"
)

// WriteError maps err to an HTTP status code and writes {"ok":false,"error":...}.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), message(err))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, listingdomain.ErrInvalidListing):
		return http.StatusBadRequest // 400
	case errors.Is(err, listingdomain.ErrListingNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}

// message prefers the client-facing text carried by domain errors over the
// wrapped chain, so store messages reach the client verbatim.
func message(err error) string {
	var ve *listingdomain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var se *listingdomain.StoreError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

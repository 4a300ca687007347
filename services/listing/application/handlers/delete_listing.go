package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/metazeka/backend/pkg/errhttp"
	"github.com/metazeka/backend/pkg/httpx"
	appsvcs "github.com/metazeka/backend/services/listing/application/services"
)

// DeleteListingHandler handles DELETE /listings/{id} requests.
type DeleteListingHandler struct {
	svc *appsvcs.Services
}

// NewDeleteListingHandler returns a DeleteListingHandler backed by the given services.
func NewDeleteListingHandler(svc *appsvcs.Services) *DeleteListingHandler {
	return &DeleteListingHandler{svc: svc}
}

// Execute deletes a listing. Deleting a missing id still succeeds.
//
//	@Summary	Delete listing
//	@Tags		listings
//	@Produce	json
//	@Param		id	path		string	true	"Listing id"
//	@Success	200	{object}	OKResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/listings/{id} [delete]
func (h *DeleteListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Listing.Delete(storeContext(r), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, OKResponse{OK: true})
}

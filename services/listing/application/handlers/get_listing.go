package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/metazeka/backend/pkg/errhttp"
	"github.com/metazeka/backend/pkg/httpx"
	appsvcs "github.com/metazeka/backend/services/listing/application/services"
)

// GetListingHandler handles GET /listings/{id} requests.
type GetListingHandler struct {
	svc *appsvcs.Services
}

// NewGetListingHandler returns a GetListingHandler backed by the given services.
func NewGetListingHandler(svc *appsvcs.Services) *GetListingHandler {
	return &GetListingHandler{svc: svc}
}

// Execute fetches one listing.
//
//	@Summary	Get listing
//	@Tags		listings
//	@Produce	json
//	@Param		id	path		string	true	"Listing id"
//	@Success	200	{object}	ListingResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/listings/{id} [get]
func (h *GetListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.Listing.Get(storeContext(r), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListingResponse{OK: true, Data: listing})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/metazeka/backend/pkg/errhttp"
	"github.com/metazeka/backend/pkg/httpx"
	pkgvalidator "github.com/metazeka/backend/pkg/validator"
	appsvcs "github.com/metazeka/backend/services/listing/application/services"
	"github.com/metazeka/backend/services/listing/domain/models"
)

// UpdateListingRequest is the request body for PUT /listings/{id}.
// Absent keys are left untouched; an explicit null clears the column.
type UpdateListingRequest struct {
	Title       models.Field[string] `json:"title"       swaggertype:"string" example:"Yeni başlık"`
	Description models.Field[string] `json:"description" swaggertype:"string" example:"Güncel açıklama"`
} // @name UpdateListingRequest

func (req *UpdateListingRequest) patch() models.Patch {
	return models.Patch{Title: req.Title, Description: req.Description}
}

// PutListingHandler handles PUT /listings/{id} requests.
type PutListingHandler struct {
	svc *appsvcs.Services
}

// NewPutListingHandler returns a PutListingHandler backed by the given services.
func NewPutListingHandler(svc *appsvcs.Services) *PutListingHandler {
	return &PutListingHandler{svc: svc}
}

// Execute partially updates a listing's title and description.
//
//	@Summary		Update listing
//	@Description	Overwrites only the keys present in the body; other keys are ignored
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Listing id"
//	@Param			request	body		UpdateListingRequest	true	"Fields to change"
//	@Success		200		{object}	ListingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/listings/{id} [put]
func (h *PutListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[UpdateListingRequest](w, r)
	if !ok {
		return
	}

	listing, err := h.svc.Listing.Update(storeContext(r), chi.URLParam(r, "id"), req.patch())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListingResponse{OK: true, Data: listing})
}

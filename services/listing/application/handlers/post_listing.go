package handlers

import (
	"net/http"

	"github.com/metazeka/backend/pkg/errhttp"
	"github.com/metazeka/backend/pkg/httpx"
	pkgvalidator "github.com/metazeka/backend/pkg/validator"
	appsvcs "github.com/metazeka/backend/services/listing/application/services"
	"github.com/metazeka/backend/services/listing/domain/models"
)

// CreateListingRequest is the request body for POST /listings.
type CreateListingRequest struct {
	UserID      string  `json:"user_id"     validate:"required" example:"user_123"`
	Title       string  `json:"title"       validate:"required" example:"2+1 daire, Kadıköy"`
	Description *string `json:"description"                     example:"Deniz manzaralı"`
} // @name CreateListingRequest

// PostListingHandler handles POST /listings requests.
type PostListingHandler struct {
	svc *appsvcs.Services
}

// NewPostListingHandler returns a PostListingHandler backed by the given services.
func NewPostListingHandler(svc *appsvcs.Services) *PostListingHandler {
	return &PostListingHandler{svc: svc}
}

// Execute creates a new listing.
//
//	@Summary		Create listing
//	@Description	Inserts one listing and returns the stored row
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateListingRequest	true	"Listing creation request"
//	@Success		201		{object}	ListingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/listings [post]
func (h *PostListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateListingRequest](w, r, models.MessageDraftRequired)
	if !ok {
		return
	}

	listing, err := h.svc.Listing.Create(storeContext(r), req.UserID, req.Title, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ListingResponse{OK: true, Data: listing})
}

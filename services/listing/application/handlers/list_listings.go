package handlers

import (
	"net/http"

	"github.com/metazeka/backend/pkg/errhttp"
	"github.com/metazeka/backend/pkg/httpx"
	appsvcs "github.com/metazeka/backend/services/listing/application/services"
	"github.com/metazeka/backend/services/listing/domain/models"
)

// ListListingsHandler handles GET /listings requests.
type ListListingsHandler struct {
	svc *appsvcs.Services
}

// NewListListingsHandler returns a ListListingsHandler backed by the given services.
func NewListListingsHandler(svc *appsvcs.Services) *ListListingsHandler {
	return &ListListingsHandler{svc: svc}
}

// Execute lists one user's listings, newest first.
//
//	@Summary		List listings
//	@Description	Returns a user's listings ordered by created_at descending
//	@Tags			listings
//	@Produce		json
//	@Param			user_id	query		string	true	"Owner id"
//	@Param			limit	query		int		false	"Maximum rows"	default(50)
//	@Success		200		{object}	ListingsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/listings [get]
func (h *ListListingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q, err := models.NewListQuery(query.Get("user_id"), query.Get("limit"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	listings, err := h.svc.Listing.List(storeContext(r), q)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListingsResponse{OK: true, Data: listings})
}

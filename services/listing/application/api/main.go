package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/metazeka/backend/services/listing/application/handlers"
	appsvcs "github.com/metazeka/backend/services/listing/application/services"
)

// ListingRoutes registers listing endpoints on the provided chi router.
func ListingRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/listings", func(r chi.Router) {
			r.Get("/", handlers.NewListListingsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostListingHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetListingHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutListingHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteListingHandler(svcs).Execute)
		})
	})
}

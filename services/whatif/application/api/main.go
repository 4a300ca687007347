package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/metazeka/backend/services/whatif/application/handlers"
	appsvcs "github.com/metazeka/backend/services/whatif/application/services"
)

// WhatifRoutes registers simulation endpoints on the provided chi router.
func WhatifRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/whatif", func(r chi.Router) {
		r.Post("/simulate", handlers.NewPostSimulateHandler(svcs).Execute)
	})
}

// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blackbird-voyages/ops-engine/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	opsHandler *handlers.OpsHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Role-filtered dashboard worklist.
		r.Get("/departures", opsHandler.ListDepartures)

		// Project lifecycle, keyed by package ID.
		r.Post("/projects", opsHandler.CreateProject)
		r.Get("/projects/{packageId}", opsHandler.GetProject)
		r.Patch("/projects/{packageId}", opsHandler.UpdateNotes)
		r.Delete("/projects/{packageId}", opsHandler.DeleteProject)

		// Departure group operations.
		r.Get("/projects/{packageId}/groups/{groupId}", opsHandler.GetGroupDetail)
		r.Patch("/projects/{packageId}/groups/{groupId}", opsHandler.UpdateGroup)
		r.Patch("/projects/{packageId}/groups/{groupId}/milestones/{key}", opsHandler.UpdateMilestone)
		r.Post("/projects/{packageId}/groups/{groupId}/validate", opsHandler.ValidateGroup)
	})

	return r
}

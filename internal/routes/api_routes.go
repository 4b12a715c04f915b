package routes

import (
	"os"
	"time"

	"asx-vms/rosterd/internal/api"
	"asx-vms/rosterd/internal/logging"
	"asx-vms/rosterd/internal/metrics"
	"asx-vms/rosterd/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, metricsReg *metrics.MetricsRegistry) {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	secret := []byte(os.Getenv("SESSION_SECRET"))

	if adminUsername == "" || adminPassword == "" || len(secret) == 0 {
		logging.Fatal("ADMIN_USERNAME, ADMIN_PASSWORD and SESSION_SECRET must be set")
	}

	r.Route("/api/v1", func(v1 chi.Router) {
		// Login is public but rate limited
		v1.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)
			public.Post("/auth/login", api.LoginHandler(adminUsername, adminPassword, secret, 24*time.Hour))
		})

		// Everything else requires an operator session
		v1.Group(func(protected chi.Router) {
			protected.Use(middleware.AuthMiddleware(secret))

			protected.Get("/roster", handlers.GetRoster())
			protected.Get("/roster/summary", handlers.GetRosterSummary())
			protected.Post("/roster", handlers.CreatePilot())
			protected.Get("/roster/{id}", handlers.GetPilot())
			protected.Put("/roster/{id}", handlers.EditPilot())
			protected.Post("/roster/{id}/suspend", handlers.SuspendPilot())
			protected.Post("/roster/{id}/reactivate", handlers.ReactivatePilot())
			protected.Delete("/roster/{id}", handlers.DeletePilot())
		})
	})
}

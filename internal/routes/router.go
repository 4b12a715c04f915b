package routes

import (
	"context"
	"net/http"
	"time"

	"asx-vms/rosterd/internal/api"
	"asx-vms/rosterd/internal/db"
	"asx-vms/rosterd/internal/logging"
	"asx-vms/rosterd/internal/metrics"
	"asx-vms/rosterd/internal/middleware"
	"asx-vms/rosterd/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(upSince time.Time) http.Handler {
	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Initialize handlers with dependencies
	handlers := api.NewHandlers(deps.Services.Roster, deps.Services.Summary)

	// Background notification delivery (only when the queue exists)
	if deps.Services.Queue != nil {
		workers.InitWorkers(context.Background(), deps.Services.Queue, metricsReg)
	}

	RegisterAPIRoutes(r, handlers, metricsReg)

	return r
}

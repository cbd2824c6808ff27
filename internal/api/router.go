package api

import (
	"net/http"
	"tour-itinerary-service/internal/api/handlers"
	"tour-itinerary-service/internal/ports"

	"go.uber.org/zap"
)

type RouterConfig struct {
	Repo     ports.CatalogRepository
	Observer ports.SearchObserver
	Defaults handlers.PlanDefaults
	// Metrics serves /metrics when set.
	Metrics http.Handler
	Logger  *zap.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	locHandler := &handlers.LocationHandler{Repo: cfg.Repo}
	planHandler := handlers.NewPlanHandler(cfg.Repo, cfg.Observer, cfg.Defaults)

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locHandler.List)
	mux.HandleFunc("/locations/", locHandler.Get)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/plans/compare", planHandler.Compare)
	if cfg.Metrics != nil {
		mux.Handle("/metrics", cfg.Metrics)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return requestIDMiddleware(loggingMiddleware(logger, mux))
}

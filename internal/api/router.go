package api

import (
	"net/http"
	"travel-planner-service/internal/api/handlers"
	"travel-planner-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(catalog ports.CatalogSource, store ports.PlanStore) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{Catalog: catalog, Store: store}
	destHandler := &handlers.DestinationHandler{Catalog: catalog}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /destinations", destHandler.List)

	mux.HandleFunc("POST /plans", planHandler.Create)
	mux.HandleFunc("GET /plans/{id}", planHandler.Get)
	mux.HandleFunc("POST /plans/{id}/transport", planHandler.ChangeTransport)
	mux.HandleFunc("POST /plans/{id}/swap", planHandler.Swap)
	mux.HandleFunc("POST /plans/{id}/remove", planHandler.Remove)
	mux.HandleFunc("POST /plans/{id}/duration", planHandler.AdjustDuration)

	return loggingMiddleware(mux)
}

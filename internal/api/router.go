package api

import (
	"elevator-dispatch-service/internal/api/handlers"
	"elevator-dispatch-service/internal/domain"
	"elevator-dispatch-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.RequestRepository, sink ports.SnapshotSink, bound domain.Point) http.Handler {
	mux := http.NewServeMux()

	reqHandler := &handlers.RequestHandler{Repo: repo}
	simHandler := &handlers.SimulationHandler{
		Repo:         repo,
		DefaultBound: bound,
		Sink:         sink,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/requests", reqHandler.List)
	mux.HandleFunc("/simulations", simHandler.Run)

	return loggingMiddleware(mux)
}

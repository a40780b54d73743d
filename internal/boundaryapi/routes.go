package boundaryapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/{type}", GetBoundaries)
	r.Get("/{type}/stats", GetBoundaryStats)

	return r
}

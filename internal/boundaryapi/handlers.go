package boundaryapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
	"github.com/PetaKedai/PK-Backend/internal/transform"
)

// GetBoundaries serves the normalized feature collection for one boundary
// type.
func GetBoundaries(w http.ResponseWriter, r *http.Request) {
	_, fc, ok := loadCollection(w, r)
	if !ok {
		return
	}
	writeJSON(w, fc)
}

// BoundaryStats summarizes census coverage for one boundary type.
type BoundaryStats struct {
	Type       string `json:"type"`
	Features   int    `json:"features"`
	Matched    int    `json:"matched"`
	Unmatched  int    `json:"unmatched"`
	Population int    `json:"population"`
}

// GetBoundaryStats reports how much of a boundary layer carries census data.
func GetBoundaryStats(w http.ResponseWriter, r *http.Request) {
	t, fc, ok := loadCollection(w, r)
	if !ok {
		return
	}

	stats := BoundaryStats{Type: t.String(), Features: len(fc.Features)}
	for _, f := range fc.Features {
		if has, _ := geojson.Bool(f.Properties["hasCensusData"]); has {
			stats.Matched++
		} else {
			stats.Unmatched++
		}
		if pop, ok := geojson.Int(f.Properties["population"]); ok && pop > 0 {
			stats.Population += pop
		}
	}

	writeJSON(w, stats)
}

// Health reports whether the active source is reachable.
func Health(w http.ResponseWriter, r *http.Request) {
	if Source == nil {
		writeJSONStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "unconfigured"})
		return
	}
	if err := Source.HealthCheck(r.Context()); err != nil {
		log.Printf("[boundaryapi] health check failed: %v", err)
		writeJSONStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "source": Source.Name()})
		return
	}
	writeJSON(w, map[string]string{"status": "ok", "source": Source.Name()})
}

// loadCollection does the shared fetch-and-normalize step. On failure it has
// already written the response and returns ok=false.
func loadCollection(w http.ResponseWriter, r *http.Request) (boundary.Type, *geojson.FeatureCollection, bool) {
	t, err := boundary.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, "Unknown boundary type", http.StatusBadRequest)
		return t, nil, false
	}

	if Source == nil {
		http.Error(w, "Boundary source not configured", http.StatusServiceUnavailable)
		return t, nil, false
	}

	fc, err := Source.FetchBoundaries(r.Context(), t)
	if err != nil {
		log.Printf("[boundaryapi] fetch %s failed: %v", t, err)
		http.Error(w, "Boundary source unavailable", http.StatusBadGateway)
		return t, nil, false
	}

	if err := transform.Collection(t, fc); err != nil {
		if errors.Is(err, transform.ErrUnsupportedGeometry) {
			log.Printf("[boundaryapi] %s rejected: %v", t, err)
			http.Error(w, "Boundary data contains unsupported geometry", http.StatusInternalServerError)
			return t, nil, false
		}
		log.Printf("[boundaryapi] normalize %s failed: %v", t, err)
		http.Error(w, "Boundary data invalid", http.StatusInternalServerError)
		return t, nil, false
	}

	return t, fc, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

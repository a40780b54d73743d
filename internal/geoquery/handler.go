package geoquery

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/db"
)

// LocateResponse is the payload for GET /locate.
type LocateResponse struct {
	Lat        float64       `json:"lat"`
	Lng        float64       `json:"lng"`
	Boundaries []BoundaryHit `json:"boundaries"`
}

// LocateHandler resolves the boundaries containing a coordinate.
//
// Query params:
//
//	lat   -> latitude, required
//	lng   -> longitude, required
//	types -> comma-separated boundary types (default: all)
func LocateHandler(w http.ResponseWriter, r *http.Request) {
	latStr := strings.TrimSpace(r.URL.Query().Get("lat"))
	lngStr := strings.TrimSpace(r.URL.Query().Get("lng"))
	if latStr == "" || lngStr == "" {
		http.Error(w, "Missing lat or lng", http.StatusBadRequest)
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		http.Error(w, "Invalid lat", http.StatusBadRequest)
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		http.Error(w, "Invalid lng", http.StatusBadRequest)
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		http.Error(w, "Coordinates out of range", http.StatusBadRequest)
		return
	}

	var types []string
	if typesStr := strings.TrimSpace(r.URL.Query().Get("types")); typesStr != "" {
		for _, part := range strings.Split(typesStr, ",") {
			t, err := boundary.ParseType(part)
			if err != nil {
				http.Error(w, "Invalid boundary type: "+part, http.StatusBadRequest)
				return
			}
			types = append(types, t.String())
		}
	}

	if db.DB == nil {
		http.Error(w, "Boundary database not configured", http.StatusServiceUnavailable)
		return
	}

	hits, err := FindBoundariesByPoint(r.Context(), lat, lng, types)
	if err != nil {
		log.Printf("[geoquery] point lookup failed: %v", err)
		http.Error(w, "Lookup failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, LocateResponse{Lat: lat, Lng: lng, Boundaries: hits})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

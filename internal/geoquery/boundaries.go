// Package geoquery answers "which boundaries contain this point" against the
// PostGIS mirror of the enriched artifacts loaded by cmd/loadgeo.
package geoquery

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/PetaKedai/PK-Backend/internal/db"
)

// BoundaryHit is one boundary containing the queried point, carrying the
// same enrichment block the GeoJSON artifacts expose.
type BoundaryHit struct {
	BoundaryType     string `json:"boundary_type"`
	JoinKey          string `json:"id"`
	Name             string `json:"name"`
	State            string `json:"state"`
	Population       int    `json:"population"`
	AvgIncome        int    `json:"avg_income"`
	Competitors      int    `json:"competitors"`
	PublicServices   int    `json:"public_services"`
	SuitabilityScore int    `json:"site_suitability_score"`
	NightLights      int    `json:"night_lights"`
	HasCensusData    bool   `json:"hasCensusData"`
}

// FindBoundariesByPoint performs a PostGIS point-in-polygon query to find
// all boundaries containing the given lat/lng coordinate, optionally
// restricted to the named boundary types.
func FindBoundariesByPoint(ctx context.Context, lat, lng float64, types []string) ([]BoundaryHit, error) {
	query := `
		SELECT boundary_type, join_key, name, state, population, avg_income,
		       competitors, public_services, site_suitability_score,
		       night_lights, has_census_data
		FROM petakedai.boundaries
		WHERE ST_Contains(
			geometry,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)
		)
	`
	args := []interface{}{lng, lat}

	if len(types) > 0 {
		query += ` AND boundary_type = ANY($3)`
		args = append(args, pq.Array(types))
	}
	query += ` ORDER BY boundary_type, join_key`

	rows, err := db.DB.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("boundary lookup query failed: %w", err)
	}
	defer rows.Close()

	hits := []BoundaryHit{}
	for rows.Next() {
		var h BoundaryHit
		if err := rows.Scan(
			&h.BoundaryType,
			&h.JoinKey,
			&h.Name,
			&h.State,
			&h.Population,
			&h.AvgIncome,
			&h.Competitors,
			&h.PublicServices,
			&h.SuitabilityScore,
			&h.NightLights,
			&h.HasCensusData,
		); err != nil {
			return nil, fmt.Errorf("scan boundary hit: %w", err)
		}
		hits = append(hits, h)
	}

	return hits, nil
}

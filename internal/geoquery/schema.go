package geoquery

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// schemaStatements create the PostGIS mirror. They are run one at a time; the
// pgx extended protocol rejects multi-statement strings.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS postgis`,
	`CREATE SCHEMA IF NOT EXISTS petakedai`,
	`CREATE TABLE IF NOT EXISTS petakedai.boundaries (
		id BIGSERIAL PRIMARY KEY,
		boundary_type TEXT NOT NULL,
		join_key TEXT NOT NULL,
		name TEXT NOT NULL,
		state TEXT NOT NULL DEFAULT '',
		population INTEGER NOT NULL DEFAULT 0,
		avg_income INTEGER NOT NULL DEFAULT 0,
		competitors INTEGER NOT NULL DEFAULT 0,
		public_services INTEGER NOT NULL DEFAULT 0,
		site_suitability_score INTEGER NOT NULL DEFAULT 0,
		night_lights INTEGER NOT NULL DEFAULT 0,
		has_census_data BOOLEAN NOT NULL DEFAULT FALSE,
		properties JSONB NOT NULL DEFAULT '{}',
		geometry geometry(MultiPolygon, 4326) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS boundaries_geometry_gix
		ON petakedai.boundaries USING GIST (geometry)`,
	`CREATE INDEX IF NOT EXISTS boundaries_type_key_idx
		ON petakedai.boundaries (boundary_type, join_key)`,
}

// EnsureSchema creates the petakedai schema, the boundaries table, and its
// indexes if they do not exist. Requires a role allowed to create the PostGIS
// extension on first run.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

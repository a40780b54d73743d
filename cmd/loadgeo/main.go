package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/config"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
	"github.com/PetaKedai/PK-Backend/internal/geoquery"
)

// CLI flags
var (
	boundaryType = flag.String("type", "all", "Boundary type to load: district, parliament, dun, or all")
	configPath   = flag.String("config", "", "Pipeline config YAML naming the artifacts to load")
	dsn          = flag.String("dsn", "", "Postgres DSN (default: env DATABASE_URL)")
	dryRun       = flag.Bool("dry-run", false, "Parse + validate artifacts only; no DB writes")
	confirm      = flag.Bool("confirm", false, "Required to perform destructive replace")
	advisoryKey  = flag.Int64("advisory-lock", 0, "Optional Postgres advisory lock key. 0 = disabled")
)

// boundaryRow is one artifact feature flattened for the PostGIS mirror. The
// full property map rides along as JSON so the mirror can reconstruct
// artifact features without the files.
type boundaryRow struct {
	JoinKey          string
	Name             string
	State            string
	Population       int
	AvgIncome        int
	Competitors      int
	PublicServices   int
	SuitabilityScore int
	NightLights      int
	HasCensusData    bool
	Properties       []byte
	GeometryEWKB     string
}

type load struct {
	t    boundary.Type
	rows []boundaryRow
}

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	types, err := selectTypes(*boundaryType)
	if err != nil {
		fatalf("%v", err)
	}

	pipeline, err := config.Load(*configPath)
	if err != nil {
		fatalf("config: %v", err)
	}

	// Parse every artifact up front so a bad file never truncates live data.
	loads := make([]load, 0, len(types))
	for _, t := range types {
		paths, err := pipeline.For(t)
		if err != nil {
			fatalf("%v", err)
		}
		fc, err := geojson.ReadFile(paths.Output)
		if err != nil {
			fatalf("artifact for %s: %v (run cmd/enrich first)", t, err)
		}
		rows, err := collectRows(t, fc)
		if err != nil {
			fatalf("artifact %s: %v", paths.Output, err)
		}
		fmt.Printf("Parsed %d %s boundaries from %s\n", len(rows), t, paths.Output)
		loads = append(loads, load{t: t, rows: rows})
	}

	if *dryRun {
		fmt.Println("Dry run complete. No changes made.")
		return
	}
	if !*confirm {
		fatalf("Refusing to run without --confirm. Add --dry-run to preview.")
	}
	if *dsn == "" {
		*dsn = os.Getenv("DATABASE_URL")
	}
	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fatalf("ping: %v", err)
	}

	if err := geoquery.EnsureSchema(ctx, db); err != nil {
		fatalf("schema: %v", err)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		fatalf("begin tx: %v", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op if already committed
	}()

	// Optional advisory lock to avoid concurrent runs
	if *advisoryKey != 0 {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, *advisoryKey); err != nil {
			fatalf("advisory lock: %v", err)
		}
	}

	total := 0
	for _, l := range loads {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM petakedai.boundaries WHERE boundary_type = $1`, l.t.String()); err != nil {
			fatalf("clear %s: %v", l.t, err)
		}
		n, err := insertRows(ctx, tx, l.t, l.rows)
		if err != nil {
			fatalf("insert %s: %v", l.t, err)
		}
		fmt.Printf("Loaded %d %s boundaries\n", n, l.t)
		total += n
	}

	if err := tx.Commit(); err != nil {
		fatalf("commit: %v", err)
	}
	fmt.Printf("Load complete ✅ (%d boundaries)\n", total)
}

func selectTypes(s string) ([]boundary.Type, error) {
	if strings.ToLower(strings.TrimSpace(s)) == "all" {
		return boundary.All(), nil
	}
	t, err := boundary.ParseType(s)
	if err != nil {
		return nil, err
	}
	return []boundary.Type{t}, nil
}

// collectRows flattens artifact features, rejecting the whole artifact when
// any geometry cannot be encoded.
func collectRows(t boundary.Type, fc *geojson.FeatureCollection) ([]boundaryRow, error) {
	rows := make([]boundaryRow, 0, len(fc.Features))
	for i, f := range fc.Features {
		ewkb, err := encodeGeometry(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}

		props := f.Properties
		propsJSON, err := json.Marshal(props)
		if err != nil {
			return nil, fmt.Errorf("feature %d: marshal properties: %w", i, err)
		}
		has, _ := geojson.Bool(props["hasCensusData"])
		rows = append(rows, boundaryRow{
			JoinKey:          geojson.String(props["id"]),
			Name:             geojson.String(props["name"]),
			State:            geojson.String(props["state"]),
			Population:       intProp(props, "population"),
			AvgIncome:        intProp(props, "avg_income"),
			Competitors:      intProp(props, "competitors"),
			PublicServices:   intProp(props, "public_services"),
			SuitabilityScore: intProp(props, "site_suitability_score"),
			NightLights:      intProp(props, "night_lights"),
			HasCensusData:    has,
			Properties:       propsJSON,
			GeometryEWKB:     ewkb,
		})
	}
	return rows, nil
}

func intProp(props map[string]interface{}, key string) int {
	v, _ := geojson.Int(props[key])
	return v
}

// encodeGeometry converts raw GeoJSON geometry into EWKB hex, promoting
// Polygon to MultiPolygon to match the column type.
func encodeGeometry(raw []byte) (string, error) {
	var g geom.T
	if err := geomjson.Unmarshal(raw, &g); err != nil {
		return "", fmt.Errorf("decode geometry: %w", err)
	}

	var mp *geom.MultiPolygon
	switch gg := g.(type) {
	case *geom.MultiPolygon:
		mp = gg
	case *geom.Polygon:
		mp = geom.NewMultiPolygon(gg.Layout())
		if err := mp.Push(gg); err != nil {
			return "", fmt.Errorf("promote polygon: %w", err)
		}
	default:
		return "", fmt.Errorf("unsupported geometry %T", g)
	}

	mp.SetSRID(4326)
	return ewkbhex.Encode(mp, ewkbhex.NDR)
}

func insertRows(ctx context.Context, tx *sql.Tx, t boundary.Type, rows []boundaryRow) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO petakedai.boundaries
			(boundary_type, join_key, name, state, population, avg_income,
			 competitors, public_services, site_suitability_score, night_lights,
			 has_census_data, properties, geometry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12::jsonb, $13::geometry)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx,
			t.String(), r.JoinKey, r.Name, r.State, r.Population, r.AvgIncome,
			r.Competitors, r.PublicServices, r.SuitabilityScore, r.NightLights,
			r.HasCensusData, r.Properties, r.GeometryEWKB,
		); err != nil {
			return 0, fmt.Errorf("insert %s/%s: %w", t, r.JoinKey, err)
		}
	}
	return len(rows), nil
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

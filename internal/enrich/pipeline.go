package enrich

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/census"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
	"github.com/PetaKedai/PK-Backend/internal/income"
)

// RunConfig names the inputs and output for one boundary type build.
type RunConfig struct {
	Type         boundary.Type
	GeometryPath string
	CensusPath   string
	IncomePath   string // district only, ignored for other types
	OutputPath   string
}

// Result summarizes one completed build.
type Result struct {
	RunID     string
	Type      boundary.Type
	Features  int
	Matched   int
	Unmatched int
	Rows      int
	Records   int
}

// Run builds one enriched boundary artifact. Geometry problems abort the
// run; a missing or rejected tabular input downgrades to a pass-through
// build where every feature receives the zero block.
func Run(cfg RunConfig) (Result, error) {
	res := Result{RunID: uuid.NewString(), Type: cfg.Type}

	fc, err := geojson.ReadFile(cfg.GeometryPath)
	if err != nil {
		return res, fmt.Errorf("load geometry: %w", err)
	}
	res.Features = len(fc.Features)

	records := loadRecords(cfg, &res)
	incomes := loadIncomes(cfg)

	for _, f := range fc.Features {
		e := enrichFeature(cfg.Type, f, records, incomes)
		if e.HasCensusData {
			res.Matched++
		} else {
			res.Unmatched++
		}
		f.Properties = e.Apply(f.Properties)
	}

	if err := fc.WriteFile(cfg.OutputPath); err != nil {
		return res, err
	}

	log.Printf("[enrich:%s] wrote %s: features=%d matched=%d unmatched=%d run=%s",
		cfg.Type, cfg.OutputPath, res.Features, res.Matched, res.Unmatched, res.RunID)
	return res, nil
}

func loadRecords(cfg RunConfig, res *Result) map[string]census.Record {
	rows, err := census.ReadTable(cfg.CensusPath)
	if err != nil {
		log.Printf("[enrich:%s] census table unreadable, building without records: %v", cfg.Type, err)
		return nil
	}
	res.Rows = len(rows)

	records, err := census.SchemaFor(cfg.Type).Records(rows)
	if err != nil {
		log.Printf("[enrich:%s] census table rejected, building without records: %v", cfg.Type, err)
		return nil
	}
	res.Records = len(records)
	return records
}

func loadIncomes(cfg RunConfig) income.Table {
	if cfg.Type != boundary.District || cfg.IncomePath == "" {
		return nil
	}
	rows, err := census.ReadTable(cfg.IncomePath)
	if err != nil {
		log.Printf("[enrich:%s] income table unreadable, building without incomes: %v", cfg.Type, err)
		return nil
	}
	return income.Build(rows)
}

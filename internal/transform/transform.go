// Package transform normalizes boundary features read at runtime from a file
// or remote source, mirroring the join and property shape produced by the
// offline enrichment pipeline.
package transform

import (
	"errors"
	"fmt"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/enrich"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
)

// ErrUnsupportedGeometry is returned for features whose geometry is not a
// Polygon or MultiPolygon.
var ErrUnsupportedGeometry = errors.New("unsupported geometry type")

// Collection normalizes every feature in place. The first failure aborts the
// load; callers must discard the collection on error.
func Collection(t boundary.Type, fc *geojson.FeatureCollection) error {
	for i, f := range fc.Features {
		if err := Feature(t, f); err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
	}
	return nil
}

// Feature normalizes one feature's properties in place. The enrichment keys
// are coerced to canonical types and zero-filled when absent, and
// hasCensusData is inferred from population or income when the source never
// set it.
func Feature(t boundary.Type, f *geojson.Feature) error {
	geomType := f.GeometryType()
	if geomType != "Polygon" && geomType != "MultiPolygon" {
		return fmt.Errorf("%w: %q", ErrUnsupportedGeometry, geomType)
	}

	props := f.Properties
	e := enrich.Enriched{
		ID:               boundary.JoinKey(t, props),
		Name:             boundary.DisplayName(t, props),
		Population:       intProp(props, "population"),
		AvgIncome:        intProp(props, "avg_income"),
		Competitors:      intProp(props, "competitors"),
		PublicServices:   intProp(props, "public_services"),
		SuitabilityScore: intProp(props, "site_suitability_score"),
		NightLights:      intProp(props, "night_lights"),
	}

	if has, ok := geojson.Bool(props["hasCensusData"]); ok {
		e.HasCensusData = has
	} else {
		e.HasCensusData = e.Population > 0 || e.AvgIncome > 0
	}

	f.Properties = e.Apply(props)
	return nil
}

func intProp(props map[string]interface{}, key string) int {
	v, ok := geojson.Int(props[key])
	if !ok || v < 0 {
		return 0
	}
	return v
}

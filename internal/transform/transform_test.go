package transform_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
	"github.com/PetaKedai/PK-Backend/internal/transform"
)

func polygonFeature(t *testing.T, props map[string]interface{}) *geojson.Feature {
	t.Helper()
	return &geojson.Feature{
		Type:       "Feature",
		Properties: props,
		Geometry:   json.RawMessage(`{"type":"Polygon","coordinates":[[[101.0,3.0],[101.2,3.0],[101.2,3.2],[101.0,3.0]]]}`),
	}
}

// TestFeature_NormalizesProperties verifies type coercion and zero fill for
// the enrichment keys on a raw source feature.
func TestFeature_NormalizesProperties(t *testing.T) {
	f := polygonFeature(t, map[string]interface{}{
		"code_state":    float64(1),
		"code_district": float64(2),
		"district":      "Muar",
		"state":         "Johor",
		"population":    "258920",
		"avg_income":    6560.4,
		"competitors":   float64(51),
	})

	if err := transform.Feature(boundary.District, f); err != nil {
		t.Fatalf("Feature: %v", err)
	}

	props := f.Properties
	if got := props["id"]; got != "1-2" {
		t.Errorf("id = %#v, want 1-2", got)
	}
	if got := props["name"]; got != "Muar" {
		t.Errorf("name = %#v, want Muar", got)
	}
	if got := props["population"]; got != 258920 {
		t.Errorf("population = %#v, want int 258920", got)
	}
	if got := props["avg_income"]; got != 6560 {
		t.Errorf("avg_income = %#v, want rounded 6560", got)
	}
	if got := props["competitors"]; got != 51 {
		t.Errorf("competitors = %#v, want 51", got)
	}
	for _, key := range []string{"public_services", "site_suitability_score", "night_lights"} {
		if got := props[key]; got != 0 {
			t.Errorf("%s = %#v, want zero fill", key, got)
		}
	}
	if got := props["hasCensusData"]; got != true {
		t.Errorf("hasCensusData = %#v, want inferred true", got)
	}
	// Source columns survive normalization.
	if got := props["district"]; got != "Muar" {
		t.Errorf("district = %#v, want preserved", got)
	}
}

// TestFeature_ExplicitFlagRespected verifies that a source-provided
// hasCensusData wins over inference.
func TestFeature_ExplicitFlagRespected(t *testing.T) {
	f := polygonFeature(t, map[string]interface{}{
		"code_parlimen": "P.114",
		"parlimen":      "Kepong",
		"population":    float64(107871),
		"hasCensusData": false,
	})

	if err := transform.Feature(boundary.Parliament, f); err != nil {
		t.Fatalf("Feature: %v", err)
	}
	if got := f.Properties["hasCensusData"]; got != false {
		t.Errorf("hasCensusData = %#v, want explicit false kept", got)
	}
}

// TestFeature_InfersAbsentFlag verifies the two inference branches when the
// flag is missing from the source.
func TestFeature_InfersAbsentFlag(t *testing.T) {
	withIncome := polygonFeature(t, map[string]interface{}{
		"code_parlimen": "P.106",
		"avg_income":    float64(10414),
	})
	if err := transform.Feature(boundary.Parliament, withIncome); err != nil {
		t.Fatalf("Feature: %v", err)
	}
	if got := withIncome.Properties["hasCensusData"]; got != true {
		t.Errorf("income-only feature: hasCensusData = %#v, want true", got)
	}

	bare := polygonFeature(t, map[string]interface{}{
		"code_parlimen": "P.106",
	})
	if err := transform.Feature(boundary.Parliament, bare); err != nil {
		t.Fatalf("Feature: %v", err)
	}
	if got := bare.Properties["hasCensusData"]; got != false {
		t.Errorf("bare feature: hasCensusData = %#v, want false", got)
	}
}

// TestFeature_NegativeAndJunkValuesZeroed verifies that negative or
// non-numeric metrics normalize to zero.
func TestFeature_NegativeAndJunkValuesZeroed(t *testing.T) {
	f := polygonFeature(t, map[string]interface{}{
		"code_state":   float64(10),
		"code_dun":     "N.37",
		"population":   float64(-40),
		"night_lights": "bright",
	})

	if err := transform.Feature(boundary.Dun, f); err != nil {
		t.Fatalf("Feature: %v", err)
	}
	if got := f.Properties["population"]; got != 0 {
		t.Errorf("population = %#v, want 0", got)
	}
	if got := f.Properties["night_lights"]; got != 0 {
		t.Errorf("night_lights = %#v, want 0", got)
	}
	if got := f.Properties["id"]; got != "10-N.37" {
		t.Errorf("id = %#v, want 10-N.37", got)
	}
}

// TestFeature_RejectsUnsupportedGeometry verifies the sentinel error for
// point features.
func TestFeature_RejectsUnsupportedGeometry(t *testing.T) {
	f := &geojson.Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{"code": "1-2"},
		Geometry:   json.RawMessage(`{"type":"Point","coordinates":[101.0,3.0]}`),
	}

	err := transform.Feature(boundary.District, f)
	if !errors.Is(err, transform.ErrUnsupportedGeometry) {
		t.Fatalf("err = %v, want ErrUnsupportedGeometry", err)
	}
}

// TestCollection_AbortsOnFirstError verifies that one bad feature fails the
// whole load and earlier features are not half-applied to the caller's view.
func TestCollection_AbortsOnFirstError(t *testing.T) {
	fc := &geojson.FeatureCollection{
		Type: "FeatureCollection",
		Features: []*geojson.Feature{
			polygonFeature(t, map[string]interface{}{"code": "1-1"}),
			{
				Type:       "Feature",
				Properties: map[string]interface{}{"code": "1-2"},
				Geometry:   json.RawMessage(`{"type":"LineString","coordinates":[[101.0,3.0],[101.2,3.0]]}`),
			},
			polygonFeature(t, map[string]interface{}{"code": "1-3"}),
		},
	}

	err := transform.Collection(boundary.District, fc)
	if !errors.Is(err, transform.ErrUnsupportedGeometry) {
		t.Fatalf("err = %v, want ErrUnsupportedGeometry", err)
	}
	// The last feature was never reached.
	if _, ok := fc.Features[2].Properties["hasCensusData"]; ok {
		t.Error("feature after the failure was normalized, want untouched")
	}
}

// TestCollection_EmptyOK verifies that an empty collection is a valid load.
func TestCollection_EmptyOK(t *testing.T) {
	fc := &geojson.FeatureCollection{Type: "FeatureCollection"}
	if err := transform.Collection(boundary.District, fc); err != nil {
		t.Fatalf("Collection: %v", err)
	}
}

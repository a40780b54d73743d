package source

import (
	"context"
	"encoding/json"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
)

func init() {
	Register(KindMock, func(cfg Config) (Provider, error) {
		return &MockSource{}, nil
	})
}

// MockSource serves a small fixed set of Klang Valley boundaries. It backs
// local development and handler tests without census tables on disk.
type MockSource struct{}

func (s *MockSource) Name() string { return "mock" }

func (s *MockSource) HealthCheck(ctx context.Context) error { return nil }

// FetchBoundaries returns two features per type: one carrying census-style
// properties and one bare, so downstream normalization paths both get
// exercised.
func (s *MockSource) FetchBoundaries(ctx context.Context, t boundary.Type) (*geojson.FeatureCollection, error) {
	fc := &geojson.FeatureCollection{Type: "FeatureCollection", Name: t.String()}

	switch t {
	case boundary.District:
		fc.Features = []*geojson.Feature{
			mockFeature(map[string]interface{}{
				"code_state": "14", "code_district": "1",
				"state": "W.P. Kuala Lumpur", "district": "Kuala Lumpur",
				"population": 1982112, "avg_income": 13325,
			}),
			mockFeature(map[string]interface{}{
				"code_state": "10", "code_district": "2",
				"state": "Selangor", "district": "Klang",
			}),
		}
	case boundary.Parliament:
		fc.Features = []*geojson.Feature{
			mockFeature(map[string]interface{}{
				"code_parlimen": "P.114", "state": "W.P. Kuala Lumpur", "parlimen": "Kepong",
				"population": 107871, "avg_income": 10414,
			}),
			mockFeature(map[string]interface{}{
				"code_parlimen": "P.106", "state": "Selangor", "parlimen": "Damansara",
			}),
		}
	case boundary.Dun:
		fc.Features = []*geojson.Feature{
			mockFeature(map[string]interface{}{
				"code_state": "10", "code_dun": "N.37",
				"state": "Selangor", "dun": "Bukit Lanjan",
				"population": 94310, "avg_income": 11873,
			}),
			mockFeature(map[string]interface{}{
				"code_state": "10", "code_dun": "N.45",
				"state": "Selangor", "dun": "Bandar Utama",
			}),
		}
	}

	return fc, nil
}

// mockPolygon is a rough box over the Klang Valley.
var mockPolygon = json.RawMessage(`{"type":"Polygon","coordinates":[[[101.58,3.05],[101.78,3.05],[101.78,3.25],[101.58,3.25],[101.58,3.05]]]}`)

func mockFeature(props map[string]interface{}) *geojson.Feature {
	return &geojson.Feature{
		Type:       "Feature",
		Properties: props,
		Geometry:   mockPolygon,
	}
}

package geojson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FeatureCollection is a GeoJSON document. Geometries are kept as raw JSON so
// that reading and writing a collection never re-encodes coordinate arrays.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Name     string     `json:"name,omitempty"`
	Features []*Feature `json:"features"`
}

// Feature is a single GeoJSON feature.
type Feature struct {
	Type       string                 `json:"type"`
	ID         interface{}            `json:"id,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

// geometryHeader is the minimal envelope needed to inspect a geometry.
type geometryHeader struct {
	Type string `json:"type"`
}

// GeometryType returns the "type" member of the feature's geometry, or ""
// when the geometry is null or malformed.
func (f *Feature) GeometryType() string {
	if len(f.Geometry) == 0 {
		return ""
	}
	var header geometryHeader
	if err := json.Unmarshal(f.Geometry, &header); err != nil {
		return ""
	}
	return header.Type
}

// ReadFile parses the GeoJSON document at path.
func ReadFile(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &fc, nil
}

// WriteFile serializes the collection to path, creating the destination
// directory when needed and replacing any existing file.
func (fc *FeatureCollection) WriteFile(path string) error {
	if fc.Features == nil {
		fc.Features = []*Feature{}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

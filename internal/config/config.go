// Package config loads the enrichment pipeline's path layout.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
)

// DefaultPath is the conventional pipeline config location.
const DefaultPath = "petakedai.yml"

// Paths names the input and output files for one boundary type.
type Paths struct {
	Geometry string `yaml:"geometry"`
	Census   string `yaml:"census"`
	Income   string `yaml:"income,omitempty"`
	Output   string `yaml:"output"`
}

// Pipeline is the full path layout, keyed by boundary type.
type Pipeline struct {
	Boundaries map[string]Paths `yaml:"boundaries"`
}

// Default returns the conventional repo layout: raw DOSM extracts under
// data/, enriched artifacts under build/.
func Default() Pipeline {
	return Pipeline{
		Boundaries: map[string]Paths{
			boundary.District.String(): {
				Geometry: "data/administrative_district.geojson",
				Census:   "data/census_district.csv",
				Income:   "data/income_district.csv",
				Output:   "build/district.geojson",
			},
			boundary.Parliament.String(): {
				Geometry: "data/electoral_parlimen.geojson",
				Census:   "data/census_parlimen.csv",
				Output:   "build/parliament.geojson",
			},
			boundary.Dun.String(): {
				Geometry: "data/electoral_dun.geojson",
				Census:   "data/census_dun.csv",
				Output:   "build/dun.geojson",
			},
		},
	}
}

// Load reads the pipeline layout from path. An empty path means "use
// DefaultPath when it exists, otherwise the built-in defaults"; a named path
// must exist. Entries and fields missing from the file keep their defaults.
func Load(path string) (Pipeline, error) {
	optional := path == ""
	if optional {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Pipeline{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pipeline{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return merge(Default(), p), nil
}

// merge overlays the loaded layout onto the defaults, per type and field.
func merge(base, overlay Pipeline) Pipeline {
	for name, paths := range overlay.Boundaries {
		merged, ok := base.Boundaries[name]
		if !ok {
			base.Boundaries[name] = paths
			continue
		}
		if paths.Geometry != "" {
			merged.Geometry = paths.Geometry
		}
		if paths.Census != "" {
			merged.Census = paths.Census
		}
		if paths.Income != "" {
			merged.Income = paths.Income
		}
		if paths.Output != "" {
			merged.Output = paths.Output
		}
		base.Boundaries[name] = merged
	}
	return base
}

// For returns the path set for a boundary type.
func (p Pipeline) For(t boundary.Type) (Paths, error) {
	paths, ok := p.Boundaries[t.String()]
	if !ok {
		return Paths{}, fmt.Errorf("no pipeline paths configured for %s", t)
	}
	return paths, nil
}

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
)

func init() {
	Register(KindFile, func(cfg Config) (Provider, error) {
		return &FileSource{dir: cfg.DataDir}, nil
	})
}

// FileSource serves enriched artifacts straight from the build directory.
type FileSource struct {
	dir string
}

// NewFileSource creates a source reading artifacts from dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Name() string { return "file" }

// FetchBoundaries reads <dir>/<type>.geojson.
func (s *FileSource) FetchBoundaries(ctx context.Context, t boundary.Type) (*geojson.FeatureCollection, error) {
	path := filepath.Join(s.dir, t.String()+".geojson")
	LogRequest(s.Name(), "READ", path)

	fc, err := geojson.ReadFile(path)
	if err != nil {
		LogError(s.Name(), "fetch", err)
		return nil, err
	}
	return fc, nil
}

// HealthCheck verifies the artifact directory exists.
func (s *FileSource) HealthCheck(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("artifact dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("artifact dir %s is not a directory", s.dir)
	}
	return nil
}

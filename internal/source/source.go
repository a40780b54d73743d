// Package source abstracts where boundary feature collections come from:
// enriched artifacts on disk, a remote boundary API, or an in-memory mock.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
)

// Common errors
var (
	ErrUnknownSource = errors.New("unknown boundary source")
	ErrMissingAPIURL = errors.New("BOUNDARY_API_URL environment variable is required for the remote source")
)

// Provider is the interface every boundary data source implements.
type Provider interface {
	// Name returns the source name for logging purposes.
	Name() string

	// FetchBoundaries loads the feature collection for one boundary type.
	FetchBoundaries(ctx context.Context, t boundary.Type) (*geojson.FeatureCollection, error)

	// HealthCheck verifies the source is reachable.
	HealthCheck(ctx context.Context) error
}

// registry holds registered source constructors, keyed by kind. Sources
// register from init() so adding one never touches this file.
var registry = make(map[Kind]func(Config) (Provider, error))

// Register registers a source constructor for a given kind.
func Register(kind Kind, constructor func(Config) (Provider, error)) {
	registry[kind] = constructor
}

// New creates a Provider based on the configuration. It returns an error if
// the configuration is invalid or the kind is unknown.
func New(cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	constructor, ok := registry[cfg.Source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.Source)
	}

	return constructor(cfg)
}

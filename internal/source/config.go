package source

import (
	"os"
	"strings"
)

// Kind identifies which boundary source to use.
type Kind string

const (
	KindFile   Kind = "file"
	KindRemote Kind = "remote"
	KindMock   Kind = "mock"
)

// DefaultDataDir is where the enrichment pipeline writes its artifacts.
const DefaultDataDir = "build"

// Config holds configuration for the boundary source.
type Config struct {
	// Source kind: "file", "remote", or "mock"
	Source Kind

	// File-specific config
	DataDir string

	// Remote-specific config
	APIURL string
	APIKey string
}

// LoadFromEnv loads source configuration from environment variables.
//
// Environment variables:
//   - BOUNDARY_SOURCE: "file", "remote", or "mock" (default: "file")
//   - BOUNDARY_DATA_DIR: directory holding enriched artifacts (default: "build")
//   - BOUNDARY_API_URL: base URL of the remote boundary API (required if remote)
//   - BOUNDARY_API_KEY: bearer token for the remote boundary API (optional)
func LoadFromEnv() Config {
	sourceStr := strings.ToLower(strings.TrimSpace(os.Getenv("BOUNDARY_SOURCE")))

	var kind Kind
	switch sourceStr {
	case "remote":
		kind = KindRemote
	case "mock":
		kind = KindMock
	default:
		kind = KindFile
	}

	dataDir := strings.TrimSpace(os.Getenv("BOUNDARY_DATA_DIR"))
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	return Config{
		Source:  kind,
		DataDir: dataDir,
		APIURL:  strings.TrimSpace(os.Getenv("BOUNDARY_API_URL")),
		APIKey:  os.Getenv("BOUNDARY_API_KEY"),
	}
}

// Validate checks that the configuration is valid for the selected source.
func (c Config) Validate() error {
	switch c.Source {
	case KindRemote:
		if c.APIURL == "" {
			return ErrMissingAPIURL
		}
	}
	return nil
}

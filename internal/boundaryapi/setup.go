// Package boundaryapi serves normalized boundary feature collections over
// HTTP, backed by whichever source the environment selects.
package boundaryapi

import (
	"log"

	"github.com/PetaKedai/PK-Backend/internal/source"
)

// Source is the active boundary data source.
// It is initialized in Init() based on environment configuration.
var Source source.Provider

func Init() {
	cfg := source.LoadFromEnv()
	var err error
	Source, err = source.New(cfg)
	if err != nil {
		log.Printf("[boundaryapi] WARNING: Failed to initialize %s source: %v", cfg.Source, err)
		log.Printf("[boundaryapi] Boundary endpoints will be disabled")
		Source = nil
		return
	}
	log.Printf("[boundaryapi] Initialized %s source", Source.Name())
}

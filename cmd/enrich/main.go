package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/config"
	"github.com/PetaKedai/PK-Backend/internal/enrich"
)

// CLI flags
var (
	boundaryType = flag.String("type", "all", "Boundary type to build: district, parliament, dun, or all")
	configPath   = flag.String("config", "", "Pipeline config YAML (default: petakedai.yml when present)")
	dryRun       = flag.Bool("dry-run", false, "Print the build plan only; no files written")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	types, err := selectTypes(*boundaryType)
	if err != nil {
		fatalf("%v", err)
	}

	pipeline, err := config.Load(*configPath)
	if err != nil {
		fatalf("config: %v", err)
	}

	if *dryRun {
		printPlan(pipeline, types)
		fmt.Println("Dry run complete. No files written.")
		return
	}

	failed := 0
	for _, t := range types {
		paths, err := pipeline.For(t)
		if err != nil {
			fmt.Fprintf(os.Stderr, "SKIP %s: %v\n", t, err)
			failed++
			continue
		}

		res, err := enrich.Run(enrich.RunConfig{
			Type:         t,
			GeometryPath: paths.Geometry,
			CensusPath:   paths.Census,
			IncomePath:   paths.Income,
			OutputPath:   paths.Output,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", t, err)
			failed++
			continue
		}

		fmt.Printf("OK   %s: %d features (%d matched, %d unmatched) -> %s\n",
			t, res.Features, res.Matched, res.Unmatched, paths.Output)
	}

	if failed > 0 {
		fatalf("%d of %d builds failed", failed, len(types))
	}
	fmt.Println("Enrichment complete ✅")
}

// selectTypes expands the -type flag into the boundary types to build.
func selectTypes(s string) ([]boundary.Type, error) {
	if strings.ToLower(strings.TrimSpace(s)) == "all" {
		return boundary.All(), nil
	}
	t, err := boundary.ParseType(s)
	if err != nil {
		return nil, err
	}
	return []boundary.Type{t}, nil
}

func printPlan(pipeline config.Pipeline, types []boundary.Type) {
	for _, t := range types {
		paths, err := pipeline.For(t)
		if err != nil {
			fmt.Printf("%-10s (no paths configured)\n", t)
			continue
		}
		fmt.Printf("%-10s geometry=%s census=%s", t, paths.Geometry, paths.Census)
		if t == boundary.District && paths.Income != "" {
			fmt.Printf(" income=%s", paths.Income)
		}
		fmt.Printf(" -> %s\n", paths.Output)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

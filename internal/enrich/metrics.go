// Package enrich joins census records onto boundary geometry and writes the
// enriched GeoJSON artifacts the map serves.
package enrich

import "math"

// DefaultAreaKm2 floors the density divisor when the source area is missing,
// unparsable, or non-positive.
const DefaultAreaKm2 = 1.0

// Density returns persons per km². A non-positive area falls back to
// DefaultAreaKm2 so the division is always defined.
func Density(population int, areaKm2 float64) float64 {
	if areaKm2 <= 0 {
		areaKm2 = DefaultAreaKm2
	}
	return float64(population) / areaKm2
}

// NightLights derives a 0-100 luminosity proxy from population density.
func NightLights(density float64) int {
	return clamp(int(math.Round(density/500*50)), 0, 100)
}

// SuitabilityScore derives a 0-100 site suitability proxy from population
// density.
func SuitabilityScore(density float64) int {
	return clamp(int(math.Round(density/1000*50)), 0, 100)
}

// Competitors estimates competing shop count from population.
func Competitors(population int) int {
	if population < 0 {
		return 0
	}
	return population / 5000
}

// PublicServices estimates public service coverage from population.
func PublicServices(population int) int {
	if population < 0 {
		return 0
	}
	return population / 10000
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

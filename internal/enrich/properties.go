package enrich

import (
	"math"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/census"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
	"github.com/PetaKedai/PK-Backend/internal/income"
)

// Enriched is the property block stamped onto every output feature.
type Enriched struct {
	ID               string
	Name             string
	Population       int
	AvgIncome        int
	Competitors      int
	PublicServices   int
	SuitabilityScore int
	NightLights      int
	HasCensusData    bool
}

// Apply overlays the block onto a feature's existing properties. Original
// source properties survive; the enrichment keys are authoritative.
func (e Enriched) Apply(props map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(props)+9)
	for k, v := range props {
		out[k] = v
	}
	out["id"] = e.ID
	out["name"] = e.Name
	out["population"] = e.Population
	out["avg_income"] = e.AvgIncome
	out["competitors"] = e.Competitors
	out["public_services"] = e.PublicServices
	out["site_suitability_score"] = e.SuitabilityScore
	out["night_lights"] = e.NightLights
	out["hasCensusData"] = e.HasCensusData
	return out
}

// enrichFeature resolves a feature's join key and builds its property block.
// Features with no matching record keep the zero block so map layers render
// uniformly.
func enrichFeature(t boundary.Type, f *geojson.Feature, records map[string]census.Record, incomes income.Table) Enriched {
	props := f.Properties
	e := Enriched{
		ID:   boundary.JoinKey(t, props),
		Name: boundary.DisplayName(t, props),
	}

	var rec census.Record
	matched := false
	if e.ID != "" {
		rec, matched = records[e.ID]
	}
	if !matched {
		return e
	}

	e.HasCensusData = true
	e.Population = rec.Population
	if e.Population < 0 {
		e.Population = 0
	}
	e.AvgIncome = avgIncome(t, props, rec, incomes)

	density := Density(e.Population, rec.AreaKm2)
	e.Competitors = sourceMetric(props, "competitors", Competitors(e.Population))
	e.PublicServices = sourceMetric(props, "public_services", PublicServices(e.Population))
	e.SuitabilityScore = sourceMetric(props, "site_suitability_score", SuitabilityScore(density))
	e.NightLights = sourceMetric(props, "night_lights", NightLights(density))

	return e
}

// avgIncome resolves mean household income. Districts join against the
// income table by area name; parliament and DUN extracts carry the figure
// inline.
func avgIncome(t boundary.Type, props map[string]interface{}, rec census.Record, incomes income.Table) int {
	var mean float64
	if t == boundary.District {
		district := geojson.String(props["district"])
		state := geojson.String(props["state"])
		v, ok := incomes.Lookup(district, state)
		if !ok {
			return 0
		}
		mean = v
	} else {
		mean = rec.IncomeMean
	}

	v := int(math.Round(mean))
	if v < 0 {
		return 0
	}
	return v
}

// sourceMetric keeps a usable pre-existing metric from the source feature,
// falling back to the computed value when the property is absent or not
// numeric.
func sourceMetric(props map[string]interface{}, key string, computed int) int {
	raw, ok := props[key]
	if !ok {
		return computed
	}
	v, ok := geojson.Int(raw)
	if !ok {
		return computed
	}
	if v < 0 {
		return 0
	}
	return v
}

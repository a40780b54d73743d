// Package income builds the household income lookup joined onto district
// boundaries. The DOSM income table mixes district-level and state-level
// rows; district figures always beat the state figure for the same area.
package income

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/PetaKedai/PK-Backend/internal/census"
)

// Table maps a folded area name to a mean household income.
type Table map[string]float64

// Column names in the household income extract.
const (
	levelColumn  = "type"
	areaColumn   = "area"
	incomeColumn = "income_mean"
)

// Row levels in the household income extract.
const (
	levelDistrict = "district"
	levelState    = "state"
)

// Build assembles the lookup from income rows. District rows are written
// first; state rows only fill areas with no district-level figure. Within a
// tier the first row for an area wins.
func Build(rows []census.Row) Table {
	table := make(Table)
	addTier(table, rows, levelDistrict)
	addTier(table, rows, levelState)
	return table
}

func addTier(table Table, rows []census.Row, level string) {
	for _, row := range rows {
		if !strings.EqualFold(strings.TrimSpace(row[levelColumn]), level) {
			continue
		}
		name := Fold(row[areaColumn])
		if name == "" {
			continue
		}
		if _, ok := table[name]; ok {
			continue
		}
		table[name] = census.ParseDecimal(row[incomeColumn])
	}
}

// Lookup resolves a district's mean income: the district's own name first,
// then its state as the fallback tier.
func (t Table) Lookup(districtName, stateName string) (float64, bool) {
	if v, ok := t[Fold(districtName)]; ok {
		return v, true
	}
	if v, ok := t[Fold(stateName)]; ok {
		return v, true
	}
	return 0, false
}

// stripMarks removes combining marks after NFD decomposition, so accented
// gazetteer spellings ("Pulau Pinang" vs "Pulau Pínang") fold together.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes an area name for matching: trim, strip diacritics,
// lowercase, and collapse interior whitespace.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

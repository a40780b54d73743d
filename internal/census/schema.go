package census

import (
	"fmt"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
)

// Schema describes the tabular contract for one boundary type: which column
// carries the join key and which columns must be present in the header.
type Schema struct {
	KeyColumn string
	Required  []string
}

// SchemaFor returns the census table contract for a boundary type.
//
// The district extract keys on "code" (state-district composite, e.g. "1-2"),
// parliament on "code_parlimen" (e.g. "P.138"), and DUN on "code" (state-seat
// composite, e.g. "1-N.01"). Parliament and DUN extracts carry their own
// income_mean column; district income arrives via the separate household
// income table.
func SchemaFor(t boundary.Type) Schema {
	switch t {
	case boundary.Parliament:
		return Schema{
			KeyColumn: "code_parlimen",
			Required:  []string{"code_parlimen", "year"},
		}
	case boundary.Dun:
		return Schema{
			KeyColumn: "code",
			Required:  []string{"code", "year"},
		}
	default:
		return Schema{
			KeyColumn: "code",
			Required:  []string{"code", "year", "population", "area_km2"},
		}
	}
}

// Validate checks that every required column is present. Rows all share the
// source header, so the first row stands in for it. An empty table is valid.
func (s Schema) Validate(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	for _, col := range s.Required {
		if _, ok := rows[0][col]; !ok {
			return fmt.Errorf("census table missing required column %q", col)
		}
	}
	return nil
}

// Record is a validated, typed census row.
type Record struct {
	Key        string
	Year       int
	Population int
	AreaKm2    float64
	IncomeMean float64
	Cells      Row
}

// Records validates the table, collapses it to the latest survey year per
// key, and types the surviving rows. Rows with an empty key are unreachable
// by any feature and are dropped.
func (s Schema) Records(rows []Row) (map[string]Record, error) {
	if err := s.Validate(rows); err != nil {
		return nil, err
	}

	latest := LatestByKey(rows, s.KeyColumn)
	records := make(map[string]Record, len(latest))
	for key, row := range latest {
		if key == "" {
			continue
		}
		records[key] = Record{
			Key:        key,
			Year:       row.Year(),
			Population: ParseCount(row["population"]),
			AreaKm2:    ParseDecimal(row["area_km2"]),
			IncomeMean: ParseDecimal(row["income_mean"]),
			Cells:      row,
		}
	}
	return records, nil
}

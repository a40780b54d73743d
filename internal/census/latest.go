package census

import (
	"strconv"
	"strings"
)

// YearColumn is the survey year column shared by every census table.
const YearColumn = "year"

// Year returns the row's parsed survey year, or 0 when missing or unparsable.
func (r Row) Year() int {
	year, err := strconv.Atoi(strings.TrimSpace(r[YearColumn]))
	if err != nil {
		return 0
	}
	return year
}

// LatestByKey keeps, per key, the row with the greatest survey year. The
// comparison is strict, so among rows sharing a year the first one read wins.
func LatestByKey(rows []Row, keyColumn string) map[string]Row {
	latest := make(map[string]Row, len(rows))
	for _, row := range rows {
		key := strings.TrimSpace(row[keyColumn])
		current, ok := latest[key]
		if !ok {
			latest[key] = row
			continue
		}
		if row.Year() > current.Year() {
			latest[key] = row
		}
	}
	return latest
}

// Package census loads the DOSM tabular extracts (population, area, income)
// that the enrichment pipeline joins onto boundary geometry.
package census

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one tabular record keyed by header name.
type Row map[string]string

// ReadTable loads the CSV at path into header-keyed rows. A missing file is
// not an error; enrichment simply proceeds with no records. Rows whose field
// count does not match the header are dropped.
func ReadTable(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	// Handle BOM on first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\\uFEFF")
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, skip it and keep reading.
			continue
		}
		if len(rec) != len(header) {
			continue
		}
		row := make(Row, len(header))
		for i, h := range header {
			row[h] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Package ingest turns uploaded spreadsheet bytes into RawTable values.
// It performs no interpretation beyond locating the header row; schema
// detection and typing belong to the classify and normalize packages.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"swinglab/pkg/contracts/domain"
)

// ReadCSV parses a comma-delimited export into a RawTable. The first row
// with at least two non-empty cells is taken as the header; earlier rows
// (titles, export banners) are skipped. Ragged rows are tolerated.
func ReadCSV(r io.Reader) (domain.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to parse csv: %w", err)
	}

	headerIdx := headerRowIndex(records)
	if headerIdx < 0 {
		return domain.RawTable{}, ErrNoHeaderRow
	}

	return domain.NewRawTable(records[headerIdx], records[headerIdx+1:]), nil
}

// headerRowIndex finds the first row that looks like a header: at least two
// non-empty cells.
func headerRowIndex(records [][]string) int {
	for i, rec := range records {
		filled := 0
		for _, cell := range rec {
			if strings.TrimSpace(cell) != "" {
				filled++
			}
		}
		if filled >= 2 {
			return i
		}
	}
	return -1
}

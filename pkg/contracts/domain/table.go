package domain

import "strings"

// Row is a single value row of a tabular file, keyed by the header the value
// appeared under. Values are raw strings; numeric parsing happens in the
// normalizer, never here.
type Row map[string]string

// RawTable is a parsed tabular file: an ordered header row plus the value
// rows beneath it. A RawTable is immutable once built.
type RawTable struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// NewRawTable builds a RawTable from a header row and value records.
// Records shorter than the header are padded with empty strings; longer
// records have their trailing cells dropped. Fully empty records are
// skipped so trailing blank spreadsheet rows never become data.
func NewRawTable(headers []string, records [][]string) RawTable {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		empty := true
		for _, cell := range rec {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row := make(Row, len(cleaned))
		for i, h := range cleaned {
			if h == "" {
				continue
			}
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return RawTable{Headers: cleaned, Rows: rows}
}

// Empty reports whether the table has no value rows.
func (t RawTable) Empty() bool {
	return len(t.Rows) == 0
}

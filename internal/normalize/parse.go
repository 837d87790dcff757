// Package normalize converts raw string rows into typed records using the
// column map produced by the classifier. All numeric parsing is an explicit
// parsed-or-rejected step so a malformed cell can never propagate as NaN.
package normalize

import (
	"strconv"
	"strings"
)

// ParseNumber parses a spreadsheet numeric cell, tolerating thousands
// separators and stray whitespace. It reports ok=false for empty or
// malformed cells instead of guessing.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// cellNumber looks a canonical field up in the column map and parses the
// cell beneath it. Missing columns and missing cells both report ok=false.
func cellNumber(row map[string]string, columnMap map[string]string, field string) (float64, bool) {
	header, ok := columnMap[field]
	if !ok {
		return 0, false
	}
	return ParseNumber(row[header])
}

// cellString looks a canonical field up in the column map and returns the
// trimmed cell beneath it.
func cellString(row map[string]string, columnMap map[string]string, field string) string {
	header, ok := columnMap[field]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[header])
}

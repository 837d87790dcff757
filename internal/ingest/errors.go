package ingest

import "errors"

var (
	// ErrNoHeaderRow means no row in the input looked like a header.
	ErrNoHeaderRow = errors.New("no header row found")
	// ErrNoDataSheet means no sheet in the workbook held a usable table.
	ErrNoDataSheet = errors.New("no data sheet found in workbook")
)

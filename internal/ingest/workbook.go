package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"swinglab/pkg/contracts/domain"
)

// ReadWorkbook opens an .xlsx export and extracts its data sheet as a
// RawTable. Vendors name their sheets inconsistently, so the reader scans
// every sheet and keeps the first one with a plausible header row and at
// least one value row beneath it.
func ReadWorkbook(path string, logger *slog.Logger) (domain.RawTable, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			logger.Warn("failed to read sheet",
				slog.String("sheet", sheet),
				slog.String("error", err.Error()))
			continue
		}

		headerIdx := headerRowIndex(rows)
		if headerIdx < 0 || headerIdx+1 >= len(rows) {
			continue
		}

		table := domain.NewRawTable(rows[headerIdx], rows[headerIdx+1:])
		if table.Empty() {
			continue
		}

		logger.Debug("workbook sheet selected",
			slog.String("sheet", sheet),
			slog.Int("header_row", headerIdx),
			slog.Int("data_rows", len(table.Rows)))
		return table, nil
	}

	return domain.RawTable{}, fmt.Errorf("%w: %s", ErrNoDataSheet, filepath.Base(path))
}

// ReadFile dispatches on the file extension: .xlsx/.xls go through
// ReadWorkbook, everything else is treated as comma-delimited text.
func ReadFile(path string, logger *slog.Logger) (domain.RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ReadWorkbook(path, logger)
	default:
		f, err := os.Open(path)
		if err != nil {
			return domain.RawTable{}, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	}
}

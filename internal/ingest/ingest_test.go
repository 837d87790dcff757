package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Velo,LA,Dist,Result",
		"95.2,18,320,Home Run",
		"82,5,110,Ground Out",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Velo", "LA", "Dist", "Result"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "95.2", table.Rows[0]["Velo"])
	assert.Equal(t, "Ground Out", table.Rows[1]["Result"])
}

func TestReadCSVSkipsBannerRows(t *testing.T) {
	input := strings.Join([]string{
		"Session Export",
		"",
		"Velo,LA,Result",
		"88,12,Single",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Velo", "LA", "Result"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "88", table.Rows[0]["Velo"])
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := strings.Join([]string{
		"Velo,LA,Result",
		"88,12",
		"90,15,Single,extra",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "", table.Rows[0]["Result"], "short rows pad with empties")
	assert.Equal(t, "Single", table.Rows[1]["Result"], "long rows truncate")
}

func TestReadCSVNoHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("just-one-cell\n"))
	assert.ErrorIs(t, err, ErrNoHeaderRow)
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Velo", "LA", "Result"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{95.2, 18, "Home Run"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := ReadWorkbook(path, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Velo", "LA", "Result"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Home Run", table.Rows[0]["Result"])
}

func TestReadWorkbookSkipsEmptySheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.xlsx")

	// The default first sheet stays empty; the data lives on a second one.
	f := excelize.NewFile()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Data", "A1", &[]any{"Velo", "LA"}))
	require.NoError(t, f.SetSheetRow("Data", "A2", &[]any{88, 12}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := ReadWorkbook(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Velo", "LA"}, table.Headers)
}

func TestReadFileDispatch(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "swings.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Velo,LA\n88,12\n"), 0o644))

	table, err := ReadFile(csvPath, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Velo", "LA"}, table.Headers)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"), nil)
	assert.Error(t, err)
}

package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeFixtureWorkbook creates a one-sheet workbook with the given rows.
func writeFixtureWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", axis, &row))
	}
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeFixtureWorkbook(t, [][]interface{}{
		{"Cause", "Correction", "Cost"},
		{"loose bolt", "tightened", "120"},
		{"leaking", "", "45"},
		{"short row"},
	})

	table, err := LoadWorkbook(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Cause", "Correction", "Cost"}, table.Columns)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, "loose bolt", table.Rows[0][0].Text())
	assert.Equal(t, "120", table.Rows[0][2].Text())
	assert.True(t, table.Rows[1][1].IsEmpty(), "blank cells load as empty markers")
	assert.True(t, table.Rows[2][1].IsEmpty(), "short rows are padded")
	assert.True(t, table.Rows[2][2].IsEmpty())
}

func TestLoadWorkbookMissingFile(t *testing.T) {
	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")
}

func TestLoadWorkbookNotASpreadsheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0644))

	_, err := LoadWorkbook(path)
	require.Error(t, err)
}

func TestLoadWorkbookEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := LoadWorkbook(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySheet)
}

package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"claimlens/internal/dataset"
)

// WorkbookWriter writes annotated tables out as .xlsx workbooks.
type WorkbookWriter struct {
	sheetName string
}

// NewWorkbookWriter creates a writer. sheetName defaults to "Sheet1".
func NewWorkbookWriter(sheetName string) *WorkbookWriter {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	return &WorkbookWriter{sheetName: sheetName}
}

// Write saves the table to filePath as a single-sheet workbook: one header
// row followed by the data rows. Numbers are written as numeric cells,
// dates as 2006-01-02 text, empty markers as blank cells. The destination
// directory is created if needed.
func (w *WorkbookWriter) Write(table *dataset.Table, filePath string) error {
	slog.Info("Writing annotated workbook",
		slog.String("file_path", filePath),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns)))

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if w.sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", w.sheetName); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	}

	header := make([]interface{}, len(table.Columns))
	for i, name := range table.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(w.sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = cellValue(v)
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell axis for row %d: %w", i, err)
		}
		if err := f.SetSheetRow(w.sheetName, axis, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// cellValue converts a table cell to the excelize representation.
func cellValue(v dataset.Value) interface{} {
	switch v.Kind() {
	case dataset.KindNumber:
		n, _ := v.Num()
		return n
	case dataset.KindEmpty:
		return nil
	default:
		return v.Text()
	}
}

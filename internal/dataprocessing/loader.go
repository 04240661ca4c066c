package dataprocessing

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"claimlens/internal/dataset"
)

// ErrEmptySheet is returned when the first sheet of a workbook has no
// header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// LoadWorkbook reads the first sheet of an Excel workbook into a table.
// Row 0 becomes the header; every remaining row is loaded verbatim as
// string cells, with blank cells marked empty. Short rows are padded to
// the header width. Any open or parse failure is propagated; there is no
// retry.
func LoadWorkbook(path string) (*dataset.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s: %w", path, ErrEmptySheet)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s sheet %q: %w", path, sheets[0], ErrEmptySheet)
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	table := dataset.New(header)
	for _, row := range rows[1:] {
		cells := make([]dataset.Value, len(header))
		for i := range header {
			if i < len(row) && row[i] != "" {
				cells[i] = dataset.String(row[i])
			}
		}
		table.AppendRow(cells)
	}

	slog.Info("Loaded workbook",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns)))

	return table, nil
}

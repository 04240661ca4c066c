package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"claimlens/internal/config"
	"claimlens/internal/dataset"
)

// dateLayouts are the accepted textual date formats for the Order Date
// column, tried in order. Cells excelize renders as bare numbers are
// treated as Excel serial dates instead.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-06",
	"January 2, 2006",
}

// CleanComplaints normalizes the complaint dataset in place: the Order
// Date column is coerced to calendar dates (unparseable cells become
// empty markers, never errors) and the three free-text columns are
// whitespace-trimmed. A missing column is fatal.
func CleanComplaints(t *dataset.Table) error {
	if err := t.Transform(config.ColOrderDate, coerceDate); err != nil {
		return fmt.Errorf("cleaning %s: %w", config.ColOrderDate, err)
	}
	for _, col := range []string{config.ColComplaint, config.ColCause, config.ColCorrection} {
		if err := t.Transform(col, trimText); err != nil {
			return fmt.Errorf("cleaning %s: %w", col, err)
		}
	}
	return nil
}

// CleanCosts normalizes the cost dataset in place: the three numeric
// columns are stripped of currency noise and parsed as floats, and the
// customer verbatim is capped at its first 500 runes.
func CleanCosts(t *dataset.Table) error {
	for _, col := range []string{config.ColTotalCost, config.ColKM, config.ColRepairAge} {
		if err := t.Transform(col, coerceNumber); err != nil {
			return fmt.Errorf("cleaning %s: %w", col, err)
		}
	}
	if err := t.Transform(config.ColCustomerVerbatim, truncateVerbatim); err != nil {
		return fmt.Errorf("cleaning %s: %w", config.ColCustomerVerbatim, err)
	}
	return nil
}

// trimText strips leading and trailing whitespace from string cells and
// leaves everything else untouched.
func trimText(v dataset.Value) dataset.Value {
	if s, ok := v.Str(); ok {
		return dataset.String(strings.TrimSpace(s))
	}
	return v
}

// coerceDate parses a cell into a date. Numeric text is interpreted as an
// Excel serial date. Cells that fit no accepted layout become empty.
func coerceDate(v dataset.Value) dataset.Value {
	s, ok := v.Str()
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return dataset.Empty()
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return dataset.Date(t)
		}
		return dataset.Empty()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dataset.Date(t)
		}
	}
	return dataset.Empty()
}

// coerceNumber strips every rune outside [0-9.] and parses the remainder
// as a float. Cells with nothing parseable left become empty.
func coerceNumber(v dataset.Value) dataset.Value {
	s, ok := v.Str()
	if !ok {
		return v
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return dataset.Empty()
	}
	return dataset.Number(n)
}

// truncateVerbatim keeps the first VerbatimMaxRunes runes of string cells.
func truncateVerbatim(v dataset.Value) dataset.Value {
	s, ok := v.Str()
	if !ok {
		return v
	}
	runes := []rune(s)
	if len(runes) > config.VerbatimMaxRunes {
		return dataset.String(string(runes[:config.VerbatimMaxRunes]))
	}
	return v
}

package dataprocessing

import (
	"log/slog"
	"strings"

	"claimlens/internal/config"
	"claimlens/internal/dataset"
)

// derivedColumn describes one taxonomy-derived output column: which entry
// field it copies on a match and what it falls back to for "Other" rows.
// The pick/fallback pairs reproduce the established report layout exactly,
// including the repeated FixComponent source across the three Fix
// Component columns.
type derivedColumn struct {
	name     string
	pick     func(TaxonomyEntry) string
	fallback string
}

var taxonomyColumns = []derivedColumn{
	{"Symptom Condition 1", func(e TaxonomyEntry) string { return e.SymptomCondition }, ""},
	{"Symptom Condition 2", func(e TaxonomyEntry) string { return e.SymptomComponent }, ""},
	{"Symptom Condition 3", func(e TaxonomyEntry) string { return e.FixCondition }, ""},
	{"Symptom Component 1", func(e TaxonomyEntry) string { return e.SymptomComponent }, "Other"},
	{"Symptom Component 2", func(e TaxonomyEntry) string { return e.FixCondition }, "Other"},
	{"Symptom Component 3", func(e TaxonomyEntry) string { return e.FixComponent }, "Other"},
	{"Fix Condition 1", func(e TaxonomyEntry) string { return e.FixCondition }, ""},
	{"Fix Condition 2", func(e TaxonomyEntry) string { return e.SymptomComponent }, ""},
	{"Fix Condition 3", func(e TaxonomyEntry) string { return e.FixCondition }, ""},
	{"Fix Component 1", func(e TaxonomyEntry) string { return e.FixComponent }, "Other"},
	{"Fix Component 2", func(e TaxonomyEntry) string { return e.FixComponent }, ""},
	{"Fix Component 3", func(e TaxonomyEntry) string { return e.FixComponent }, ""},
}

// TagComplaints appends the Root Cause column plus the twelve derived
// symptom/fix columns to the complaint table. Root Cause is found by
// first-match keyword containment against the taxonomy; every derived
// column is then an independent lookup on that label.
func TagComplaints(t *dataset.Table) error {
	if _, err := t.ColumnIndex(config.ColCause); err != nil {
		return err
	}

	t.AddColumn(config.ColRootCause, func(r dataset.RowView) dataset.Value {
		cause, _ := r.Get(config.ColCause).Str()
		return dataset.String(ClassifyRootCause(cause))
	})

	for _, col := range taxonomyColumns {
		col := col
		t.AddColumn(col.name, func(r dataset.RowView) dataset.Value {
			label, _ := r.Get(config.ColRootCause).Str()
			entry, ok := LookupTaxonomy(label)
			if !ok {
				return dataset.String(col.fallback)
			}
			return dataset.String(col.pick(entry))
		})
	}

	slog.Info("Tagged complaint records",
		slog.Int("rows", t.Len()),
		slog.Int("derived_columns", 1+len(taxonomyColumns)))
	return nil
}

// failureComponents are scanned in order against the customer verbatim;
// the first hit names the failing component.
var failureComponents = []string{"steering", "sensor", "module", "harness", "strut"}

// costBins are the half-open (low, high] intervals of the cost category.
var costBins = []struct {
	low   float64
	high  float64
	label string
}{
	{0, 100, "<100"},
	{100, 500, "100-500"},
	{500, 1000, "500-1000"},
	{1000, 0, ">1000"}, // no upper bound
}

// ClassifyFailureComponent returns the first known component word found
// in the verbatim text, or "Other".
func ClassifyFailureComponent(verbatim string) string {
	lowered := strings.ToLower(verbatim)
	for _, component := range failureComponents {
		if strings.Contains(lowered, component) {
			return component
		}
	}
	return "Other"
}

// ClassifyCost bins a repair cost. Costs at or below zero fall in no bin;
// ok is false and the category is undefined.
func ClassifyCost(cost float64) (string, bool) {
	for _, bin := range costBins {
		if cost > bin.low && (bin.high == 0 || cost <= bin.high) {
			return bin.label, true
		}
	}
	return "", false
}

// TagCosts appends the Failure Component and Cost Category columns to the
// cost table. Rows with a missing or non-positive TOTALCOST get an empty
// Cost Category cell.
func TagCosts(t *dataset.Table) error {
	if _, err := t.ColumnIndex(config.ColCustomerVerbatim); err != nil {
		return err
	}
	if _, err := t.ColumnIndex(config.ColTotalCost); err != nil {
		return err
	}

	t.AddColumn(config.ColFailureComponent, func(r dataset.RowView) dataset.Value {
		verbatim, _ := r.Get(config.ColCustomerVerbatim).Str()
		return dataset.String(ClassifyFailureComponent(verbatim))
	})

	t.AddColumn(config.ColCostCategory, func(r dataset.RowView) dataset.Value {
		cost, ok := r.Get(config.ColTotalCost).Num()
		if !ok {
			return dataset.Empty()
		}
		label, ok := ClassifyCost(cost)
		if !ok {
			return dataset.Empty()
		}
		return dataset.String(label)
	})

	slog.Info("Tagged cost records", slog.Int("rows", t.Len()))
	return nil
}

// Package dataprocessing implements the load, clean, and tag stages of the
// claim analysis pipelines.
//
// LoadWorkbook reads an Excel workbook into a dataset.Table. CleanComplaints
// and CleanCosts apply best-effort column coercion: individual cells that
// fail to parse become explicit empty markers while structural problems
// (a missing column) are fatal. TagComplaints classifies each row's Cause
// against the fixed root-cause taxonomy and materializes the derived
// symptom/fix columns; TagCosts derives the failure component and the
// binned cost category.
package dataprocessing

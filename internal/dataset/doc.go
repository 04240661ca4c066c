// Package dataset defines the in-memory record table shared by the claim
// analysis pipelines.
//
// A Table holds an ordered header plus rows of typed cells. Cells are
// Values: string, number, date, or an explicit empty marker used wherever a
// source cell failed best-effort coercion. Tables are loaded once, mutated
// column-by-column during cleaning and tagging, and written out once.
package dataset

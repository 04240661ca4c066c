// Package exporter writes annotated record tables back out as Excel
// workbooks. Every original column survives unchanged apart from the
// declared cleaning transforms, with the derived columns appended after.
package exporter

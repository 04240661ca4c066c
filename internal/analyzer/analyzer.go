package analyzer

import (
	"context"
	"fmt"
	"path/filepath"

	"claimlens/internal/dataprocessing"
	"claimlens/internal/dataset"
	"claimlens/internal/exporter"
	"claimlens/internal/infrastructure"
)

// Analyzer is one dataset pipeline: load, clean, tag, visualize, save.
// The two concrete analyzers differ only in their rule sets; everything
// else runs through this shared routine.
type Analyzer struct {
	name      string
	inputPath string
	outputDir string

	clean     func(*dataset.Table) error
	tag       func(*dataset.Table) error
	visualize func(*dataset.Table, *artifacts) error
}

// artifacts accumulates produced file paths in creation order.
type artifacts struct {
	outputDir string
	name      string
	paths     []string
}

// chartPath reserves the deterministic path for a named chart and
// records it as produced.
func (a *artifacts) chartPath(chartName string) string {
	path := filepath.Join(a.outputDir, fmt.Sprintf("%s_%s.png", a.name, chartName))
	a.paths = append(a.paths, path)
	return path
}

// Run executes the pipeline start to finish and returns every file it
// wrote: the chart images in creation order, then the annotated workbook.
// The first failing stage logs and propagates its error; per-cell parse
// problems never reach here, they were absorbed as empty cells.
func (a *Analyzer) Run(ctx context.Context) ([]string, error) {
	logger := infrastructure.LoggerFromContext(ctx).With("analyzer", a.name)
	logger.Info("Starting analysis", "input", a.inputPath)

	table, err := dataprocessing.LoadWorkbook(a.inputPath)
	if err != nil {
		logger.Error("Failed to load workbook", "error", err)
		return nil, err
	}

	if err := a.clean(table); err != nil {
		logger.Error("Failed to clean records", "error", err)
		return nil, fmt.Errorf("%s: cleaning failed: %w", a.name, err)
	}

	if err := a.tag(table); err != nil {
		logger.Error("Failed to tag records", "error", err)
		return nil, fmt.Errorf("%s: tagging failed: %w", a.name, err)
	}

	produced := &artifacts{outputDir: a.outputDir, name: a.name}
	if err := a.visualize(table, produced); err != nil {
		logger.Error("Failed to generate visualizations", "error", err)
		return nil, fmt.Errorf("%s: visualization failed: %w", a.name, err)
	}

	workbookPath := filepath.Join(a.outputDir, fmt.Sprintf("%s_analyzed.xlsx", a.name))
	writer := exporter.NewWorkbookWriter("")
	if err := writer.Write(table, workbookPath); err != nil {
		logger.Error("Failed to save annotated workbook", "error", err)
		return nil, fmt.Errorf("%s: export failed: %w", a.name, err)
	}
	produced.paths = append(produced.paths, workbookPath)

	logger.Info("Analysis complete", "artifacts", produced.paths)
	return produced.paths, nil
}

// Name returns the analyzer name used to prefix its artifacts.
func (a *Analyzer) Name() string { return a.name }

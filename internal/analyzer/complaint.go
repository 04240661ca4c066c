package analyzer

import (
	"claimlens/internal/charts"
	"claimlens/internal/config"
	"claimlens/internal/dataprocessing"
	"claimlens/internal/dataset"
)

// NewComplaintAnalyzer builds the pipeline for the complaint dataset:
// taxonomy-based root cause classification over task1.xlsx. outputDir may
// be empty for the working directory.
func NewComplaintAnalyzer(outputDir string) *Analyzer {
	return &Analyzer{
		name:      config.ComplaintAnalyzerName,
		inputPath: config.ComplaintInputFile,
		outputDir: outputDir,
		clean:     dataprocessing.CleanComplaints,
		tag:       dataprocessing.TagComplaints,
		visualize: complaintCharts,
	}
}

// complaintCharts renders the three complaint visualizations: root cause
// counts as bars, symptom component and fix condition shares as pies.
func complaintCharts(t *dataset.Table, out *artifacts) error {
	rootCauses, err := t.Column(config.ColRootCause)
	if err != nil {
		return err
	}
	if err := charts.SaveBar(charts.ValueCounts(rootCauses),
		"Root Cause Distribution", "Count",
		out.chartPath("root_cause_distribution")); err != nil {
		return err
	}

	symptomComponents, err := t.Column("Symptom Component 1")
	if err != nil {
		return err
	}
	if err := charts.SavePie(charts.ValueCounts(symptomComponents),
		"Symptom Component Distribution",
		out.chartPath("symptom_component_distribution")); err != nil {
		return err
	}

	fixConditions, err := t.Column("Fix Condition 1")
	if err != nil {
		return err
	}
	return charts.SavePie(charts.ValueCounts(fixConditions),
		"Fix Condition Distribution",
		out.chartPath("fix_condition_distribution"))
}

package analyzer

import (
	"claimlens/internal/charts"
	"claimlens/internal/config"
	"claimlens/internal/dataprocessing"
	"claimlens/internal/dataset"
)

// NewCostAnalyzer builds the pipeline for the repair cost dataset:
// component and cost-bucket classification over task2.xlsx.
func NewCostAnalyzer(outputDir string) *Analyzer {
	return &Analyzer{
		name:      config.CostAnalyzerName,
		inputPath: config.CostInputFile,
		outputDir: outputDir,
		clean:     dataprocessing.CleanCosts,
		tag:       dataprocessing.TagCosts,
		visualize: costCharts,
	}
}

// costCharts renders the two cost visualizations: the TOTALCOST histogram
// with its density overlay, and failure component counts as bars.
func costCharts(t *dataset.Table, out *artifacts) error {
	costCells, err := t.Column(config.ColTotalCost)
	if err != nil {
		return err
	}
	var costs []float64
	for _, cell := range costCells {
		if n, ok := cell.Num(); ok {
			costs = append(costs, n)
		}
	}
	if err := charts.SaveHistogram(costs, config.CostHistogramBins,
		"Repair Cost Distribution", "Total Cost (USD)",
		out.chartPath("repair_cost_distribution")); err != nil {
		return err
	}

	components, err := t.Column(config.ColFailureComponent)
	if err != nil {
		return err
	}
	return charts.SaveBar(charts.ValueCounts(components),
		"Component Failure Frequency", "Count",
		out.chartPath("component_failures"))
}

package config

// Application constants - all hardcoded values for the claim analyzer.
const (
	AppName    = "Claim Lens"
	AppVersion = "1.0.0"

	// Input workbooks, resolved against the working directory.
	ComplaintInputFile = "task1.xlsx"
	CostInputFile      = "task2.xlsx"

	// Analyzer names. They prefix every artifact the analyzers produce,
	// so chart and workbook filenames stay deterministic across runs.
	ComplaintAnalyzerName = "Task1Analyzer"
	CostAnalyzerName      = "Task2Analyzer"

	// Complaint dataset columns
	ColOrderDate  = "Order Date"
	ColComplaint  = "Complaint"
	ColCause      = "Cause"
	ColCorrection = "Correction"

	// Cost dataset columns
	ColTotalCost        = "TOTALCOST"
	ColKM               = "KM"
	ColRepairAge        = "REPAIR_AGE"
	ColCustomerVerbatim = "CUSTOMER_VERBATIM"

	// Derived columns
	ColRootCause        = "Root Cause"
	ColFailureComponent = "Failure Component"
	ColCostCategory     = "Cost Category"

	// Free-text verbatim cells are capped at this many runes during cleaning.
	VerbatimMaxRunes = 500

	// Bins of the TOTALCOST histogram chart.
	CostHistogramBins = 30
)

package main

import (
	"context"
	"log/slog"
	"os"

	"claimlens/internal/analyzer"
	"claimlens/internal/config"
	"claimlens/internal/infrastructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.Info("Starting claim analysis",
		"app", config.AppName,
		"version", config.AppVersion,
		"run_id", infrastructure.GetRunID(ctx))

	// The two pipelines are independent; a failure in the first aborts
	// the whole run before the second starts, matching fail-fast semantics.
	pipelines := []*analyzer.Analyzer{
		analyzer.NewComplaintAnalyzer(cfg.OutputDir),
		analyzer.NewCostAnalyzer(cfg.OutputDir),
	}

	for _, a := range pipelines {
		artifacts, err := a.Run(ctx)
		if err != nil {
			logger.Error("Analysis failed", "analyzer", a.Name(), "error", err)
			os.Exit(1)
		}
		logger.Info("Produced artifacts", "analyzer", a.Name(), "paths", artifacts)
	}
}

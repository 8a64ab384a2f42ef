package handler

import (
	"context"
	"fmt"
	"time"

	"bytescope/internal/config"
	"bytescope/internal/logger"
	"bytescope/internal/report"
	"bytescope/internal/ui"
)

// RunAnalyze fetches and profiles each target contract independently.
func RunAnalyze(ctx context.Context, cfg config.RunConfiguration) error {
	logger.Info("🔍 Starting bytecode analysis...")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, runTimeout(cfg))
	defer cancel()

	analyses, err := fetchAndAnalyze(ctx, cfg)
	if err != nil {
		return err
	}
	if len(analyses) == 0 {
		return fmt.Errorf("no contract could be analyzed")
	}

	for _, a := range analyses {
		line := fmt.Sprintf("%s: %d bytes, %d function(s), complexity %.0f",
			a.ContractName, a.SizeBytes, len(a.DetectedPatterns), a.ComplexityScore)
		if a.IsProxy() {
			line += fmt.Sprintf(" [%s]", a.ProxyType)
		}
		ui.LogInfo("%s", line)
	}

	if db := persistAnalyses(cfg, analyses); db != nil {
		defer db.Close()
	}

	rep := &report.Report{
		Mode:     "analyze",
		Chain:    cfg.Chain,
		RunTime:  startTime,
		Duration: time.Since(startTime),
		Analyses: analyses,
	}
	return renderAndSave(cfg, rep)
}

package handler

import (
	"context"
	"fmt"
	"time"

	"bytescope/internal/compare"
	"bytescope/internal/config"
	"bytescope/internal/logger"
	"bytescope/internal/report"
	"bytescope/internal/ui"
)

// RunCompare analyzes all targets, then computes pairwise similarity,
// relationships and family clusters. An address whose bytecode could not be
// fetched is excluded rather than failing the run; dropping below 2 usable
// contracts degrades to a non-comparable report, not an error.
func RunCompare(ctx context.Context, cfg config.RunConfiguration) error {
	logger.Info("⚖️  Starting multi-contract comparison...")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, runTimeout(cfg))
	defer cancel()

	analyses, err := fetchAndAnalyze(ctx, cfg)
	if err != nil {
		return err
	}

	comparison, err := compare.Compare(analyses, cfg.Threshold)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	var families []compare.Family
	if comparison.Comparable {
		families = compare.Families(comparison, cfg.Threshold)
		ui.LogSuccess("Compared %d contracts: %d pair score(s), %d relationship(s), %d family(ies)",
			len(comparison.Contracts), len(comparison.Similarities),
			len(comparison.Relationships), len(families))
	} else {
		ui.LogWarn("Only %d contract(s) usable, nothing to compare", len(comparison.Contracts))
	}

	if db := persistAnalyses(cfg, analyses); db != nil {
		if err := db.SaveComparison(cfg.Chain, fmt.Sprintf("%d contracts", len(analyses)), comparison); err != nil {
			ui.LogWarn("Failed to bookmark comparison: %v", err)
		}
		defer db.Close()
	}

	rep := &report.Report{
		Mode:      "compare",
		Chain:     cfg.Chain,
		RunTime:   startTime,
		Duration:  time.Since(startTime),
		Analyses:  analyses,
		Compared:  comparison,
		Families:  families,
		Threshold: cfg.Threshold,
	}
	return renderAndSave(cfg, rep)
}

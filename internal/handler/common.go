package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bytescope/internal/analyzer"
	"bytescope/internal/config"
	"bytescope/internal/fetch"
	"bytescope/internal/logger"
	"bytescope/internal/report"
	"bytescope/internal/store"
	"bytescope/internal/target"
	"bytescope/internal/ui"
)

func InitRunLogger() error {
	return logger.InitLogger()
}

func CloseRunLogger() {
	logger.Close()
}

// fetchAndAnalyze resolves targets, retrieves bytecode with bounded
// concurrency and runs the analysis pipeline. Individual fetch failures and
// code-less addresses are logged and skipped; they never abort the run.
func fetchAndAnalyze(ctx context.Context, cfg config.RunConfiguration) ([]*analyzer.ContractAnalysis, error) {
	addresses, err := target.Resolve(cfg.Targets)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve targets: %w", err)
	}
	logger.Info("🎯 %d target contract(s) on chain %s", len(addresses), cfg.Chain)

	rpcManager, err := config.GetRPCManager(cfg.Chain, cfg.Proxy)
	if err != nil {
		return nil, fmt.Errorf("failed to get the RPC manager: %w", err)
	}
	defer rpcManager.Close()
	logger.Info("🔗 RPC endpoint: %s", rpcManager.GetCurrentURL())

	fetcher := fetch.NewFetcher(rpcManager, cfg.Concurrency)
	spinner := ui.StartSpinner(fmt.Sprintf("Fetching bytecode for %d contract(s)", len(addresses)))
	results := fetcher.FetchAll(ctx, addresses)
	spinner <- true

	analyses := make([]*analyzer.ContractAnalysis, 0, len(results))
	for _, r := range results {
		ui.UpdateStatus("Analyzing %s", r.Address)
		if r.Err != nil {
			if errors.Is(r.Err, fetch.ErrNoContract) {
				ui.LogWarn("No contract code at %s, skipping", r.Address)
			} else {
				ui.LogWarn("Failed to fetch %s: %v", r.Address, r.Err)
			}
			continue
		}
		analysis, err := analyzer.Analyze(r.Address, "", r.Bytecode)
		if err != nil {
			ui.LogWarn("Failed to analyze %s: %v", r.Address, err)
			continue
		}
		logger.InfoFileOnly("analyzed %s: %d bytes, %d patterns",
			r.Address, analysis.SizeBytes, len(analysis.DetectedPatterns))
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

// persistAnalyses bookmarks the analyses; storage trouble is reported but
// never fails the run.
func persistAnalyses(cfg config.RunConfiguration, analyses []*analyzer.ContractAnalysis) *store.Store {
	db, err := store.Open(cfg.Database)
	if err != nil {
		ui.LogWarn("Bookmark store unavailable: %v", err)
		return nil
	}
	for _, a := range analyses {
		if err := db.SaveAnalysis(cfg.Chain, a); err != nil {
			ui.LogWarn("Failed to bookmark %s: %v", a.Address, err)
		}
	}
	return db
}

// renderAndSave renders the report in the requested format and writes it.
func renderAndSave(cfg config.RunConfiguration, rep *report.Report) error {
	var content string
	var extension string
	var err error

	switch cfg.Format {
	case "json":
		content, err = report.ExportJSON(rep)
		extension = "json"
	case "csv":
		content, err = report.ExportCSV(rep)
		extension = "csv"
	default:
		content, err = report.NewMarkdownGenerator().Generate(rep)
		extension = "md"
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	storage := report.NewFileStorage(cfg.ReportDir)
	path, err := storage.Save(rep, content, extension)
	if err != nil {
		return err
	}
	ui.LogSuccess("Report written: %s", path)
	return nil
}

func runTimeout(cfg config.RunConfiguration) time.Duration {
	if cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return 5 * time.Minute
}

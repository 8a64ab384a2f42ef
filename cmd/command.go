package cmd

import (
	"context"

	"bytescope/internal/config"
	"bytescope/internal/handler"
	"bytescope/internal/logger"
)

// prepareRun loads settings.yaml, merges it under the CLI flags and opens
// the per-run log file.
func prepareRun(cli *CLIConfig) (config.RunConfiguration, error) {
	app, err := config.LoadConfig()
	if err != nil {
		return config.RunConfiguration{}, err
	}
	run := cli.MergeConfigs(app)

	if err := handler.InitRunLogger(); err != nil {
		logger.Warn("File logging unavailable: %v", err)
	}
	return run, nil
}

func ExecuteAnalyze(ctx context.Context, cli *CLIConfig) error {
	run, err := prepareRun(cli)
	if err != nil {
		return err
	}
	defer handler.CloseRunLogger()
	return handler.RunAnalyze(ctx, run)
}

func ExecuteCompare(ctx context.Context, cli *CLIConfig) error {
	run, err := prepareRun(cli)
	if err != nil {
		return err
	}
	defer handler.CloseRunLogger()
	return handler.RunCompare(ctx, run)
}

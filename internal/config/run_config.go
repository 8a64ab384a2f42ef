package config

import (
	"time"
)

// RunConfiguration is the merged CLI + settings.yaml view one run executes
// with. CLI flags win; yaml supplies the rest.
type RunConfiguration struct {
	Mode        string // analyze | compare
	Chain       string
	Targets     []string
	Threshold   float64
	ReportDir   string
	Database    string
	Format      string // markdown | json | csv
	Proxy       string
	Concurrency int
	Verbose     bool
	Timeout     time.Duration
}

// MergeRunConfig fills unset run fields from the loaded app config.
func MergeRunConfig(run RunConfiguration, app *AppConfig) RunConfiguration {
	if app == nil {
		return run
	}
	if run.Threshold <= 0 {
		run.Threshold = app.Analysis.SimilarityThreshold
	}
	if run.ReportDir == "" {
		run.ReportDir = app.Analysis.ReportDir
	}
	if run.Database == "" {
		run.Database = app.Analysis.DatabasePath
	}
	return run
}

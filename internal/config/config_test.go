package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	assert.Equal(t, 70.0, cfg.Analysis.SimilarityThreshold)
	assert.Equal(t, "reports", cfg.Analysis.ReportDir)
	assert.Equal(t, "data/bytescope.db", cfg.Analysis.DatabasePath)

	cfg = &AppConfig{Analysis: AnalysisConfig{
		SimilarityThreshold: 85,
		ReportDir:           "out",
		DatabasePath:        "x.db",
	}}
	applyDefaults(cfg)
	assert.Equal(t, 85.0, cfg.Analysis.SimilarityThreshold)
	assert.Equal(t, "out", cfg.Analysis.ReportDir)
	assert.Equal(t, "x.db", cfg.Analysis.DatabasePath)
}

func TestAppConfigYamlShape(t *testing.T) {
	raw := `
chains:
  eth:
    name: "Ethereum Mainnet"
    chain_id: 1
    rpc_urls:
      - "https://rpc.example.org"
analysis:
  similarity_threshold: 80
  report_dir: "out"
`
	var cfg AppConfig
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))

	chain, ok := cfg.Chains["eth"]
	require.True(t, ok)
	assert.Equal(t, "Ethereum Mainnet", chain.Name)
	assert.Equal(t, 1, chain.ChainID)
	assert.Equal(t, []string{"https://rpc.example.org"}, chain.RPCURLs)
	assert.Equal(t, 80.0, cfg.Analysis.SimilarityThreshold)
}

func TestMergeRunConfig(t *testing.T) {
	app := &AppConfig{Analysis: AnalysisConfig{
		SimilarityThreshold: 75,
		ReportDir:           "reports",
		DatabasePath:        "data/bytescope.db",
	}}

	run := MergeRunConfig(RunConfiguration{Mode: "compare", Chain: "eth"}, app)
	assert.Equal(t, 75.0, run.Threshold)
	assert.Equal(t, "reports", run.ReportDir)
	assert.Equal(t, "data/bytescope.db", run.Database)

	// Explicit CLI values win.
	run = MergeRunConfig(RunConfiguration{
		Threshold: 90,
		ReportDir: "custom",
		Database:  "custom.db",
		Timeout:   time.Minute,
	}, app)
	assert.Equal(t, 90.0, run.Threshold)
	assert.Equal(t, "custom", run.ReportDir)
	assert.Equal(t, "custom.db", run.Database)
	assert.Equal(t, time.Minute, run.Timeout)
}

func TestMergeRunConfigNilApp(t *testing.T) {
	run := MergeRunConfig(RunConfiguration{Threshold: 50}, nil)
	assert.Equal(t, 50.0, run.Threshold)
}

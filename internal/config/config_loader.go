package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

type ChainConfig struct {
	Name    string   `yaml:"name"`
	ChainID int      `yaml:"chain_id"`
	RPCURLs []string `yaml:"rpc_urls"`
}

type AnalysisConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	ReportDir           string  `yaml:"report_dir"`
	DatabasePath        string  `yaml:"database_path"`
}

type AppConfig struct {
	Chains   map[string]ChainConfig `yaml:"chains"`
	Analysis AnalysisConfig         `yaml:"analysis"`
}

var (
	loadOnce     sync.Once
	loadedConfig *AppConfig
	loadedErr    error
)

// LoadConfig reads config/settings.yaml once per process.
func LoadConfig() (*AppConfig, error) {
	loadOnce.Do(func() {
		configPath := findConfigFile()
		if configPath == "" {
			loadedErr = fmt.Errorf("configuration file settings.yaml was not found")
			return
		}

		data, err := os.ReadFile(configPath)
		if err != nil {
			loadedErr = fmt.Errorf("failed to read configuration file: %w", err)
			return
		}

		var config AppConfig
		if err := yaml.Unmarshal(data, &config); err != nil {
			loadedErr = fmt.Errorf("failed to parse configuration file: %w", err)
			return
		}
		applyDefaults(&config)

		loadedConfig = &config
	})

	if loadedErr != nil {
		return nil, loadedErr
	}
	return loadedConfig, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Analysis.SimilarityThreshold <= 0 {
		cfg.Analysis.SimilarityThreshold = 70
	}
	if cfg.Analysis.ReportDir == "" {
		cfg.Analysis.ReportDir = "reports"
	}
	if cfg.Analysis.DatabasePath == "" {
		cfg.Analysis.DatabasePath = "data/bytescope.db"
	}
}

func findConfigFile() string {
	possiblePaths := []string{
		"config/settings.yaml",
		"settings.yaml",
		"../config/settings.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// GetChainConfig resolves one chain's settings by its key in the chains map.
func GetChainConfig(chainName string) (ChainConfig, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return ChainConfig{}, err
	}
	chain, ok := cfg.Chains[chainName]
	if !ok {
		return ChainConfig{}, fmt.Errorf("unknown chain: %s", chainName)
	}
	if len(chain.RPCURLs) == 0 {
		return ChainConfig{}, fmt.Errorf("chain %s has no rpc_urls configured", chainName)
	}
	return chain, nil
}

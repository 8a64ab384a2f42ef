package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bytescope/internal"
	"bytescope/internal/config"
	"bytescope/internal/ui"
)

type CLIConfig struct {
	Mode        string
	Chain       string
	Targets     []string
	Threshold   float64
	ReportDir   string
	Database    string
	Format      string
	Proxy       string
	Concurrency int
	Verbose     bool
	Timeout     time.Duration
	HelpTopic   string
	ShowHelp    bool
}

// ParseCLI reads flags into a CLIConfig. Remaining positional arguments are
// treated as extra targets, so `bytescope -m compare 0xA 0xB` works.
func ParseCLI(args []string) (*CLIConfig, error) {
	fs := flag.NewFlagSet("bytescope", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	cfg := &CLIConfig{}
	var targets string

	fs.StringVar(&cfg.Mode, "m", "analyze", "run mode (analyze|compare)")
	fs.StringVar(&targets, "t", "", "targets: 0x address, comma-separated list, or address file (txt/yaml)")
	fs.StringVar(&cfg.Chain, "c", "eth", "blockchain network key from config/settings.yaml")
	fs.Float64Var(&cfg.Threshold, "threshold", 0, "similarity threshold for families/relationships (default from config)")
	fs.StringVar(&cfg.ReportDir, "r", "", "report output directory (default from config)")
	fs.StringVar(&cfg.Database, "db", "", "sqlite bookmark database path (default from config)")
	fs.StringVar(&cfg.Format, "format", "markdown", "report format (markdown|json|csv)")
	fs.StringVar(&cfg.Proxy, "proxy", "", "proxy URL for RPC requests (HTTP/SOCKS5)")
	fs.IntVar(&cfg.Concurrency, "concurrency", 4, "number of concurrent bytecode fetches")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.DurationVar(&cfg.Timeout, "timeout", 5*time.Minute, "overall run timeout")
	fs.StringVar(&cfg.HelpTopic, "help", "", "show help for a topic (mode|target|chain|format)")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for _, t := range strings.Split(targets, ",") {
		if t = strings.TrimSpace(t); t != "" {
			cfg.Targets = append(cfg.Targets, t)
		}
	}
	cfg.Targets = append(cfg.Targets, fs.Args()...)

	if cfg.Proxy != "" {
		if err := internal.ValidateProxyURL(cfg.Proxy); err != nil {
			return nil, err
		}
	}

	switch cfg.Mode {
	case "analyze", "compare":
	default:
		return nil, fmt.Errorf("unsupported mode: %s (analyze|compare)", cfg.Mode)
	}
	switch cfg.Format {
	case "markdown", "json", "csv":
	default:
		return nil, fmt.Errorf("unsupported format: %s (markdown|json|csv)", cfg.Format)
	}

	return cfg, nil
}

// MergeConfigs layers the yaml app config underneath the CLI flags.
func (c *CLIConfig) MergeConfigs(app *config.AppConfig) config.RunConfiguration {
	run := config.RunConfiguration{
		Mode:        c.Mode,
		Chain:       c.Chain,
		Targets:     c.Targets,
		Threshold:   c.Threshold,
		ReportDir:   c.ReportDir,
		Database:    c.Database,
		Format:      c.Format,
		Proxy:       c.Proxy,
		Concurrency: c.Concurrency,
		Verbose:     c.Verbose,
		Timeout:     c.Timeout,
	}
	return config.MergeRunConfig(run, app)
}

// Run is the CLI entry point: parse, dispatch, and cancel on SIGINT/SIGTERM.
func Run() error {
	cfg, err := ParseCLI(os.Args[1:])
	if err != nil {
		return err
	}

	if cfg.ShowHelp || cfg.HelpTopic != "" || len(cfg.Targets) == 0 {
		showHelp(cfg.HelpTopic)
		if len(cfg.Targets) == 0 && !cfg.ShowHelp && cfg.HelpTopic == "" {
			return fmt.Errorf("no targets given (-t)")
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case "compare":
		return ExecuteCompare(ctx, cfg)
	default:
		return ExecuteAnalyze(ctx, cfg)
	}
}

func PrintFatal(err error) {
	fmt.Fprintf(os.Stderr, ui.Red+"❌ %v"+ui.Reset+"\n", err)
	os.Exit(1)
}

func showHelp(topic string) {
	switch topic {
	case "m", "mode":
		showModeHelp()
	case "t", "target":
		showTargetHelp()
	case "c", "chain":
		showChainHelp()
	case "f", "format":
		showFormatHelp()
	default:
		showGeneralHelp()
	}
}

func showGeneralHelp() {
	fmt.Println(ui.Cyan + "USAGE:" + ui.Reset)
	fmt.Println("  bytescope [OPTIONS] [ADDRESSES...]")
	fmt.Println()

	fmt.Println(ui.Cyan + "CORE OPTIONS:" + ui.Reset)
	fmt.Printf("  %-25s %s\n", "-m <mode>", "Run mode (analyze|compare)")
	fmt.Printf("  %-25s %s\n", "-t <target>", "0x address, comma list, or address file (txt/yaml)")
	fmt.Printf("  %-25s %s\n", "-c <chain>", "Blockchain network (default: eth)")
	fmt.Printf("  %-25s %s\n", "-threshold <n>", "Similarity threshold for families (default: 70)")
	fmt.Printf("  %-25s %s\n", "-format <fmt>", "Report format (markdown|json|csv)")
	fmt.Printf("  %-25s %s\n", "-r <dir>", "Report output directory (default: reports)")
	fmt.Printf("  %-25s %s\n", "-db <path>", "Bookmark database (default: data/bytescope.db)")
	fmt.Printf("  %-25s %s\n", "-proxy <url>", "Proxy URL (HTTP/SOCKS5)")
	fmt.Printf("  %-25s %s\n", "-concurrency <n>", "Concurrent bytecode fetches (default: 4)")
	fmt.Println()

	fmt.Println(ui.Cyan + "EXAMPLES:" + ui.Reset)
	fmt.Println(ui.Gray + "  # Profile a single contract" + ui.Reset)
	fmt.Println("  bytescope -t 0xdAC17F958D2ee523a2206206994597C13D831ec7 -c eth")
	fmt.Println()
	fmt.Println(ui.Gray + "  # Compare a proxy against its suspected implementation" + ui.Reset)
	fmt.Println("  bytescope -m compare -t 0xProxy...,0xImpl... -c eth")
	fmt.Println()
	fmt.Println(ui.Gray + "  # Cluster a watchlist into implementation families" + ui.Reset)
	fmt.Println("  bytescope -m compare -t watchlist.yaml -threshold 80 -format json")
}

func showModeHelp() {
	fmt.Println(ui.Cyan + "🎯 RUN MODES (-m)" + ui.Reset)
	fmt.Println()
	fmt.Printf("  %-25s %s\n", "analyze", "Per-contract profile: selectors, standards, security, proxy type, complexity")
	fmt.Printf("  %-25s %s\n", "compare", "Everything analyze does, plus pairwise similarity, proxy pairs and families")
}

func showTargetHelp() {
	fmt.Println(ui.Cyan + "🎯 TARGETS (-t)" + ui.Reset)
	fmt.Println()
	fmt.Println("  -t <0x...>            single contract address")
	fmt.Println("  -t <a.txt|a.yaml>     address list file (one per line, or targets:/addresses: in yaml)")
	fmt.Println("  -t <0xA>,<0xB>        comma-separated addresses")
	fmt.Println("  Positional arguments after the flags are extra addresses.")
}

func showChainHelp() {
	fmt.Println(ui.Cyan + "🔗 CHAINS (-c)" + ui.Reset)
	fmt.Println()
	fmt.Println("  Chain keys come from the chains: map in " + ui.Bold + "config/settings.yaml" + ui.Reset)
	fmt.Println("  Each chain lists its rpc_urls; endpoints are health-checked and rotated on failure.")
}

func showFormatHelp() {
	fmt.Println(ui.Cyan + "📄 FORMATS (-format)" + ui.Reset)
	fmt.Println()
	fmt.Printf("  %-25s %s\n", "markdown", "Human-readable report with tables (default)")
	fmt.Printf("  %-25s %s\n", "json", "Full structured payload for downstream tooling")
	fmt.Printf("  %-25s %s\n", "csv", "One row per contract, flattened metrics")
}

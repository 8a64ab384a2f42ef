package report

import (
	"fmt"
	"strings"
	"time"

	"bytescope/internal/analyzer"
	"bytescope/internal/compare"
)

// Generator renders a finished comparison (or single analysis) to text.
type Generator interface {
	Generate(report *Report) (string, error)
}

// Report bundles everything a renderer needs for one run.
type Report struct {
	Mode      string // analyze | compare
	Chain     string
	RunTime   time.Time
	Duration  time.Duration
	Analyses  []*analyzer.ContractAnalysis
	Compared  *compare.ContractComparison
	Families  []compare.Family
	Threshold float64
}

type MarkdownGenerator struct{}

func NewMarkdownGenerator() *MarkdownGenerator {
	return &MarkdownGenerator{}
}

func (g *MarkdownGenerator) Generate(report *Report) (string, error) {
	var b strings.Builder

	b.WriteString("# ByteScope Report\n\n")
	fmt.Fprintf(&b, "**Mode**: %s\n", report.Mode)
	fmt.Fprintf(&b, "**Chain**: %s\n", report.Chain)
	fmt.Fprintf(&b, "**Run Time**: %s\n", report.RunTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Duration**: %s\n\n", report.Duration.Round(time.Millisecond))

	for _, a := range report.Analyses {
		writeAnalysis(&b, a)
	}

	if report.Compared != nil {
		writeComparison(&b, report)
	}

	return b.String(), nil
}

func writeAnalysis(b *strings.Builder, a *analyzer.ContractAnalysis) {
	fmt.Fprintf(b, "## Contract %s (%s)\n\n", a.ContractName, a.Address)
	fmt.Fprintf(b, "- **Size**: %d bytes\n", a.SizeBytes)
	fmt.Fprintf(b, "- **Complexity Score**: %.0f / 100\n", a.ComplexityScore)
	if a.IsProxy() {
		fmt.Fprintf(b, "- **Proxy Type**: %s\n", a.ProxyType)
	}
	if len(a.SecurityFeatures) > 0 {
		fmt.Fprintf(b, "- **Security Features**: %s\n", strings.Join(a.SecurityFeatures, ", "))
	}
	if len(a.GasOptimizationFeatures) > 0 {
		fmt.Fprintf(b, "- **Gas Optimizations**: %s\n", strings.Join(a.GasOptimizationFeatures, ", "))
	}
	b.WriteString("\n")

	if len(a.StandardsCompliance) > 0 {
		b.WriteString("### Standards Compliance\n\n")
		b.WriteString("| Standard | Compliance | Missing | Extra |\n")
		b.WriteString("|----------|-----------:|---------|-------|\n")
		for _, sc := range a.StandardsCompliance {
			fmt.Fprintf(b, "| %s | %.0f%% | %s | %s |\n",
				sc.Standard, sc.CompliancePercent,
				orDash(strings.Join(sc.MissingFunctions, ", ")),
				orDash(strings.Join(sc.ExtraFunctions, ", ")))
		}
		b.WriteString("\n")
	}

	if len(a.DetectedPatterns) > 0 {
		b.WriteString("### Detected Functions\n\n")
		b.WriteString("| Selector | Function | Category | Confidence |\n")
		b.WriteString("|----------|----------|----------|-----------:|\n")
		for _, p := range a.DetectedPatterns {
			fmt.Fprintf(b, "| 0x%s | %s | %s | %.2f |\n", p.SelectorID, p.Name, p.Category, p.Confidence)
		}
		b.WriteString("\n")
	}
}

func writeComparison(b *strings.Builder, report *Report) {
	cmp := report.Compared

	b.WriteString("## Comparison\n\n")
	if !cmp.Comparable {
		b.WriteString("Fewer than 2 contracts could be analyzed; nothing to compare.\n\n")
		return
	}

	summary := compare.Summarize(cmp)
	fmt.Fprintf(b, "- **Contracts Compared**: %d\n", summary.TotalContracts)
	fmt.Fprintf(b, "- **Total Size**: %d bytes (largest: %s, smallest: %s)\n",
		summary.TotalSizeBytes, summary.LargestContract, summary.SmallestContract)
	if len(summary.StandardsDetected) > 0 {
		fmt.Fprintf(b, "- **Standards Detected**: %s\n", strings.Join(summary.StandardsDetected, ", "))
	}
	fmt.Fprintf(b, "- **Contracts With Security Controls**: %d\n", summary.SecuredContracts)
	fmt.Fprintf(b, "- **Proxy Contracts**: %d\n\n", summary.ProxyContracts)

	if len(cmp.Similarities) > 0 {
		b.WriteString("### Pairwise Similarity\n\n")
		b.WriteString("| Contract A | Contract B | Similarity | Shared Functions |\n")
		b.WriteString("|------------|------------|-----------:|------------------|\n")
		for _, s := range cmp.Similarities {
			fmt.Fprintf(b, "| %s | %s | %.1f%% | %d |\n",
				analyzer.ShortAddress(s.ContractA), analyzer.ShortAddress(s.ContractB),
				s.Similarity, len(s.SharedFunctions))
		}
		b.WriteString("\n")
	}

	if pairs := compare.ProxyPairs(cmp); len(pairs) > 0 {
		b.WriteString("### Proxy Relationships\n\n")
		for _, p := range pairs {
			fmt.Fprintf(b, "- %s → %s: %s\n", p.Proxy, p.Implementation, p.Description)
		}
		b.WriteString("\n")
	}

	if len(report.Families) > 0 {
		fmt.Fprintf(b, "### Families (threshold %.0f%%)\n\n", report.Threshold)
		for i, fam := range report.Families {
			fmt.Fprintf(b, "- Family %d (representative %s): %d member(s)\n",
				i+1, analyzer.ShortAddress(fam.Representative), len(fam.Members))
		}
		b.WriteString("\n")
	}

	if buckets := compare.ComplexityBuckets(cmp); len(buckets) > 0 {
		b.WriteString("### Complexity\n\n")
		for _, bucket := range buckets {
			fmt.Fprintf(b, "- **%s**: %s\n", bucket.Level, strings.Join(bucket.Contracts, ", "))
		}
		b.WriteString("\n")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

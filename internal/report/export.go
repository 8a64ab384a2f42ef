package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
)

// ExportJSON serializes the report payload as indented JSON, the same plain
// data shape downstream tools persist and render.
func ExportJSON(report *Report) (string, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(out), nil
}

// ExportCSV flattens the per-contract analyses into one row per contract.
func ExportCSV(report *Report) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{
		"address", "contract_name", "size_bytes", "functions",
		"proxy_type", "complexity_score", "security_features",
		"gas_optimizations", "standards",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, a := range report.Analyses {
		standards := make([]string, 0, len(a.StandardsCompliance))
		for _, sc := range a.StandardsCompliance {
			standards = append(standards, fmt.Sprintf("%s:%.0f%%", sc.Standard, sc.CompliancePercent))
		}
		row := []string{
			a.Address,
			a.ContractName,
			fmt.Sprintf("%d", a.SizeBytes),
			fmt.Sprintf("%d", len(a.DetectedPatterns)),
			string(a.ProxyType),
			fmt.Sprintf("%.0f", a.ComplexityScore),
			strings.Join(a.SecurityFeatures, "; "),
			strings.Join(a.GasOptimizationFeatures, "; "),
			strings.Join(standards, "; "),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytescope/internal/analyzer"
	"bytescope/internal/compare"
)

func sampleReport() *Report {
	proxy := &analyzer.ContractAnalysis{
		Address:          "0x1111111111111111111111111111111111111111",
		ContractName:     "Proxy",
		SizeBytes:        200,
		ProxyType:        analyzer.ProxyTransparent,
		ComplexityScore:  12,
		DetectedPatterns: []analyzer.DetectedPattern{{SelectorID: "5c60da1b", Name: "implementation()", Category: "Proxy", Confidence: 0.7}},
	}
	impl := &analyzer.ContractAnalysis{
		Address:          "0x2222222222222222222222222222222222222222",
		ContractName:     "Token",
		SizeBytes:        4000,
		ComplexityScore:  48,
		SecurityFeatures: []string{"Ownable", "Pausable"},
		StandardsCompliance: []analyzer.StandardCompliance{
			{Standard: "ERC-20", CompliancePercent: 100, MissingFunctions: []string{}, ExtraFunctions: []string{"name", "symbol"}},
		},
		DetectedPatterns: []analyzer.DetectedPattern{{SelectorID: "a9059cbb", Name: "transfer(address,uint256)", Category: "ERC20", Confidence: 0.9}},
	}

	analyses := []*analyzer.ContractAnalysis{proxy, impl}
	return &Report{
		Mode:     "compare",
		Chain:    "eth",
		RunTime:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Duration: 1500 * time.Millisecond,
		Analyses: analyses,
		Compared: &compare.ContractComparison{
			Contracts:  analyses,
			Comparable: true,
			Similarities: []compare.SimilarityResult{
				{ContractA: proxy.Address, ContractB: impl.Address, Similarity: 0, SharedFunctions: []string{}},
			},
			Relationships: []compare.ContractRelationship{
				{Contracts: [2]string{proxy.Address, impl.Address}, Type: compare.RelationshipProxyImplementation, Description: "Proxy delegates to Token"},
			},
		},
		Families: []compare.Family{
			{Representative: proxy.Address, Members: []string{proxy.Address}},
			{Representative: impl.Address, Members: []string{impl.Address}},
		},
		Threshold: 70,
	}
}

func TestMarkdownGenerator(t *testing.T) {
	out, err := NewMarkdownGenerator().Generate(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, out, "# ByteScope Report")
	assert.Contains(t, out, "**Mode**: compare")
	assert.Contains(t, out, "## Contract Proxy")
	assert.Contains(t, out, "Transparent Proxy (EIP-1967)")
	assert.Contains(t, out, "### Standards Compliance")
	assert.Contains(t, out, "| ERC-20 | 100% |")
	assert.Contains(t, out, "### Detected Functions")
	assert.Contains(t, out, "0xa9059cbb")
	assert.Contains(t, out, "## Comparison")
	assert.Contains(t, out, "### Proxy Relationships")
	assert.Contains(t, out, "### Families (threshold 70%)")
}

func TestMarkdownGeneratorNotComparable(t *testing.T) {
	rep := &Report{
		Mode:     "compare",
		Chain:    "eth",
		Compared: &compare.ContractComparison{Comparable: false},
	}
	out, err := NewMarkdownGenerator().Generate(rep)
	require.NoError(t, err)
	assert.Contains(t, out, "Fewer than 2 contracts could be analyzed")
}

func TestMarkdownGeneratorAnalyzeOnly(t *testing.T) {
	rep := sampleReport()
	rep.Mode = "analyze"
	rep.Compared = nil
	rep.Families = nil

	out, err := NewMarkdownGenerator().Generate(rep)
	require.NoError(t, err)
	assert.NotContains(t, out, "## Comparison")
	assert.Contains(t, out, "## Contract Token")
}

func TestExportJSONRoundTrips(t *testing.T) {
	out, err := ExportJSON(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
}

func TestExportCSV(t *testing.T) {
	out, err := ExportCSV(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 contracts

	assert.Equal(t, "address", records[0][0])
	assert.Equal(t, "0x1111111111111111111111111111111111111111", records[1][0])
	assert.Equal(t, string(analyzer.ProxyTransparent), records[1][4])
	assert.Equal(t, "Ownable; Pausable", records[2][6])
	assert.Equal(t, "ERC-20:100%", records[2][8])
}

func TestSanitizeFilenameComponent(t *testing.T) {
	assert.Equal(t, "compare", sanitizeFilenameComponent("compare"))
	assert.Equal(t, "a_b", sanitizeFilenameComponent("a/b"))
	assert.Equal(t, "unknown", sanitizeFilenameComponent(""))
	assert.Equal(t, "unknown", sanitizeFilenameComponent("../.."))
}

func TestFileStorageSave(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)

	path, err := storage.Save(&Report{Mode: "analyze"}, "# content\n", "md")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".md"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# content\n", string(data))

	// No temp leftovers.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

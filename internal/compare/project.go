package compare

import (
	"sort"

	"bytescope/internal/analyzer"
	"bytescope/internal/signatures"
)

// Chart-ready projections over a finished ContractComparison. Every function
// here is pure, mutates nothing, and returns its documented zero shape for an
// empty comparison.

// palette assigns series colors deterministically by array index.
var palette = []string{
	"#6366f1", "#22c55e", "#f59e0b", "#ef4444",
	"#06b6d4", "#a855f7", "#84cc16", "#f97316",
}

// ColorAt returns the palette color for a series index, cycling past the end.
func ColorAt(index int) string {
	if index < 0 {
		index = 0
	}
	return palette[index%len(palette)]
}

// SizeSlice is one contract's share of the total compared bytecode.
type SizeSlice struct {
	Address   string  `json:"address"`
	Name      string  `json:"name"`
	SizeBytes int     `json:"size_bytes"`
	Percent   float64 `json:"percent"`
	Color     string  `json:"color"`
}

// SizeDistribution reshapes the comparison into per-contract size shares.
func SizeDistribution(cmp *ContractComparison) []SizeSlice {
	out := []SizeSlice{}
	if cmp == nil || len(cmp.Contracts) == 0 {
		return out
	}
	total := 0
	for _, c := range cmp.Contracts {
		total += c.SizeBytes
	}
	for i, c := range cmp.Contracts {
		percent := 0.0
		if total > 0 {
			percent = float64(c.SizeBytes) / float64(total) * 100
		}
		out = append(out, SizeSlice{
			Address:   c.Address,
			Name:      c.ContractName,
			SizeBytes: c.SizeBytes,
			Percent:   percent,
			Color:     ColorAt(i),
		})
	}
	return out
}

// CategoryCount is one bar of the function-category histogram.
type CategoryCount struct {
	Category signatures.Category `json:"category"`
	Count    int                 `json:"count"`
}

var histogramOrder = []signatures.Category{
	signatures.CategoryERC20,
	signatures.CategoryERC721,
	signatures.CategoryERC1155,
	signatures.CategoryProxy,
	signatures.CategorySecurity,
	signatures.CategoryDeFi,
	signatures.CategoryGasOptimization,
}

// FunctionCategoryHistogram counts detected patterns across all contracts,
// grouped by category. Categories with zero hits are omitted.
func FunctionCategoryHistogram(cmp *ContractComparison) []CategoryCount {
	counts := make(map[signatures.Category]int)
	if cmp != nil {
		for _, c := range cmp.Contracts {
			for _, p := range c.DetectedPatterns {
				counts[p.Category]++
			}
		}
	}
	out := []CategoryCount{}
	for _, cat := range histogramOrder {
		if n := counts[cat]; n > 0 {
			out = append(out, CategoryCount{Category: cat, Count: n})
		}
	}
	return out
}

// StandardCoverageCell is one contract's compliance with one standard.
type StandardCoverageCell struct {
	Contract string  `json:"contract"`
	Percent  float64 `json:"percent"`
}

// StandardCoverageRow is one standard's coverage across the compared set.
type StandardCoverageRow struct {
	Standard string                 `json:"standard"`
	Cells    []StandardCoverageCell `json:"cells"`
}

// StandardsCoverage tabulates per-standard compliance per contract. Standards
// no contract complies with are omitted.
func StandardsCoverage(cmp *ContractComparison) []StandardCoverageRow {
	out := []StandardCoverageRow{}
	if cmp == nil {
		return out
	}
	for i := range signatures.Standards() {
		std := signatures.Standards()[i].Name
		row := StandardCoverageRow{Standard: std, Cells: []StandardCoverageCell{}}
		for _, c := range cmp.Contracts {
			for _, sc := range c.StandardsCompliance {
				if sc.Standard == std {
					row.Cells = append(row.Cells, StandardCoverageCell{
						Contract: c.ContractName,
						Percent:  sc.CompliancePercent,
					})
				}
			}
		}
		if len(row.Cells) > 0 {
			out = append(out, row)
		}
	}
	return out
}

// SecurityCoverageRow lists the contracts exhibiting one security feature.
type SecurityCoverageRow struct {
	Feature   string   `json:"feature"`
	Contracts []string `json:"contracts"`
}

// SecurityCoverage tabulates security features across the compared set.
func SecurityCoverage(cmp *ContractComparison) []SecurityCoverageRow {
	byFeature := make(map[string][]string)
	var order []string
	if cmp != nil {
		for _, c := range cmp.Contracts {
			for _, f := range c.SecurityFeatures {
				if _, seen := byFeature[f]; !seen {
					order = append(order, f)
				}
				byFeature[f] = append(byFeature[f], c.ContractName)
			}
		}
	}
	out := []SecurityCoverageRow{}
	for _, f := range order {
		out = append(out, SecurityCoverageRow{Feature: f, Contracts: byFeature[f]})
	}
	return out
}

// Complexity bucket boundaries.
const (
	complexityMediumFloor = 35.0
	complexityHighFloor   = 70.0
)

// ComplexityBucket groups contracts sharing one complexity level.
type ComplexityBucket struct {
	Level     string   `json:"level"`
	Contracts []string `json:"contracts"`
}

// ComplexityBuckets classifies each contract into exactly one of Low, Medium
// or High. Empty buckets are omitted.
func ComplexityBuckets(cmp *ContractComparison) []ComplexityBucket {
	buckets := map[string][]string{}
	if cmp != nil {
		for _, c := range cmp.Contracts {
			level := "Low"
			switch {
			case c.ComplexityScore >= complexityHighFloor:
				level = "High"
			case c.ComplexityScore >= complexityMediumFloor:
				level = "Medium"
			}
			buckets[level] = append(buckets[level], c.ContractName)
		}
	}
	out := []ComplexityBucket{}
	for _, level := range []string{"Low", "Medium", "High"} {
		if members := buckets[level]; len(members) > 0 {
			out = append(out, ComplexityBucket{Level: level, Contracts: members})
		}
	}
	return out
}

// ProxyPair is a display-ready proxy relationship with shortened addresses.
type ProxyPair struct {
	Proxy          string `json:"proxy"`
	Implementation string `json:"implementation"`
	Description    string `json:"description"`
}

// ProxyPairs projects the proxy-implementation relationships.
func ProxyPairs(cmp *ContractComparison) []ProxyPair {
	out := []ProxyPair{}
	if cmp == nil {
		return out
	}
	for _, rel := range cmp.Relationships {
		if rel.Type != RelationshipProxyImplementation {
			continue
		}
		out = append(out, ProxyPair{
			Proxy:          analyzer.ShortAddress(rel.Contracts[0]),
			Implementation: analyzer.ShortAddress(rel.Contracts[1]),
			Description:    rel.Description,
		})
	}
	return out
}

// Summary is the headline metric block of a comparison.
type Summary struct {
	TotalContracts    int      `json:"total_contracts"`
	TotalSizeBytes    int      `json:"total_size_bytes"`
	LargestContract   string   `json:"largest_contract"`
	SmallestContract  string   `json:"smallest_contract"`
	StandardsDetected []string `json:"standards_detected"`
	SecuredContracts  int      `json:"secured_contracts"`
	ProxyContracts    int      `json:"proxy_contracts"`
}

// Summarize computes the comparison's headline metrics. Empty input yields
// zero counts and empty fields.
func Summarize(cmp *ContractComparison) Summary {
	s := Summary{StandardsDetected: []string{}}
	if cmp == nil || len(cmp.Contracts) == 0 {
		return s
	}

	s.TotalContracts = len(cmp.Contracts)
	largest, smallest := cmp.Contracts[0], cmp.Contracts[0]
	stdSet := make(map[string]struct{})
	for _, c := range cmp.Contracts {
		s.TotalSizeBytes += c.SizeBytes
		if c.SizeBytes > largest.SizeBytes {
			largest = c
		}
		if c.SizeBytes < smallest.SizeBytes {
			smallest = c
		}
		for _, sc := range c.StandardsCompliance {
			stdSet[sc.Standard] = struct{}{}
		}
		if len(c.SecurityFeatures) > 0 {
			s.SecuredContracts++
		}
		if c.IsProxy() {
			s.ProxyContracts++
		}
	}
	s.LargestContract = largest.ContractName
	s.SmallestContract = smallest.ContractName

	for std := range stdSet {
		s.StandardsDetected = append(s.StandardsDetected, std)
	}
	sort.Strings(s.StandardsDetected)
	return s
}

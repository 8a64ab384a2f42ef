package analyzer

import (
	"bytescope/internal/signatures"
)

// DetectedPattern is one classified selector match. Immutable once created;
// owned by the ContractAnalysis that produced it.
type DetectedPattern struct {
	Selector   signatures.Selector  `json:"-"`
	SelectorID string               `json:"selector"` // 8 hex digits, for serialization
	Name       string               `json:"name"`     // canonical signature text
	Category   signatures.Category  `json:"category"`
	Confidence float64              `json:"confidence"`
	Standard   string               `json:"standard,omitempty"`
}

// StandardCompliance reports how much of a standard's required surface a
// contract exposes. Entries with zero compliance are never emitted.
type StandardCompliance struct {
	Standard          string   `json:"standard"`
	CompliancePercent float64  `json:"compliance_percent"`
	MissingFunctions  []string `json:"missing_functions"`
	ExtraFunctions    []string `json:"extra_functions"`
}

// ContractAnalysis is the per-contract result of one analysis run.
type ContractAnalysis struct {
	Address                 string               `json:"address"`
	ContractName            string               `json:"contract_name"`
	SizeBytes               int                  `json:"size_bytes"`
	DetectedPatterns        []DetectedPattern    `json:"detected_patterns"`
	StandardsCompliance     []StandardCompliance `json:"standards_compliance"`
	SecurityFeatures        []string             `json:"security_features"`
	ProxyType               ProxyType            `json:"proxy_type,omitempty"`
	ComplexityScore         float64              `json:"complexity_score"`
	GasOptimizationFeatures []string             `json:"gas_optimization_features"`
}

// Selectors returns the set of classified selectors.
func (a *ContractAnalysis) Selectors() map[signatures.Selector]struct{} {
	out := make(map[signatures.Selector]struct{}, len(a.DetectedPatterns))
	for _, p := range a.DetectedPatterns {
		out[p.Selector] = struct{}{}
	}
	return out
}

// HasCategory reports whether any detected pattern belongs to the category.
func (a *ContractAnalysis) HasCategory(cat signatures.Category) bool {
	for _, p := range a.DetectedPatterns {
		if p.Category == cat {
			return true
		}
	}
	return false
}

// IsProxy reports whether a proxy surface was detected, of any type.
func (a *ContractAnalysis) IsProxy() bool {
	return a.ProxyType != ""
}

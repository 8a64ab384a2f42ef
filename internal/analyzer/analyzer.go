package analyzer

import (
	"errors"

	"bytescope/internal/signatures"
)

// ErrNoBytecode is returned when a contract is analyzed with empty or absent
// bytecode. An empty analysis would look misleadingly clean, so the pipeline
// refuses up front; "no contract at this address" stays a distinct outcome.
var ErrNoBytecode = errors.New("no bytecode at address")

// Analyze runs the full single-contract pipeline: selector extraction,
// dictionary classification, and the per-facet feature analyzers. Pure and
// stateless apart from the process-wide signature dictionary, so it is safe
// to call concurrently for different contracts.
func Analyze(address, contractName, bytecode string) (*ContractAnalysis, error) {
	code := NormalizeBytecode(bytecode)
	if code == "" {
		return nil, ErrNoBytecode
	}

	selectors := ExtractSelectors(bytecode)
	patterns := Classify(selectors, bytecode)

	hasProxy := false
	hasDeFi := false
	for _, p := range patterns {
		switch p.Category {
		case signatures.CategoryProxy:
			hasProxy = true
		case signatures.CategoryDeFi:
			hasDeFi = true
		}
	}

	sizeBytes := len(code) / 2
	if contractName == "" {
		contractName = ShortAddress(address)
	}

	return &ContractAnalysis{
		Address:                 address,
		ContractName:            contractName,
		SizeBytes:               sizeBytes,
		DetectedPatterns:        patterns,
		StandardsCompliance:     StandardsComplianceOf(selectors),
		SecurityFeatures:        SecurityFeaturesOf(patterns),
		ProxyType:               DetectProxyType(patterns),
		ComplexityScore:         ComplexityScoreOf(sizeBytes, len(selectors), hasProxy, hasDeFi),
		GasOptimizationFeatures: GasFeaturesOf(bytecode, patterns),
	}, nil
}

// ShortAddress renders 0x1234…abcd display labels.
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}

package analyzer

import (
	"strings"

	"bytescope/internal/signatures"
)

// securityRules is a fixed rule table mapping Security-category pattern names
// to the feature they evidence. Extending detection means adding rows here.
var securityRules = []struct {
	needle  string
	feature string
}{
	{"owner", "Ownable"},
	{"pause", "Pausable"},
	{"role", "Access Control"},
	{"nonreentrant", "Reentrancy Guard"},
}

// SecurityFeaturesOf derives the set of recognized security controls from the
// detected patterns. Rule order fixes the output order.
func SecurityFeaturesOf(patterns []DetectedPattern) []string {
	var out []string
	for _, rule := range securityRules {
		for _, p := range patterns {
			if p.Category != signatures.CategorySecurity {
				continue
			}
			if strings.Contains(strings.ToLower(p.Name), rule.needle) {
				out = append(out, rule.feature)
				break
			}
		}
	}
	return out
}

package analyzer

import (
	"strings"

	"bytescope/internal/signatures"
)

// ProxyType tags the upgradeability pattern a contract's proxy surface
// matches. Empty means no Proxy-category pattern was detected at all.
type ProxyType string

const (
	ProxyDiamond     ProxyType = "Diamond Proxy (EIP-2535)"
	ProxyUUPS        ProxyType = "UUPS Proxy (EIP-1822)"
	ProxyBeacon      ProxyType = "Beacon Proxy"
	ProxyTransparent ProxyType = "Transparent Proxy (EIP-1967)"
	ProxyUnknown     ProxyType = "Unknown Proxy Pattern"
)

// proxyRules are evaluated top to bottom, first match wins. Precedence
// matters: a diamond exposes implementation() lookalikes and a UUPS proxy may
// expose the transparent surface too, so the most specific rule goes first.
// The "diamond" needle is deliberate extra coverage for diamondCut-only admin
// surfaces that expose none of the facet loupe functions.
var proxyRules = []struct {
	needle string
	typ    ProxyType
}{
	{"facet", ProxyDiamond},
	{"diamond", ProxyDiamond},
	{"proxiableuuid", ProxyUUPS},
	{"beacon", ProxyBeacon},
	{"implementation", ProxyTransparent},
}

// DetectProxyType classifies the proxy pattern from detected Proxy-category
// names. Returns the empty ProxyType when no proxy surface is present.
func DetectProxyType(patterns []DetectedPattern) ProxyType {
	var names []string
	for _, p := range patterns {
		if p.Category == signatures.CategoryProxy {
			names = append(names, strings.ToLower(p.Name))
		}
	}
	if len(names) == 0 {
		return ""
	}
	for _, rule := range proxyRules {
		for _, name := range names {
			if strings.Contains(name, rule.needle) {
				return rule.typ
			}
		}
	}
	return ProxyUnknown
}

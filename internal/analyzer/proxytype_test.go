package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bytescope/internal/signatures"
)

func proxyPatterns(sigs ...string) []DetectedPattern {
	out := make([]DetectedPattern, 0, len(sigs))
	for _, sig := range sigs {
		sel := signatures.FromSignature(sig)
		out = append(out, DetectedPattern{
			Selector:   sel,
			SelectorID: sel.Hex(),
			Name:       sig,
			Category:   signatures.CategoryProxy,
		})
	}
	return out
}

func TestDetectProxyType(t *testing.T) {
	tests := []struct {
		name     string
		patterns []DetectedPattern
		want     ProxyType
	}{
		{"no patterns", nil, ""},
		{
			"non-proxy patterns only",
			[]DetectedPattern{{Name: "transfer(address,uint256)", Category: signatures.CategoryERC20}},
			"",
		},
		{"transparent", proxyPatterns("implementation()", "admin()"), ProxyTransparent},
		{"uups", proxyPatterns("proxiableUUID()", "upgradeTo(address)"), ProxyUUPS},
		{"beacon", proxyPatterns("beacon()"), ProxyBeacon},
		{"diamond", proxyPatterns("facets()", "facetAddress(bytes4)"), ProxyDiamond},
		{
			"diamond via diamondCut without loupe",
			proxyPatterns("diamondCut((address,uint8,bytes4[])[],address,bytes)"),
			ProxyDiamond,
		},
		// Precedence: the most specific surface wins even when the generic
		// implementation() getter is present too.
		{"diamond beats transparent", proxyPatterns("implementation()", "facets()"), ProxyDiamond},
		{"uups beats transparent", proxyPatterns("implementation()", "proxiableUUID()"), ProxyUUPS},
		{"beacon beats transparent", proxyPatterns("implementation()", "beacon()"), ProxyBeacon},
		{"unrecognized surface", proxyPatterns("admin()", "changeAdmin(address)"), ProxyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectProxyType(tt.patterns))
		})
	}
}

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytescope/internal/signatures"
)

var erc20Required = []string{
	"transfer(address,uint256)",
	"transferFrom(address,address,uint256)",
	"approve(address,uint256)",
	"balanceOf(address)",
	"totalSupply()",
	"allowance(address,address)",
}

func complianceFor(t *testing.T, a *ContractAnalysis, standard string) *StandardCompliance {
	t.Helper()
	for i := range a.StandardsCompliance {
		if a.StandardsCompliance[i].Standard == standard {
			return &a.StandardsCompliance[i]
		}
	}
	return nil
}

func TestAnalyzeRejectsEmptyBytecode(t *testing.T) {
	for _, code := range []string{"", "0x", "  "} {
		_, err := Analyze("0x1111111111111111111111111111111111111111", "", code)
		assert.ErrorIs(t, err, ErrNoBytecode, "input %q", code)
	}
}

func TestAnalyzeFullERC20(t *testing.T) {
	code := dispatcherFor(erc20Required...)
	a, err := Analyze("0x1111111111111111111111111111111111111111", "Token", code)
	require.NoError(t, err)

	assert.Equal(t, "Token", a.ContractName)
	assert.Equal(t, len(NormalizeBytecode(code))/2, a.SizeBytes)
	assert.Len(t, a.DetectedPatterns, 6)

	erc20 := complianceFor(t, a, "ERC-20")
	require.NotNil(t, erc20)
	assert.Equal(t, 100.0, erc20.CompliancePercent)
	assert.Empty(t, erc20.MissingFunctions)

	// Three of the six selectors double as ERC-721 requirements, so a partial
	// ERC-721 row appears as well.
	erc721 := complianceFor(t, a, "ERC-721")
	require.NotNil(t, erc721)
	assert.InDelta(t, 37.5, erc721.CompliancePercent, 1e-9)
	assert.Contains(t, erc721.MissingFunctions, "ownerOf")

	assert.False(t, a.IsProxy())
	assert.Greater(t, a.ComplexityScore, 0.0)
	assert.LessOrEqual(t, a.ComplexityScore, 100.0)
}

func TestAnalyzePartialERC20ReportsMissing(t *testing.T) {
	code := dispatcherFor(
		"transfer(address,uint256)",
		"balanceOf(address)",
		"totalSupply()",
	)
	a, err := Analyze("0x1111111111111111111111111111111111111111", "", code)
	require.NoError(t, err)

	erc20 := complianceFor(t, a, "ERC-20")
	require.NotNil(t, erc20)
	assert.Equal(t, 50.0, erc20.CompliancePercent)
	assert.ElementsMatch(t, []string{"transferFrom", "approve", "allowance"}, erc20.MissingFunctions)
}

func TestAnalyzeOptionalFunctionsAreExtraNotRequired(t *testing.T) {
	code := dispatcherFor(append(erc20Required, "name()", "symbol()", "decimals()")...)
	a, err := Analyze("0x1111111111111111111111111111111111111111", "", code)
	require.NoError(t, err)

	erc20 := complianceFor(t, a, "ERC-20")
	require.NotNil(t, erc20)
	assert.Equal(t, 100.0, erc20.CompliancePercent)
	assert.ElementsMatch(t, []string{"name", "symbol", "decimals"}, erc20.ExtraFunctions)
}

func TestAnalyzeTransparentProxy(t *testing.T) {
	code := dispatcherFor("implementation()", "admin()")
	a, err := Analyze("0x2222222222222222222222222222222222222222", "", code)
	require.NoError(t, err)

	assert.True(t, a.IsProxy())
	assert.Equal(t, ProxyTransparent, a.ProxyType)
	assert.Empty(t, a.StandardsCompliance)
}

func TestAnalyzeNoKnownSelectors(t *testing.T) {
	a, err := Analyze("0x3333333333333333333333333333333333333333", "", "0x6080604052600080fd")
	require.NoError(t, err)

	assert.Empty(t, a.DetectedPatterns)
	assert.Empty(t, a.StandardsCompliance)
	assert.Empty(t, a.SecurityFeatures)
	assert.False(t, a.IsProxy())
}

func TestAnalyzeDefaultsContractName(t *testing.T) {
	addr := "0x1234567890abcdef1234567890abcdef12345678"
	a, err := Analyze(addr, "", dispatcherFor("transfer(address,uint256)"))
	require.NoError(t, err)
	assert.Equal(t, ShortAddress(addr), a.ContractName)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x1234…5678", ShortAddress("0x1234567890abcdef1234567890abcdef12345678"))
	assert.Equal(t, "0xabcd", ShortAddress("0xabcd"))
	assert.Equal(t, "", ShortAddress(""))
}

func TestContractAnalysisSelectors(t *testing.T) {
	a, err := Analyze("0x1111111111111111111111111111111111111111", "", dispatcherFor(erc20Required...))
	require.NoError(t, err)

	set := a.Selectors()
	assert.Len(t, set, 6)
	_, ok := set[signatures.FromSignature("transfer(address,uint256)")]
	assert.True(t, ok)
}

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bytescope/internal/signatures"
)

func TestGasFeaturesOf(t *testing.T) {
	tests := []struct {
		name     string
		bytecode string
		patterns []DetectedPattern
		want     []string
	}{
		{"nothing", "0x6080604052", nil, nil},
		{"delegate-and-return assembly", "0x60805af43d6040", nil, []string{"Assembly optimizations"}},
		{"packed storage mask", "0x60806001600160a01b03", nil, []string{"Packed storage"}},
		{"create2", "0x6080f5", nil, []string{"CREATE2 deployment"}},
		{
			"batch via pattern name",
			"0x6080604052",
			[]DetectedPattern{{Name: "multicall(bytes[])", Category: signatures.CategoryGasOptimization}},
			[]string{"Batch operations"},
		},
		{
			"batch matched once across patterns",
			"0x6080604052",
			[]DetectedPattern{
				{Name: "batchTransfer(address[],uint256[])", Category: signatures.CategoryGasOptimization},
				{Name: "multiTransfer(address[],uint256[])", Category: signatures.CategoryGasOptimization},
			},
			[]string{"Batch operations"},
		},
		{
			"all features",
			"0x5af43d6001600160a01b03f5",
			[]DetectedPattern{{Name: "multicall(bytes[])", Category: signatures.CategoryGasOptimization}},
			[]string{"Assembly optimizations", "Batch operations", "Packed storage", "CREATE2 deployment"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GasFeaturesOf(tt.bytecode, tt.patterns))
		})
	}
}

func TestContainsAligned(t *testing.T) {
	assert.True(t, containsAligned("00f5", "f5"))
	assert.True(t, containsAligned("5af43d", "5af43d"))
	// Odd offset is a byte boundary violation, not a match.
	assert.False(t, containsAligned("a5af43d0", "5af43d"))
	assert.False(t, containsAligned("", "f5"))
}

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexityScoreOf(t *testing.T) {
	tests := []struct {
		name          string
		sizeBytes     int
		functionCount int
		hasProxy      bool
		hasDeFi       bool
		want          float64
	}{
		{"zero everything", 0, 0, false, false, 0},
		{"size only", 1000, 0, false, false, 30},
		{"size and functions", 1000, 10, false, false, 50},
		{"proxy dampens", 1000, 10, true, false, 35},
		{"defi amplifies", 1000, 10, false, true, 65},
		{"proxy and defi combine", 1000, 10, true, true, 46}, // 50*0.7*1.3 = 45.5 -> 46
		{"clamped at 100", 100000, 40, false, true, 100},
		{"rounded to whole", 100, 1, true, false, 15}, // (20+2)*0.7 = 15.4
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComplexityScoreOf(tt.sizeBytes, tt.functionCount, tt.hasProxy, tt.hasDeFi)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

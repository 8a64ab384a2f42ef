package analyzer

import (
	"math"
)

// Complexity weights. Proxies are typically thin forwarders and score lower;
// DeFi contracts carry more intricate logic and score higher.
const (
	sizeWeight     = 10.0
	functionWeight = 2.0
	proxyFactor    = 0.7
	defiFactor     = 1.3
)

// ComplexityScoreOf combines bytecode size and function-surface count into a
// 0-100 heuristic, rounded to a whole number.
func ComplexityScoreOf(sizeBytes, functionCount int, hasProxy, hasDeFi bool) float64 {
	score := 0.0
	if sizeBytes > 0 {
		score = math.Log10(float64(sizeBytes)) * sizeWeight
	}
	score += float64(functionCount) * functionWeight
	if hasProxy {
		score *= proxyFactor
	}
	if hasDeFi {
		score *= defiFactor
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score)
}

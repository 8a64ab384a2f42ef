package compare

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"bytescope/internal/analyzer"
	"bytescope/internal/signatures"
)

// DefaultSimilarityThreshold is the similarity percentage at or above which
// two contracts are considered related implementations.
const DefaultSimilarityThreshold = 70.0

// ErrDuplicateAddress rejects comparisons that include the same address
// twice; comparing a contract against itself is not a meaningful result.
var ErrDuplicateAddress = errors.New("duplicate contract address in comparison")

// Compare computes pairwise similarities and relationships for a set of
// analyzed contracts. Contracts whose bytecode could not be retrieved must be
// excluded by the caller before this point; fewer than 2 usable analyses
// yields a Comparable=false result, never an error. All per-contract analyses
// are complete before any pair is scored.
func Compare(analyses []*analyzer.ContractAnalysis, threshold float64) (*ContractComparison, error) {
	seen := make(map[string]struct{}, len(analyses))
	for _, a := range analyses {
		key := strings.ToLower(strings.TrimSpace(a.Address))
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAddress, a.Address)
		}
		seen[key] = struct{}{}
	}

	cmp := &ContractComparison{
		Contracts:     analyses,
		Similarities:  []SimilarityResult{},
		Relationships: []ContractRelationship{},
	}
	if len(analyses) < 2 {
		return cmp, nil
	}
	cmp.Comparable = true

	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	for i := 0; i < len(analyses); i++ {
		for j := i + 1; j < len(analyses); j++ {
			a, b := analyses[i], analyses[j]

			score, shared, ok := Similarity(a, b)
			if ok {
				cmp.Similarities = append(cmp.Similarities, SimilarityResult{
					ContractA:       a.Address,
					ContractB:       b.Address,
					Similarity:      score,
					SharedFunctions: shared,
				})
			}

			if rel, found := detectProxyImplementation(a, b); found {
				cmp.Relationships = append(cmp.Relationships, rel)
			} else if ok && score >= threshold {
				cmp.Relationships = append(cmp.Relationships, ContractRelationship{
					Contracts: [2]string{a.Address, b.Address},
					Type:      RelationshipSimilarImplementation,
					Description: fmt.Sprintf("%s and %s share %.0f%% of their function surface",
						a.ContractName, b.ContractName, score),
				})
			}
		}
	}

	return cmp, nil
}

// Similarity is the Jaccard overlap of the two detected-selector sets, scaled
// to 0-100. ok is false when both sets are empty: the score is undefined
// there, not 100 and not 0. SharedFunctions holds the canonical names of the
// intersection, sorted for determinism.
func Similarity(a, b *analyzer.ContractAnalysis) (score float64, shared []string, ok bool) {
	setA := a.Selectors()
	setB := b.Selectors()
	if len(setA) == 0 && len(setB) == 0 {
		return 0, nil, false
	}

	nameOf := make(map[signatures.Selector]string, len(a.DetectedPatterns))
	for _, p := range a.DetectedPatterns {
		nameOf[p.Selector] = p.Name
	}

	intersection := 0
	shared = []string{}
	for sel := range setA {
		if _, both := setB[sel]; both {
			intersection++
			shared = append(shared, nameOf[sel])
		}
	}
	sort.Strings(shared)

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0, shared, true
	}
	return float64(intersection) / float64(union) * 100, shared, true
}

// detectProxyImplementation classifies a pair as proxy-implementation when
// one side carries a recognized proxy surface and is materially thinner than
// the counterpart: the proxy's own non-delegation selector count must be
// small relative to the candidate implementation's surface.
func detectProxyImplementation(a, b *analyzer.ContractAnalysis) (ContractRelationship, bool) {
	if rel, ok := proxyOf(a, b); ok {
		return rel, true
	}
	return proxyOf(b, a)
}

func proxyOf(proxy, impl *analyzer.ContractAnalysis) (ContractRelationship, bool) {
	if !proxy.IsProxy() || proxy.ProxyType == analyzer.ProxyUnknown {
		return ContractRelationship{}, false
	}

	own := 0
	for _, p := range proxy.DetectedPatterns {
		if p.Category != signatures.CategoryProxy {
			own++
		}
	}
	implCount := len(impl.DetectedPatterns)
	if implCount <= len(proxy.DetectedPatterns) || own*2 > implCount {
		return ContractRelationship{}, false
	}

	return ContractRelationship{
		Contracts: [2]string{proxy.Address, impl.Address},
		Type:      RelationshipProxyImplementation,
		Description: fmt.Sprintf("%s (%s) appears to delegate to %s",
			proxy.ContractName, proxy.ProxyType, impl.ContractName),
	}, true
}

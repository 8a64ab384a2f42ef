package compare

import (
	"bytescope/internal/analyzer"
)

// Relationship types the comparator emits.
const (
	RelationshipProxyImplementation   = "proxy-implementation"
	RelationshipSimilarImplementation = "similar-implementation"
)

// SimilarityResult scores one unordered contract pair. Symmetric: the score
// for (A,B) equals (B,A); a pair where both selector sets are empty has no
// defined similarity and is omitted entirely.
type SimilarityResult struct {
	ContractA       string   `json:"contract_a"`
	ContractB       string   `json:"contract_b"`
	Similarity      float64  `json:"similarity"` // 0-100
	SharedFunctions []string `json:"shared_functions"`
}

// ContractRelationship links two contracts. For proxy-implementation the
// order is significant: Contracts[0] is the proxy.
type ContractRelationship struct {
	Contracts   [2]string `json:"contracts"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
}

// ContractComparison is the aggregate comparison result. Built once per
// request and read-only afterward; the projector derives views from it
// without mutation. Comparable is false when fewer than 2 contracts were
// usable, which is a reportable outcome rather than a failure.
type ContractComparison struct {
	Contracts     []*analyzer.ContractAnalysis `json:"contracts"`
	Similarities  []SimilarityResult           `json:"similarities"`
	Relationships []ContractRelationship       `json:"relationships"`
	Comparable    bool                         `json:"comparable"`
}

// Family is one transitively-similar cluster of contracts. Representative is
// the first member, the contract later joiners were matched against.
type Family struct {
	Representative string   `json:"representative"`
	Members        []string `json:"members"`
}

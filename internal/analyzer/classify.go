package analyzer

import (
	"encoding/hex"
	"sort"
	"strings"

	"bytescope/internal/signatures"
)

// Confidence weights. These are heuristics tuned against compiler output, not
// invariants; adjust freely when the corroboration signals drift.
const (
	baseConfidence    = 0.7
	reoccurrenceBonus = 0.2
	nameHintBonus     = 0.1
	maxConfidence     = 1.0
)

// Classify looks extracted selectors up in the signature dictionary and
// scores each match. Selectors absent from the dictionary are dropped:
// this is a closed-world classifier, unknown surfaces are not reported.
// Output is sorted by confidence descending, ties broken by dictionary
// insertion order.
func Classify(selectors map[signatures.Selector]struct{}, bytecode string) []DetectedPattern {
	code := NormalizeBytecode(bytecode)

	type scored struct {
		pattern DetectedPattern
		dictIdx int
	}
	matches := make([]scored, 0, len(selectors))

	for sel := range selectors {
		entry, ok := signatures.Lookup(sel)
		if !ok {
			continue
		}
		confidence := baseConfidence
		// The selector hex re-occurring beyond the single PUSH4 that found it
		// is weak corroboration that the dispatcher really routes on it.
		if strings.Count(code, sel.Hex()) > 1 {
			confidence += reoccurrenceBonus
		}
		// Some compilers leave the function name in metadata/string tables;
		// its hex-encoded lower-case form showing up is a standard hint.
		if strings.Contains(code, hex.EncodeToString([]byte(strings.ToLower(entry.Name)))) {
			confidence += nameHintBonus
		}
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		matches = append(matches, scored{
			pattern: DetectedPattern{
				Selector:   sel,
				SelectorID: sel.Hex(),
				Name:       entry.Signature,
				Category:   entry.Category,
				Confidence: confidence,
				Standard:   entry.Standard,
			},
			dictIdx: entry.Index,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].pattern.Confidence != matches[j].pattern.Confidence {
			return matches[i].pattern.Confidence > matches[j].pattern.Confidence
		}
		return matches[i].dictIdx < matches[j].dictIdx
	})

	out := make([]DetectedPattern, len(matches))
	for i, m := range matches {
		out[i] = m.pattern
	}
	return out
}

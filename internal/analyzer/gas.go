package analyzer

import (
	"strings"
)

// Byte-level idioms evidencing gas-conscious code. Matched byte-aligned
// against the raw hex text, so data bytes can false-positive; that is the
// same trade the selector scanners make.
const (
	// GAS DELEGATECALL RETURNDATASIZE, the hand-written delegate-and-return
	// assembly every minimal proxy and forwarder carries.
	delegateReturnIdiom = "5af43d"
	// PUSH1 01 PUSH1 01 PUSH1 a0 SHL SUB, the 2^160-1 address mask the
	// optimizer emits for packed address+value storage slots.
	packedStorageIdiom = "6001600160a01b03"
	// CREATE2
	create2Opcode = "f5"
)

const (
	featureAssembly = "Assembly optimizations"
	featureBatch    = "Batch operations"
	featurePacked   = "Packed storage"
	featureCreate2  = "CREATE2 deployment"
)

// GasFeaturesOf reports at most one string per recognized gas-optimization
// feature. Absence of an idiom omits the feature, it is never an error.
func GasFeaturesOf(bytecode string, patterns []DetectedPattern) []string {
	code := NormalizeBytecode(bytecode)
	var out []string

	if containsAligned(code, delegateReturnIdiom) {
		out = append(out, featureAssembly)
	}
	for _, p := range patterns {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, "batch") || strings.Contains(name, "multi") {
			out = append(out, featureBatch)
			break
		}
	}
	if containsAligned(code, packedStorageIdiom) {
		out = append(out, featurePacked)
	}
	if containsAligned(code, create2Opcode) {
		out = append(out, featureCreate2)
	}
	return out
}

// containsAligned reports whether pattern occurs at an even (byte-aligned)
// offset of the hex text.
func containsAligned(code, pattern string) bool {
	for i := 0; i+len(pattern) <= len(code); i += 2 {
		if code[i:i+len(pattern)] == pattern {
			return true
		}
	}
	return false
}

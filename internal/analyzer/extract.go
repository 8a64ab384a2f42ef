package analyzer

import (
	"strings"

	"bytescope/internal/signatures"
)

// EVM opcodes the scanners key on, as lower-case hex text.
const (
	opPush4    = "63"
	opJumpDest = "5b"
	opEq       = "14"
	opLt       = "10"
	opGt       = "11"
)

// NormalizeBytecode lower-cases bytecode text and strips the 0x prefix.
// "0x" and whitespace-only input normalize to the empty string.
func NormalizeBytecode(bytecode string) string {
	code := strings.ToLower(strings.TrimSpace(bytecode))
	return strings.TrimPrefix(code, "0x")
}

// ExtractSelectors recovers plausible 4-byte function selectors from raw
// bytecode text. Three independent pattern scans run over the hex stream and
// their results are unioned; no control-flow graph is built, so false
// positives are expected and left for the classifier to filter. Malformed hex
// simply produces no matches. Never fails.
func ExtractSelectors(bytecode string) map[signatures.Selector]struct{} {
	code := NormalizeBytecode(bytecode)
	out := make(map[signatures.Selector]struct{})
	scanPush4(code, out)
	scanDispatcher(code, out)
	scanJumpTable(code, out)
	return out
}

// scanPush4 captures the 4-byte immediate of every byte-aligned PUSH4. The
// 0x63 byte may sit inside PUSH-data rather than be an opcode; that
// imprecision is accepted in exchange for not decoding instructions.
func scanPush4(code string, out map[signatures.Selector]struct{}) {
	for i := 0; i+10 <= len(code); i += 2 {
		if code[i:i+2] != opPush4 {
			continue
		}
		if sel, ok := signatures.ParseSelector(code[i+2 : i+10]); ok {
			out[sel] = struct{}{}
		}
	}
}

// scanDispatcher captures the Solidity dispatcher idiom: a pushed 4-byte
// constant immediately consumed by EQ/LT/GT against the calldata selector.
func scanDispatcher(code string, out map[signatures.Selector]struct{}) {
	for i := 0; i+12 <= len(code); i += 2 {
		if code[i:i+2] != opPush4 {
			continue
		}
		switch code[i+10 : i+12] {
		case opEq, opLt, opGt:
		default:
			continue
		}
		if sel, ok := signatures.ParseSelector(code[i+2 : i+10]); ok {
			out[sel] = struct{}{}
		}
	}
}

// scanJumpTable captures jump-table dispatch: JUMPDEST followed by a pushed
// 4-byte constant and a comparison.
func scanJumpTable(code string, out map[signatures.Selector]struct{}) {
	for i := 0; i+14 <= len(code); i += 2 {
		if code[i:i+2] != opJumpDest || code[i+2:i+4] != opPush4 {
			continue
		}
		switch code[i+12 : i+14] {
		case opEq, opLt, opGt:
		default:
			continue
		}
		if sel, ok := signatures.ParseSelector(code[i+4 : i+12]); ok {
			out[sel] = struct{}{}
		}
	}
}

package signatures

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Category groups dictionary entries by the role the function plays on-chain.
type Category string

const (
	CategoryERC20           Category = "ERC20"
	CategoryERC721          Category = "ERC721"
	CategoryERC1155         Category = "ERC1155"
	CategoryProxy           Category = "Proxy"
	CategorySecurity        Category = "Security"
	CategoryDeFi            Category = "DeFi"
	CategoryGasOptimization Category = "GasOptimization"
)

// Selector is the first 4 bytes of the Keccak-256 hash of a canonical
// function signature, the value the EVM dispatcher switches on.
type Selector [4]byte

// Hex returns the selector as 8 lower-case hex digits without 0x prefix.
func (s Selector) Hex() string {
	return hex.EncodeToString(s[:])
}

// ParseSelector parses 8 hex digits (with or without 0x prefix) into a Selector.
func ParseSelector(text string) (Selector, bool) {
	text = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(text)), "0x")
	if len(text) != 8 {
		return Selector{}, false
	}
	raw, err := hex.DecodeString(text)
	if err != nil {
		return Selector{}, false
	}
	var sel Selector
	copy(sel[:], raw)
	return sel, true
}

// FromSignature derives the 4-byte selector of a canonical signature text.
func FromSignature(signature string) Selector {
	hash := crypto.Keccak256([]byte(signature))
	var sel Selector
	copy(sel[:], hash[:4])
	return sel
}

// Entry is one immutable dictionary row. Index is the insertion position,
// used downstream to break confidence ties deterministically.
type Entry struct {
	Selector  Selector
	Signature string // canonical text, e.g. transfer(address,uint256)
	Name      string // bare function name, e.g. transfer
	Category  Category
	Standard  string // e.g. ERC-20; empty when not tied to a standard
	Index     int
}

type rawEntry struct {
	signature string
	category  Category
	standard  string
}

// Dictionary rows in insertion order. Selectors are derived at init via
// Keccak-256, never hardcoded. When the same selector belongs to several
// standards (balanceOf, transferFrom), the first row wins the dictionary
// slot; the standards tables below reference selectors directly, so
// compliance scoring is unaffected.
var rawEntries = []rawEntry{
	// ERC-20 core and metadata
	{"transfer(address,uint256)", CategoryERC20, "ERC-20"},
	{"transferFrom(address,address,uint256)", CategoryERC20, "ERC-20"},
	{"approve(address,uint256)", CategoryERC20, "ERC-20"},
	{"balanceOf(address)", CategoryERC20, "ERC-20"},
	{"totalSupply()", CategoryERC20, "ERC-20"},
	{"allowance(address,address)", CategoryERC20, "ERC-20"},
	{"name()", CategoryERC20, "ERC-20"},
	{"symbol()", CategoryERC20, "ERC-20"},
	{"decimals()", CategoryERC20, "ERC-20"},

	// ERC-721
	{"ownerOf(uint256)", CategoryERC721, "ERC-721"},
	{"safeTransferFrom(address,address,uint256)", CategoryERC721, "ERC-721"},
	{"safeTransferFrom(address,address,uint256,bytes)", CategoryERC721, "ERC-721"},
	{"getApproved(uint256)", CategoryERC721, "ERC-721"},
	{"setApprovalForAll(address,bool)", CategoryERC721, "ERC-721"},
	{"isApprovedForAll(address,address)", CategoryERC721, "ERC-721"},
	{"tokenURI(uint256)", CategoryERC721, "ERC-721"},

	// ERC-1155
	{"balanceOf(address,uint256)", CategoryERC1155, "ERC-1155"},
	{"balanceOfBatch(address[],uint256[])", CategoryERC1155, "ERC-1155"},
	{"safeTransferFrom(address,address,uint256,uint256,bytes)", CategoryERC1155, "ERC-1155"},
	{"safeBatchTransferFrom(address,address,uint256[],uint256[],bytes)", CategoryERC1155, "ERC-1155"},
	{"uri(uint256)", CategoryERC1155, "ERC-1155"},

	// Proxy surfaces (EIP-1967 / EIP-1822 / beacon / EIP-2535)
	{"implementation()", CategoryProxy, "EIP-1967"},
	{"admin()", CategoryProxy, "EIP-1967"},
	{"changeAdmin(address)", CategoryProxy, "EIP-1967"},
	{"upgradeTo(address)", CategoryProxy, "EIP-1967"},
	{"upgradeToAndCall(address,bytes)", CategoryProxy, "EIP-1967"},
	{"proxiableUUID()", CategoryProxy, "EIP-1822"},
	{"beacon()", CategoryProxy, ""},
	{"facets()", CategoryProxy, "EIP-2535"},
	{"facetAddress(bytes4)", CategoryProxy, "EIP-2535"},
	{"facetAddresses()", CategoryProxy, "EIP-2535"},
	{"facetFunctionSelectors(address)", CategoryProxy, "EIP-2535"},
	{"diamondCut((address,uint8,bytes4[])[],address,bytes)", CategoryProxy, "EIP-2535"},

	// Security controls
	{"owner()", CategorySecurity, ""},
	{"transferOwnership(address)", CategorySecurity, ""},
	{"renounceOwnership()", CategorySecurity, ""},
	{"pause()", CategorySecurity, ""},
	{"unpause()", CategorySecurity, ""},
	{"paused()", CategorySecurity, ""},
	{"hasRole(bytes32,address)", CategorySecurity, ""},
	{"getRoleAdmin(bytes32)", CategorySecurity, ""},
	{"grantRole(bytes32,address)", CategorySecurity, ""},
	{"revokeRole(bytes32,address)", CategorySecurity, ""},
	{"renounceRole(bytes32,address)", CategorySecurity, ""},
	{"nonReentrant()", CategorySecurity, ""},

	// DeFi surfaces (AMM pairs, routers, lending, staking)
	{"deposit()", CategoryDeFi, ""},
	{"withdraw(uint256)", CategoryDeFi, ""},
	{"mint(address)", CategoryDeFi, ""},
	{"burn(address)", CategoryDeFi, ""},
	{"swap(uint256,uint256,address,bytes)", CategoryDeFi, ""},
	{"skim(address)", CategoryDeFi, ""},
	{"sync()", CategoryDeFi, ""},
	{"getReserves()", CategoryDeFi, ""},
	{"token0()", CategoryDeFi, ""},
	{"token1()", CategoryDeFi, ""},
	{"swapExactTokensForTokens(uint256,uint256,address[],address,uint256)", CategoryDeFi, ""},
	{"addLiquidity(address,address,uint256,uint256,uint256,uint256,address,uint256)", CategoryDeFi, ""},
	{"removeLiquidity(address,address,uint256,uint256,uint256,address,uint256)", CategoryDeFi, ""},
	{"getAmountsOut(uint256,address[])", CategoryDeFi, ""},
	{"flashLoan(address,address,uint256,bytes)", CategoryDeFi, ""},
	{"stake(uint256)", CategoryDeFi, ""},
	{"borrow(uint256)", CategoryDeFi, ""},
	{"repayBorrow(uint256)", CategoryDeFi, ""},
	{"harvest()", CategoryDeFi, ""},

	// Gas-optimization surfaces
	{"multicall(bytes[])", CategoryGasOptimization, ""},
	{"batchTransfer(address[],uint256[])", CategoryGasOptimization, ""},
	{"multiTransfer(address[],uint256[])", CategoryGasOptimization, ""},
	{"permit(address,address,uint256,uint256,uint8,bytes32,bytes32)", CategoryGasOptimization, "ERC-2612"},
	{"selfPermit(address,uint256,uint256,uint8,bytes32,bytes32)", CategoryGasOptimization, ""},
	{"aggregate((address,bytes)[])", CategoryGasOptimization, ""},
}

var (
	entries    []Entry
	bySelector map[Selector]Entry
)

func init() {
	entries = make([]Entry, 0, len(rawEntries))
	bySelector = make(map[Selector]Entry, len(rawEntries))
	for _, raw := range rawEntries {
		sel := FromSignature(raw.signature)
		if _, dup := bySelector[sel]; dup {
			continue
		}
		e := Entry{
			Selector:  sel,
			Signature: raw.signature,
			Name:      raw.signature[:strings.IndexByte(raw.signature, '(')],
			Category:  raw.category,
			Standard:  raw.standard,
			Index:     len(entries),
		}
		entries = append(entries, e)
		bySelector[sel] = e
	}
	buildStandards()
}

// Lookup returns the dictionary entry for a selector, if known.
func Lookup(sel Selector) (Entry, bool) {
	e, ok := bySelector[sel]
	return e, ok
}

// All returns the dictionary rows in insertion order. The returned slice is
// shared; callers must not mutate it.
func All() []Entry {
	return entries
}

// Size reports the number of dictionary rows.
func Size() int {
	return len(entries)
}

package signatures

// Standard names a required/optional selector set a contract must expose to
// count as compliant with an ERC.
type Standard struct {
	Name     string
	Required []Selector
	Optional []Selector

	names map[Selector]string
}

// NameOf resolves a selector to its bare function name within this standard.
func (s *Standard) NameOf(sel Selector) string {
	return s.names[sel]
}

var standards []Standard

type rawStandard struct {
	name     string
	required []string
	optional []string
}

var rawStandards = []rawStandard{
	{
		name: "ERC-20",
		required: []string{
			"transfer(address,uint256)",
			"transferFrom(address,address,uint256)",
			"approve(address,uint256)",
			"balanceOf(address)",
			"totalSupply()",
			"allowance(address,address)",
		},
		optional: []string{
			"name()",
			"symbol()",
			"decimals()",
		},
	},
	{
		name: "ERC-721",
		required: []string{
			"balanceOf(address)",
			"ownerOf(uint256)",
			"safeTransferFrom(address,address,uint256)",
			"transferFrom(address,address,uint256)",
			"approve(address,uint256)",
			"setApprovalForAll(address,bool)",
			"getApproved(uint256)",
			"isApprovedForAll(address,address)",
		},
		optional: []string{
			"name()",
			"symbol()",
			"tokenURI(uint256)",
			"safeTransferFrom(address,address,uint256,bytes)",
		},
	},
	{
		name: "ERC-1155",
		required: []string{
			"balanceOf(address,uint256)",
			"balanceOfBatch(address[],uint256[])",
			"setApprovalForAll(address,bool)",
			"isApprovedForAll(address,address)",
			"safeTransferFrom(address,address,uint256,uint256,bytes)",
			"safeBatchTransferFrom(address,address,uint256[],uint256[],bytes)",
		},
		optional: []string{
			"uri(uint256)",
		},
	},
}

func buildStandards() {
	standards = make([]Standard, 0, len(rawStandards))
	for _, raw := range rawStandards {
		std := Standard{
			Name:  raw.name,
			names: make(map[Selector]string, len(raw.required)+len(raw.optional)),
		}
		for _, sig := range raw.required {
			sel := FromSignature(sig)
			std.Required = append(std.Required, sel)
			std.names[sel] = bareName(sig)
		}
		for _, sig := range raw.optional {
			sel := FromSignature(sig)
			std.Optional = append(std.Optional, sel)
			std.names[sel] = bareName(sig)
		}
		standards = append(standards, std)
	}
}

func bareName(signature string) string {
	for i := 0; i < len(signature); i++ {
		if signature[i] == '(' {
			return signature[:i]
		}
	}
	return signature
}

// Standards returns the known compliance standards in declaration order.
// The returned slice is shared; callers must not mutate it.
func Standards() []Standard {
	return standards
}

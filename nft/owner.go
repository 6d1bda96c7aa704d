// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nft defines the registry data model: token records, their
// opaque rental/bid/sale substructures, approvals with expirations, and
// the chain-aware owner value.
package nft

const (
	// ChainTypeNibiru marks owners recorded on the native chain.
	ChainTypeNibiru = "nibiru"

	// BridgeWallet is the only account allowed to act on behalf of owners
	// recorded on a foreign chain.
	BridgeWallet = "nibiru_bridge_address"
)

// Owner identifies who controls a token. ChainType distinguishes the
// native chain from foreign chain identifiers (e.g. "eth").
type Owner struct {
	ChainType string `json:"chain_type"`
	Address   string `json:"address"`
}

// ValidateSender reports whether [sender] may act as this owner.
//
// Native-chain owners must match exactly. Foreign-chain owners are always
// represented by the bridge wallet; their recorded address never
// self-authorizes.
func (o Owner) ValidateSender(sender string) bool {
	if o.ChainType == ChainTypeNibiru {
		return o.Address == sender
	}
	return sender == BridgeWallet
}

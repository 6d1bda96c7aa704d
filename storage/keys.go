// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"encoding/binary"

	"github.com/codedestate/tokenstate/consts"
)

// State layout:
//
// 0x0/ (tokens)
//   -> [tokenID] => TokenRecord
// 0x1/ (owner index)
//   -> [len(owner)][owner][tokenID] => nil
// 0x2/ (balances)
//   -> [denom] => uint64
// 0x3/ (fee) => uint64
// 0x4/ (token count) => uint64
// 0x5/ (operators)
//   -> [len(granter)][granter][operator] => Expiration
// 0x6/ (collection info) => CollectionInfo
const (
	tokenPrefix          byte = 0x0
	ownerPrefix          byte = 0x1
	balancePrefix        byte = 0x2
	feePrefix            byte = 0x3
	tokenCountPrefix     byte = 0x4
	operatorPrefix       byte = 0x5
	collectionInfoPrefix byte = 0x6
)

var (
	feeKey            = []byte{feePrefix}
	tokenCountKey     = []byte{tokenCountPrefix}
	collectionInfoKey = []byte{collectionInfoPrefix}
)

// [tokenPrefix] + [tokenID]
func TokenKey(tokenID string) []byte {
	k := make([]byte, consts.ByteLen+len(tokenID))
	k[0] = tokenPrefix
	copy(k[consts.ByteLen:], tokenID)
	return k
}

// [ownerPrefix] + [len(owner)] + [owner]
//
// The owner component is length-prefixed so index keys split unambiguously
// into (owner, tokenID); the tokenID suffix keeps iteration over a single
// owner ordered by identifier.
func ownerIndexPrefix(owner string) []byte {
	k := make([]byte, consts.ByteLen+consts.Uint16Len+len(owner))
	k[0] = ownerPrefix
	binary.BigEndian.PutUint16(k[consts.ByteLen:], uint16(len(owner)))
	copy(k[consts.ByteLen+consts.Uint16Len:], owner)
	return k
}

// [ownerPrefix] + [len(owner)] + [owner] + [tokenID]
func OwnerTokenKey(owner string, tokenID string) []byte {
	return append(ownerIndexPrefix(owner), tokenID...)
}

// [balancePrefix] + [denom]
func BalanceKey(denom string) []byte {
	k := make([]byte, consts.ByteLen+len(denom))
	k[0] = balancePrefix
	copy(k[consts.ByteLen:], denom)
	return k
}

// [operatorPrefix] + [len(granter)] + [granter]
func operatorIndexPrefix(granter string) []byte {
	k := make([]byte, consts.ByteLen+consts.Uint16Len+len(granter))
	k[0] = operatorPrefix
	binary.BigEndian.PutUint16(k[consts.ByteLen:], uint16(len(granter)))
	copy(k[consts.ByteLen+consts.Uint16Len:], granter)
	return k
}

// [operatorPrefix] + [len(granter)] + [granter] + [operator]
func OperatorKey(granter string, operator string) []byte {
	return append(operatorIndexPrefix(granter), operator...)
}

// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoMintedTokens      = errors.New("no minted tokens")
	ErrCorruptOwnerIndex   = errors.New("owner index references missing token")
)

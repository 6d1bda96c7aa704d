// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

func (r *Registry[T]) getCounter(key []byte) (uint64, error) {
	v, err := r.db.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

func (r *Registry[T]) putCounter(key []byte, val uint64) (uint64, error) {
	if err := r.db.Put(key, binary.BigEndian.AppendUint64(nil, val)); err != nil {
		return 0, err
	}
	return val, nil
}

// GetFee returns the current fee rate, zero if never set.
func (r *Registry[T]) GetFee(_ context.Context) (uint64, error) {
	return r.getCounter(feeKey)
}

// SetFee overwrites the fee rate and returns it. No validation, no
// history.
func (r *Registry[T]) SetFee(_ context.Context, fee uint64) (uint64, error) {
	return r.putCounter(feeKey, fee)
}

// TokenCount returns the caller-maintained token count, zero if never
// set. It has no automatic relationship to the number of live records.
func (r *Registry[T]) TokenCount(_ context.Context) (uint64, error) {
	return r.getCounter(tokenCountKey)
}

// IncrementTokens adds one to the token count and returns the new value.
func (r *Registry[T]) IncrementTokens(ctx context.Context) (uint64, error) {
	count, err := r.TokenCount(ctx)
	if err != nil {
		return 0, err
	}
	ncount, err := smath.Add(count, 1)
	if err != nil {
		return 0, err
	}
	return r.putCounter(tokenCountKey, ncount)
}

// DecrementTokens subtracts one from the token count and returns the new
// value. Decrementing from zero returns [ErrNoMintedTokens] and leaves
// the count untouched.
func (r *Registry[T]) DecrementTokens(ctx context.Context) (uint64, error) {
	count, err := r.TokenCount(ctx)
	if err != nil {
		return 0, err
	}
	ncount, err := smath.Sub(count, 1)
	if err != nil {
		return 0, fmt.Errorf("%w: count=%d", ErrNoMintedTokens, count)
	}
	return r.putCounter(tokenCountKey, ncount)
}

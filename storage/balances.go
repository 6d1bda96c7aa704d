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

// GetBalance returns the amount held for [denom], zero if the
// denomination was never written.
func (r *Registry[T]) GetBalance(_ context.Context, denom string) (uint64, error) {
	return r.getBalance(denom)
}

func (r *Registry[T]) getBalance(denom string) (uint64, error) {
	v, err := r.db.Get(BalanceKey(denom))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

func (r *Registry[T]) setBalance(denom string, balance uint64) (uint64, error) {
	if err := r.db.Put(BalanceKey(denom), binary.BigEndian.AppendUint64(nil, balance)); err != nil {
		return 0, err
	}
	r.metrics.balanceUpdates.Inc()
	return balance, nil
}

// IncreaseBalance adds [amount] to the balance for [denom] and returns
// the new balance. Overflow is an error and leaves the balance untouched.
func (r *Registry[T]) IncreaseBalance(_ context.Context, denom string, amount uint64) (uint64, error) {
	balance, err := r.getBalance(denom)
	if err != nil {
		return 0, err
	}
	nbalance, err := smath.Add(balance, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"could not increase balance (balance=%d, denom=%s, amount=%d): %w",
			balance, denom, amount, err,
		)
	}
	return r.setBalance(denom, nbalance)
}

// DecreaseBalance subtracts [amount] from the balance for [denom] and
// returns the new balance. Subtracting more than is held returns
// [ErrInsufficientBalance] and leaves the balance untouched.
func (r *Registry[T]) DecreaseBalance(_ context.Context, denom string, amount uint64) (uint64, error) {
	balance, err := r.getBalance(denom)
	if err != nil {
		return 0, err
	}
	nbalance, err := smath.Sub(balance, amount)
	if err != nil {
		return 0, fmt.Errorf(
			"%w: balance=%d, denom=%s, amount=%d",
			ErrInsufficientBalance, balance, denom, amount,
		)
	}
	return r.setBalance(denom, nbalance)
}

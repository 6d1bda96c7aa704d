// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFee(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	registry := newTestRegistry(t)

	fee, err := registry.GetFee(ctx)
	r.NoError(err)
	r.Zero(fee)

	fee, err = registry.SetFee(ctx, 250)
	r.NoError(err)
	r.Equal(uint64(250), fee)

	fee, err = registry.GetFee(ctx)
	r.NoError(err)
	r.Equal(uint64(250), fee)

	// plain overwrite, no validation
	fee, err = registry.SetFee(ctx, 0)
	r.NoError(err)
	r.Zero(fee)
}

func TestTokenCount(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	registry := newTestRegistry(t)

	count, err := registry.TokenCount(ctx)
	r.NoError(err)
	r.Zero(count)

	for i := uint64(1); i <= 5; i++ {
		count, err = registry.IncrementTokens(ctx)
		r.NoError(err)
		r.Equal(i, count)
	}

	count, err = registry.TokenCount(ctx)
	r.NoError(err)
	r.Equal(uint64(5), count)

	count, err = registry.DecrementTokens(ctx)
	r.NoError(err)
	r.Equal(uint64(4), count)
}

func TestTokenCountUnderflow(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	registry := newTestRegistry(t)

	_, err := registry.DecrementTokens(ctx)
	r.ErrorIs(err, ErrNoMintedTokens)

	// failed decrement must not touch the stored count
	count, err := registry.TokenCount(ctx)
	r.NoError(err)
	r.Zero(count)
}

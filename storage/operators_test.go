// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"

	"github.com/codedestate/tokenstate/nft"
)

func TestOperatorRoundTrip(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	registry := newTestRegistry(t)

	_, err := registry.GetOperator(ctx, "nibi1alice", "nibi1op")
	r.ErrorIs(err, database.ErrNotFound)

	expires := nft.ExpireAtHeight(500)
	r.NoError(registry.SetOperator(ctx, "nibi1alice", "nibi1op", expires))

	got, err := registry.GetOperator(ctx, "nibi1alice", "nibi1op")
	r.NoError(err)
	r.Equal(expires, got)
	r.False(got.IsExpired(nft.BlockContext{Height: 499}))
	r.True(got.IsExpired(nft.BlockContext{Height: 500}))

	r.NoError(registry.RemoveOperator(ctx, "nibi1alice", "nibi1op"))
	_, err = registry.GetOperator(ctx, "nibi1alice", "nibi1op")
	r.ErrorIs(err, database.ErrNotFound)

	// revoking a missing grant is a no-op
	r.NoError(registry.RemoveOperator(ctx, "nibi1alice", "nibi1op"))
}

func TestOperatorsList(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	registry := newTestRegistry(t)

	r.NoError(registry.SetOperator(ctx, "nibi1alice", "nibi1op1", nft.ExpireNever()))
	r.NoError(registry.SetOperator(ctx, "nibi1alice", "nibi1op2", nft.ExpireAtHeight(100)))
	r.NoError(registry.SetOperator(ctx, "nibi1alice", "nibi1op3", nft.ExpireAtTime(9_000)))
	// grants of another granter must not leak
	r.NoError(registry.SetOperator(ctx, "nibi1bob", "nibi1op9", nft.ExpireNever()))

	grants, err := registry.Operators(ctx, "nibi1alice", "", 0)
	r.NoError(err)
	r.Equal([]OperatorGrant{
		{Operator: "nibi1op1", Expires: nft.ExpireNever()},
		{Operator: "nibi1op2", Expires: nft.ExpireAtHeight(100)},
		{Operator: "nibi1op3", Expires: nft.ExpireAtTime(9_000)},
	}, grants)

	grants, err = registry.Operators(ctx, "nibi1alice", "", 2)
	r.NoError(err)
	r.Len(grants, 2)

	grants, err = registry.Operators(ctx, "nibi1alice", "nibi1op2", 0)
	r.NoError(err)
	r.Equal([]OperatorGrant{{Operator: "nibi1op3", Expires: nft.ExpireAtTime(9_000)}}, grants)

	grants, err = registry.Operators(ctx, "nibi1carol", "", 0)
	r.NoError(err)
	r.Empty(grants)
}

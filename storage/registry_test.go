// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/codedestate/tokenstate/nft"
)

// testExtension stands in for a caller-supplied payload.
type testExtension struct {
	Kind string `json:"kind,omitempty"`
	Area uint64 `json:"area,omitempty"`
}

func newTestRegistry(t *testing.T) *Registry[testExtension] {
	t.Helper()
	r, err := New[testExtension](logging.NoLog{}, prometheus.NewRegistry(), memdb.New())
	require.NoError(t, err)
	return r
}

func testToken(owner string) *nft.TokenRecord[testExtension] {
	return &nft.TokenRecord[testExtension]{
		Owner: nft.Owner{ChainType: nft.ChainTypeNibiru, Address: owner},
		Approvals: []nft.Approval{
			{Spender: "nibi1spender", Expires: nft.ExpireAtHeight(1_000)},
		},
		Sell:      nft.Sell{Listed: true, Denom: "unibi", Price: 42},
		TokenURI:  "ipfs://property",
		Extension: testExtension{Kind: "apartment", Area: 120},
	}
}

func TestCollectionInfoRoundTrip(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	registry := newTestRegistry(t)

	_, err := registry.GetCollectionInfo(ctx)
	r.ErrorIs(err, database.ErrNotFound)

	info := nft.CollectionInfo{Name: "Codedestate", Symbol: "CDE"}
	r.NoError(registry.SetCollectionInfo(ctx, info))

	got, err := registry.GetCollectionInfo(ctx)
	r.NoError(err)
	r.Equal(info, got)
}

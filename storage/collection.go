// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codedestate/tokenstate/nft"
)

// SetCollectionInfo overwrites the collection metadata.
func (r *Registry[T]) SetCollectionInfo(_ context.Context, info nft.CollectionInfo) error {
	v, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return r.db.Put(collectionInfoKey, v)
}

// GetCollectionInfo returns the collection metadata or
// [database.ErrNotFound] if it was never set.
func (r *Registry[T]) GetCollectionInfo(_ context.Context) (nft.CollectionInfo, error) {
	v, err := r.db.Get(collectionInfoKey)
	if err != nil {
		return nft.CollectionInfo{}, err
	}
	var info nft.CollectionInfo
	if err := json.Unmarshal(v, &info); err != nil {
		return nft.CollectionInfo{}, fmt.Errorf("failed to unmarshal collection info: %w", err)
	}
	return info, nil
}

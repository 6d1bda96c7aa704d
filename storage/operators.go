// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codedestate/tokenstate/nft"
)

// OperatorGrant gives [Operator] full control over the granter's tokens
// until [Expires] lapses.
type OperatorGrant struct {
	Operator string         `json:"operator"`
	Expires  nft.Expiration `json:"expires"`
}

// SetOperator records a blanket grant from [granter] to [operator].
func (r *Registry[T]) SetOperator(_ context.Context, granter string, operator string, expires nft.Expiration) error {
	v, err := json.Marshal(expires)
	if err != nil {
		return err
	}
	return r.db.Put(OperatorKey(granter, operator), v)
}

// GetOperator returns the grant from [granter] to [operator] or
// [database.ErrNotFound]. Expiry is not checked here; callers compare
// against their own block context.
func (r *Registry[T]) GetOperator(_ context.Context, granter string, operator string) (nft.Expiration, error) {
	v, err := r.db.Get(OperatorKey(granter, operator))
	if err != nil {
		return nft.Expiration{}, err
	}
	var expires nft.Expiration
	if err := json.Unmarshal(v, &expires); err != nil {
		return nft.Expiration{}, fmt.Errorf("failed to unmarshal operator grant %s/%s: %w", granter, operator, err)
	}
	return expires, nil
}

// RemoveOperator revokes the grant from [granter] to [operator]. Removing
// a grant that does not exist is not an error.
func (r *Registry[T]) RemoveOperator(_ context.Context, granter string, operator string) error {
	return r.db.Delete(OperatorKey(granter, operator))
}

// Operators lists the grants issued by [granter], ordered by operator
// address, with the same pagination semantics as [Registry.TokensByOwner].
func (r *Registry[T]) Operators(_ context.Context, granter string, startAfter string, limit int) ([]OperatorGrant, error) {
	prefix := operatorIndexPrefix(granter)
	var start []byte
	if startAfter != "" {
		start = append(OperatorKey(granter, startAfter), 0x00)
	}

	it := r.db.NewIteratorWithStartAndPrefix(start, prefix)
	defer it.Release()

	var grants []OperatorGrant
	for it.Next() {
		if limit > 0 && len(grants) >= limit {
			break
		}
		var expires nft.Expiration
		if err := json.Unmarshal(it.Value(), &expires); err != nil {
			return nil, err
		}
		grants = append(grants, OperatorGrant{
			Operator: string(it.Key()[len(prefix):]),
			Expires:  expires,
		})
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return grants, nil
}

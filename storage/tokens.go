// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"go.uber.org/zap"

	"github.com/codedestate/tokenstate/nft"
)

// SaveToken inserts or overwrites the record at [tokenID].
//
// The owner index entry is written in the same batch as the record: if a
// prior record exists under a different owner, its index entry is deleted
// and the new one inserted atomically with the primary write. The index
// key is always derived from the record being written, never supplied by
// the caller, so the index cannot diverge from the table.
func (r *Registry[T]) SaveToken(ctx context.Context, tokenID string, token *nft.TokenRecord[T]) error {
	v, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token %s: %w", tokenID, err)
	}

	batch := r.db.NewBatch()
	prev, err := r.GetToken(ctx, tokenID)
	switch {
	case err == nil:
		if prev.Owner.Address != token.Owner.Address {
			if err := batch.Delete(OwnerTokenKey(prev.Owner.Address, tokenID)); err != nil {
				return err
			}
		}
	case !errors.Is(err, database.ErrNotFound):
		return err
	}

	if err := errors.Join(
		batch.Put(TokenKey(tokenID), v),
		batch.Put(OwnerTokenKey(token.Owner.Address, tokenID), nil),
	); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		return err
	}

	r.metrics.tokenSaves.Inc()
	r.log.Debug("saved token",
		zap.String("token", tokenID),
		zap.String("owner", token.Owner.Address),
	)
	return nil
}

// GetToken returns the record at [tokenID] or [database.ErrNotFound].
func (r *Registry[T]) GetToken(_ context.Context, tokenID string) (*nft.TokenRecord[T], error) {
	v, err := r.db.Get(TokenKey(tokenID))
	if err != nil {
		return nil, err
	}
	token := new(nft.TokenRecord[T])
	if err := json.Unmarshal(v, token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token %s: %w", tokenID, err)
	}
	return token, nil
}

// HasToken reports whether a record exists at [tokenID].
func (r *Registry[T]) HasToken(_ context.Context, tokenID string) (bool, error) {
	return r.db.Has(TokenKey(tokenID))
}

// RemoveToken deletes the record at [tokenID] together with its owner
// index entry. The index key is derived from the record being deleted.
// Returns [database.ErrNotFound] if no record exists.
func (r *Registry[T]) RemoveToken(ctx context.Context, tokenID string) error {
	token, err := r.GetToken(ctx, tokenID)
	if err != nil {
		return err
	}

	batch := r.db.NewBatch()
	if err := errors.Join(
		batch.Delete(TokenKey(tokenID)),
		batch.Delete(OwnerTokenKey(token.Owner.Address, tokenID)),
	); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		return err
	}

	r.metrics.tokenRemoves.Inc()
	r.log.Debug("removed token",
		zap.String("token", tokenID),
		zap.String("owner", token.Owner.Address),
	)
	return nil
}

// TokenIterator lazily yields (tokenID, record) pairs ordered by
// identifier. The caller must call [TokenIterator.Release] when done and
// check [TokenIterator.Error] afterwards.
type TokenIterator[T any] struct {
	db        database.Database
	inner     database.Iterator
	prefixLen int
	fromIndex bool

	limit int
	count int

	tokenID string
	token   *nft.TokenRecord[T]
	err     error
}

// TokensByOwner iterates the records currently owned by [owner], ordered
// by token identifier. [startAfter] restarts a previous iteration just
// past the given identifier ("" starts from the beginning); a
// non-positive [limit] means unbounded.
func (r *Registry[T]) TokensByOwner(_ context.Context, owner string, startAfter string, limit int) *TokenIterator[T] {
	prefix := ownerIndexPrefix(owner)
	var start []byte
	if startAfter != "" {
		// trailing zero byte makes the start key exclusive
		start = append(OwnerTokenKey(owner, startAfter), 0x00)
	}
	return &TokenIterator[T]{
		db:        r.db,
		inner:     r.db.NewIteratorWithStartAndPrefix(start, prefix),
		prefixLen: len(prefix),
		fromIndex: true,
		limit:     limit,
	}
}

// AllTokens iterates every record in the registry ordered by token
// identifier, with the same pagination semantics as [TokensByOwner].
func (r *Registry[T]) AllTokens(_ context.Context, startAfter string, limit int) *TokenIterator[T] {
	var start []byte
	if startAfter != "" {
		start = append(TokenKey(startAfter), 0x00)
	}
	return &TokenIterator[T]{
		db:        r.db,
		inner:     r.db.NewIteratorWithStartAndPrefix(start, []byte{tokenPrefix}),
		prefixLen: 1,
		limit:     limit,
	}
}

func (it *TokenIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.limit > 0 && it.count >= it.limit {
		return false
	}
	if !it.inner.Next() {
		return false
	}

	it.tokenID = string(it.inner.Key()[it.prefixLen:])
	raw := it.inner.Value()
	if it.fromIndex {
		// index entries carry no value; load the primary record
		var err error
		raw, err = it.db.Get(TokenKey(it.tokenID))
		if errors.Is(err, database.ErrNotFound) {
			it.err = fmt.Errorf("%w: %s", ErrCorruptOwnerIndex, it.tokenID)
			return false
		}
		if err != nil {
			it.err = err
			return false
		}
	}

	token := new(nft.TokenRecord[T])
	if err := json.Unmarshal(raw, token); err != nil {
		it.err = fmt.Errorf("failed to unmarshal token %s: %w", it.tokenID, err)
		return false
	}
	it.token = token
	it.count++
	return true
}

// TokenID returns the identifier at the current position.
func (it *TokenIterator[T]) TokenID() string {
	return it.tokenID
}

// Token returns the record at the current position.
func (it *TokenIterator[T]) Token() *nft.TokenRecord[T] {
	return it.token
}

func (it *TokenIterator[T]) Error() error {
	if it.err != nil {
		return it.err
	}
	return it.inner.Error()
}

func (it *TokenIterator[T]) Release() {
	it.inner.Release()
}

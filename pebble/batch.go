// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

type op struct {
	key    []byte
	value  []byte
	delete bool
}

type batch struct {
	db    *Database
	batch *pebble.Batch
	size  int

	// ops are retained to support Replay
	ops []op
}

func (db *Database) NewBatch() database.Batch {
	return &batch{
		db:    db,
		batch: db.db.NewBatch(),
	}
}

func (b *batch) Put(key []byte, value []byte) error {
	b.size += len(key) + len(value)
	b.ops = append(b.ops, op{key: key, value: value})
	return b.batch.Set(key, value, nil)
}

func (b *batch) Delete(key []byte) error {
	b.size += len(key)
	b.ops = append(b.ops, op{key: key, delete: true})
	return b.batch.Delete(key, nil)
}

func (b *batch) Size() int {
	return b.size
}

func (b *batch) Write() error {
	if b.db.closed.Get() {
		return database.ErrClosed
	}
	return updateError(b.batch.Commit(b.db.writeOpts))
}

func (b *batch) Reset() {
	b.batch.Reset()
	b.ops = nil
	b.size = 0
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	for _, o := range b.ops {
		if o.delete {
			if err := w.Delete(o.key); err != nil {
				return err
			}
			continue
		}
		if err := w.Put(o.key, o.value); err != nil {
			return err
		}
	}
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}

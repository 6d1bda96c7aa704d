// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"bytes"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

type iter struct {
	db   *Database
	iter *pebble.Iterator

	initialized bool
	valid       bool
	err         error
}

func (db *Database) NewIterator() database.Iterator {
	it, err := db.db.NewIter(&pebble.IterOptions{})
	return &iter{
		db:   db,
		iter: it,
		err:  err,
	}
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	it, err := db.db.NewIter(&pebble.IterOptions{LowerBound: start})
	return &iter{
		db:   db,
		iter: it,
		err:  err,
	}
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	it, err := db.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	return &iter{
		db:   db,
		iter: it,
		err:  err,
	}
}

func (db *Database) NewIteratorWithStartAndPrefix(start []byte, prefix []byte) database.Iterator {
	lower := prefix
	if bytes.Compare(start, prefix) > 0 {
		lower = start
	}
	it, err := db.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: prefixUpperBound(prefix),
	})
	return &iter{
		db:   db,
		iter: it,
		err:  err,
	}
}

// prefixUpperBound returns the smallest key strictly greater than every
// key with [prefix], or nil if no such bound exists.
func prefixUpperBound(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			upper := slices.Clone(prefix[:i+1])
			upper[i]++
			return upper
		}
	}
	return nil
}

func (it *iter) Next() bool {
	if it.db.closed.Get() {
		it.valid = false
		it.err = database.ErrClosed
		return false
	}
	if !it.initialized {
		it.valid = it.iter.First()
		it.initialized = true
	} else {
		it.valid = it.iter.Next()
	}
	return it.valid
}

func (it *iter) Error() error {
	if it.err != nil {
		return it.err
	}
	return updateError(it.iter.Error())
}

func (it *iter) Key() []byte {
	if !it.valid {
		return nil
	}
	return slices.Clone(it.iter.Key())
}

func (it *iter) Value() []byte {
	if !it.valid {
		return nil
	}
	return slices.Clone(it.iter.Value())
}

func (it *iter) Release() {
	it.valid = false
	_ = it.iter.Close()
}

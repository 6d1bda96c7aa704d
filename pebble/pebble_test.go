// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) database.Database {
	t.Helper()
	db, err := New(t.TempDir(), NewDefaultConfig(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestPutGetDelete(t *testing.T) {
	r := require.New(t)
	db := newTestDB(t)

	_, err := db.Get([]byte("k"))
	r.ErrorIs(err, database.ErrNotFound)

	has, err := db.Has([]byte("k"))
	r.NoError(err)
	r.False(has)

	r.NoError(db.Put([]byte("k"), []byte("v")))

	v, err := db.Get([]byte("k"))
	r.NoError(err)
	r.Equal([]byte("v"), v)

	has, err = db.Has([]byte("k"))
	r.NoError(err)
	r.True(has)

	r.NoError(db.Delete([]byte("k")))
	_, err = db.Get([]byte("k"))
	r.ErrorIs(err, database.ErrNotFound)
}

func TestBatch(t *testing.T) {
	r := require.New(t)
	db := newTestDB(t)

	r.NoError(db.Put([]byte("stale"), []byte("x")))

	b := db.NewBatch()
	r.NoError(b.Put([]byte("a"), []byte("1")))
	r.NoError(b.Put([]byte("b"), []byte("2")))
	r.NoError(b.Delete([]byte("stale")))
	r.Positive(b.Size())

	// nothing is visible until the batch commits
	_, err := db.Get([]byte("a"))
	r.ErrorIs(err, database.ErrNotFound)

	r.NoError(b.Write())

	v, err := db.Get([]byte("a"))
	r.NoError(err)
	r.Equal([]byte("1"), v)
	_, err = db.Get([]byte("stale"))
	r.ErrorIs(err, database.ErrNotFound)

	// replay applies the same ops to another store
	other := newTestDB(t)
	r.NoError(b.Replay(other))
	v, err = other.Get([]byte("b"))
	r.NoError(err)
	r.Equal([]byte("2"), v)
}

func TestIteratorPrefixAndStart(t *testing.T) {
	r := require.New(t)
	db := newTestDB(t)

	for _, k := range []string{"a/1", "a/2", "a/3", "b/1"} {
		r.NoError(db.Put([]byte(k), []byte(k)))
	}

	collect := func(it database.Iterator) []string {
		defer it.Release()
		keys := []string{}
		for it.Next() {
			keys = append(keys, string(it.Key()))
		}
		r.NoError(it.Error())
		return keys
	}

	r.Equal([]string{"a/1", "a/2", "a/3", "b/1"}, collect(db.NewIterator()))
	r.Equal([]string{"a/1", "a/2", "a/3"}, collect(db.NewIteratorWithPrefix([]byte("a/"))))
	r.Equal([]string{"a/2", "a/3", "b/1"}, collect(db.NewIteratorWithStart([]byte("a/2"))))
	r.Equal([]string{"a/2", "a/3"}, collect(db.NewIteratorWithStartAndPrefix([]byte("a/2"), []byte("a/"))))
}

func TestClosed(t *testing.T) {
	r := require.New(t)
	db, err := New(t.TempDir(), NewDefaultConfig(), prometheus.NewRegistry())
	r.NoError(err)

	r.NoError(db.Put([]byte("k"), []byte("v")))
	r.NoError(db.Close())

	_, err = db.Get([]byte("k"))
	r.ErrorIs(err, database.ErrClosed)
	r.ErrorIs(db.Put([]byte("k"), []byte("v")), database.ErrClosed)

	_, err = db.HealthCheck(context.Background())
	r.ErrorIs(err, database.ErrClosed)
}

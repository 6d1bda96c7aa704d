// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pebble adapts cockroachdb/pebble to the avalanchego
// [database.Database] interface for durable registry deployments.
package pebble

import (
	"context"
	"slices"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iter)(nil)
)

type Database struct {
	db        *pebble.DB
	metrics   *metrics
	closed    utils.Atomic[bool]
	writeOpts *pebble.WriteOptions
}

type Config struct {
	CacheSize                   int64  `json:"cacheSize"`
	BytesPerSync                int    `json:"bytesPerSync"`
	MemTableStopWritesThreshold int    `json:"memTableStopWritesThreshold"`
	MemTableSize                uint64 `json:"memTableSize"`
	MaxOpenFiles                int    `json:"maxOpenFiles"`
	MaxConcurrentCompactions    int    `json:"maxConcurrentCompactions"`
	Sync                        bool   `json:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   512 * 1024 * 1024,
		BytesPerSync:                4 * 1024 * 1024,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * 1024 * 1024,
		MaxOpenFiles:                4_096,
		MaxConcurrentCompactions:    1,
		Sync:                        false,
	}
}

func New(file string, cfg Config, registerer prometheus.Registerer) (database.Database, error) {
	metrics, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	db := &Database{metrics: metrics}
	if cfg.Sync {
		db.writeOpts = pebble.Sync
	} else {
		db.writeOpts = pebble.NoSync
	}

	opts := &pebble.Options{
		Cache:                       pebble.NewCache(cfg.CacheSize),
		BytesPerSync:                cfg.BytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                cfg.MemTableSize,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.MaxConcurrentCompactions },
		EventListener: &pebble.EventListener{
			CompactionBegin: db.onCompactionBegin,
			CompactionEnd:   db.onCompactionEnd,
			WriteStallBegin: db.onWriteStallBegin,
			WriteStallEnd:   db.onWriteStallEnd,
		},
	}
	// Reads of registry state are already random-access; sampling them for
	// read-triggered compactions only adds write amplification.
	opts.Experimental.ReadSamplingMultiplier = -1

	db.db, err = pebble.Open(file, opts)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (db *Database) Close() error {
	db.closed.Set(true)
	return updateError(db.db.Close())
}

func (db *Database) HealthCheck(_ context.Context) (interface{}, error) {
	if db.closed.Get() {
		return nil, database.ErrClosed
	}
	return nil, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	_, err := db.Get(key)
	if err == database.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (db *Database) Get(key []byte) ([]byte, error) {
	if db.closed.Get() {
		return nil, database.ErrClosed
	}
	start := time.Now()
	data, closer, err := db.db.Get(key)
	if err != nil {
		return nil, updateError(err)
	}
	db.metrics.getLatency.Observe(float64(time.Since(start)))

	// [data] is only valid until [closer] is closed
	ret := slices.Clone(data)
	return ret, updateError(closer.Close())
}

func (db *Database) Put(key []byte, value []byte) error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	return updateError(db.db.Set(key, value, db.writeOpts))
}

func (db *Database) Delete(key []byte) error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	return updateError(db.db.Delete(key, db.writeOpts))
}

func (db *Database) Compact(start []byte, end []byte) error {
	if db.closed.Get() {
		return database.ErrClosed
	}
	return updateError(db.db.Compact(start, end, true))
}

func updateError(err error) error {
	switch err {
	case pebble.ErrNotFound:
		return database.ErrNotFound
	case pebble.ErrClosed:
		return database.ErrClosed
	default:
		return err
	}
}

// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage is the persistent state layer backing the token
// registry: per-token records with a derived owner index, a
// multi-denomination balance ledger, and the fee/token-count scalars.
//
// All state lives in a single [database.Database] supplied by the caller.
// The registry assumes it executes inside one serialized transaction per
// invocation and performs no locking of its own; the only atomicity it
// provides is the batch pairing of each primary write with its index
// update.
package storage

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry stores token records parameterized over a caller-supplied
// extension payload T. T must round-trip through JSON.
type Registry[T any] struct {
	log     logging.Logger
	metrics *metrics
	db      database.Database
}

func New[T any](
	log logging.Logger,
	registerer prometheus.Registerer,
	db database.Database,
) (*Registry[T], error) {
	metrics, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return &Registry[T]{
		log:     log,
		metrics: metrics,
		db:      db,
	}, nil
}

// Copyright (C) 2024, Codedestate. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	tokenSaves     prometheus.Counter
	tokenRemoves   prometheus.Counter
	balanceUpdates prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		tokenSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "registry",
			Name:      "token_saves",
			Help:      "number of token records written",
		}),
		tokenRemoves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "registry",
			Name:      "token_removes",
			Help:      "number of token records deleted",
		}),
		balanceUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "registry",
			Name:      "balance_updates",
			Help:      "number of balance mutations",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.tokenSaves),
		registerer.Register(m.tokenRemoves),
		registerer.Register(m.balanceUpdates),
	)
	return m, errs.Err
}

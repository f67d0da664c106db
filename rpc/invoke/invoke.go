// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package invoke - run one RPC call as one ledger transaction
package invoke

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/rpc/metrics"
	"github.com/ledgerworks/supplychaind/rpc/ratelimit"
)

// Broadcaster - receives events of committed transactions
type Broadcaster interface {
	Broadcast(event ledger.Event)
}

// Invoker - shared by every connection
type Invoker struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Host        ledger.Host
	Broadcaster Broadcaster
	Metrics     *metrics.Metrics
}

const (
	rateLimit    = 200
	rateBurst    = 100
	rateMaxDelay = 5 * time.Second
)

// New - invoker with the default rate limit, broadcaster may be nil
func New(log *logger.L, host ledger.Host, broadcaster Broadcaster, m *metrics.Metrics) *Invoker {
	return &Invoker{
		Log:         log,
		Limiter:     ratelimit.New(rateLimit, rateBurst),
		Host:        host,
		Broadcaster: broadcaster,
		Metrics:     m,
	}
}

// Run - rate limit, transact, then release the committed events
func (i *Invoker) Run(method string, identity ledger.Identity, fn func(ledger.Context) error) error {
	if err := ratelimit.Limit(i.Limiter, rateMaxDelay); nil != err {
		i.observe(method, 0, err)
		return err
	}

	start := time.Now()
	events, err := i.Host.Transact(identity, fn)
	i.observe(method, time.Since(start), err)
	if nil != err {
		i.Log.Debugf("%s: error: %s", method, err)
		return err
	}

	if nil != i.Broadcaster {
		for _, event := range events {
			i.Broadcaster.Broadcast(event)
		}
	}
	return nil
}

func (i *Invoker) observe(method string, elapsed time.Duration, err error) {
	if nil != i.Metrics {
		i.Metrics.Observe(method, elapsed, err)
	}
}

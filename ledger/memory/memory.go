// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memory - a map backed ledger host
//
// every invocation runs under the lock with its own write-set, the
// write-set and any events are only applied when the invocation
// succeeds
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ledgerworks/supplychaind/ledger"
)

// Ledger - committed world state
type Ledger struct {
	sync.Mutex
	state map[string][]byte
	clock func() time.Time
	count uint64
}

// New - empty ledger using the wall clock for transaction timestamps
func New() *Ledger {
	return NewWithClock(time.Now)
}

// NewWithClock - empty ledger with a fixed time source
func NewWithClock(clock func() time.Time) *Ledger {
	return &Ledger{
		state: make(map[string][]byte),
		clock: clock,
	}
}

// Transact - run one atomic invocation
func (l *Ledger) Transact(identity ledger.Identity, fn func(ledger.Context) error) ([]ledger.Event, error) {
	l.Lock()
	defer l.Unlock()

	l.count += 1
	tx := &transaction{
		ledger:    l,
		txID:      fmt.Sprintf("memory-%d", l.count),
		timestamp: l.clock().UTC(),
		writes:    make(map[string][]byte),
	}
	ctx := &context{
		stub:     tx,
		identity: identity,
	}

	err := fn(ctx)
	tx.closed = true
	if nil != err {
		return nil, err
	}

	for k, v := range tx.writes {
		l.state[k] = v
	}
	return tx.events, nil
}

// Put - write committed state directly, bypassing any contract
func (l *Ledger) Put(key string, value []byte) {
	l.Lock()
	defer l.Unlock()
	l.state[key] = copyBytes(value)
}

// Get - read committed state directly
func (l *Ledger) Get(key string) ([]byte, bool) {
	l.Lock()
	defer l.Unlock()
	v, ok := l.state[key]
	return copyBytes(v), ok
}

// Keys - all committed keys in order
func (l *Ledger) Keys() []string {
	l.Lock()
	defer l.Unlock()
	return l.sortedKeys()
}

// caller must hold the lock
func (l *Ledger) sortedKeys() []string {
	keys := make([]string, 0, len(l.state))
	for k := range l.state {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type context struct {
	stub     ledger.Stub
	identity ledger.Identity
}

func (c *context) GetStub() ledger.Stub              { return c.stub }
func (c *context) GetClientIdentity() ledger.Identity { return c.identity }

func copyBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

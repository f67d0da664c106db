// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memory

import (
	"time"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/selector"
)

// the stub seen by one invocation
//
// reads see this invocation's own writes, range scans and rich
// queries only see committed state
type transaction struct {
	ledger    *Ledger
	txID      string
	timestamp time.Time
	writes    map[string][]byte
	events    []ledger.Event
	closed    bool
}

func (t *transaction) GetState(key string) ([]byte, error) {
	if t.closed {
		return nil, fault.TransactionIsClosed
	}
	if v, ok := t.writes[key]; ok {
		return copyBytes(v), nil
	}
	return copyBytes(t.ledger.state[key]), nil
}

func (t *transaction) PutState(key string, value []byte) error {
	if t.closed {
		return fault.TransactionIsClosed
	}
	if "" == key {
		return fault.MissingIdentifier
	}
	t.writes[key] = copyBytes(value)
	return nil
}

func (t *transaction) GetStateByRange(startKey string, endKey string) (ledger.Iterator, error) {
	if t.closed {
		return nil, fault.TransactionIsClosed
	}
	items := []*ledger.KV{}
	for _, k := range t.ledger.sortedKeys() {
		if k < startKey {
			continue
		}
		if "" != endKey && k >= endKey {
			break
		}
		items = append(items, &ledger.KV{Key: k, Value: copyBytes(t.ledger.state[k])})
	}
	return &iterator{items: items}, nil
}

func (t *transaction) GetQueryResult(query string) (ledger.Iterator, error) {
	if t.closed {
		return nil, fault.TransactionIsClosed
	}
	s, err := selector.Parse(query)
	if nil != err {
		return nil, err
	}
	items := []*ledger.KV{}
	for _, k := range t.ledger.sortedKeys() {
		v := t.ledger.state[k]
		if !s.Match(v) {
			continue
		}
		items = append(items, &ledger.KV{Key: k, Value: copyBytes(v)})
		if 0 != s.Limit() && len(items) >= s.Limit() {
			break
		}
	}
	return &iterator{items: items}, nil
}

func (t *transaction) SetEvent(name string, payload []byte) error {
	if t.closed {
		return fault.TransactionIsClosed
	}
	if "" == name {
		return fault.MissingParameters
	}
	t.events = append(t.events, ledger.Event{
		TxID:    t.txID,
		Name:    name,
		Payload: copyBytes(payload),
	})
	return nil
}

func (t *transaction) GetTxID() string {
	return t.txID
}

func (t *transaction) GetTxTimestamp() (time.Time, error) {
	return t.timestamp, nil
}

// snapshot iterator
type iterator struct {
	items  []*ledger.KV
	closed bool
}

func (i *iterator) HasNext() bool {
	return !i.closed && len(i.items) > 0
}

func (i *iterator) Next() (*ledger.KV, error) {
	if i.closed {
		return nil, fault.InvalidCursor
	}
	if 0 == len(i.items) {
		return nil, fault.InvalidCursor
	}
	kv := i.items[0]
	i.items = i.items[1:]
	return kv, nil
}

func (i *iterator) Close() error {
	i.closed = true
	i.items = nil
	return nil
}

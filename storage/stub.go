// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/selector"
)

type transaction struct {
	store     *Store
	txID      string
	timestamp time.Time
	events    []ledger.Event
	closed    bool
}

func (t *transaction) GetState(key string) ([]byte, error) {
	if t.closed {
		return nil, fault.TransactionIsClosed
	}
	value, err := t.store.access.Get(worldState.prefixKey(key))
	if nil != err || nil == value {
		return nil, err
	}
	return copyBytes(value), nil
}

func (t *transaction) PutState(key string, value []byte) error {
	if t.closed {
		return fault.TransactionIsClosed
	}
	if t.store.readOnly {
		return fault.DatabaseIsReadOnly
	}
	if "" == key {
		return fault.MissingIdentifier
	}
	t.store.access.Put(worldState.prefixKey(key), copyBytes(value))
	return nil
}

func (t *transaction) GetStateByRange(startKey string, endKey string) (ledger.Iterator, error) {
	if t.closed {
		return nil, fault.TransactionIsClosed
	}
	iter := t.store.access.Iterator(worldState.keyRange(startKey, endKey))
	return newIterator(iter, nil), nil
}

// rich queries are a filtered scan of the whole world state
func (t *transaction) GetQueryResult(query string) (ledger.Iterator, error) {
	if t.closed {
		return nil, fault.TransactionIsClosed
	}
	s, err := selector.Parse(query)
	if nil != err {
		return nil, err
	}
	iter := t.store.access.Iterator(worldState.keyRange("", ""))
	return newIterator(iter, s), nil
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

func copyBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

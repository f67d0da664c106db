// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"
)

//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks

// KV - a single entry returned from a range scan or rich query
type KV struct {
	Key   string
	Value []byte
}

// Iterator - lazy, finite, forward only sequence of entries
//
// the host may hold resources until Close is called
type Iterator interface {
	HasNext() bool
	Next() (*KV, error)
	Close() error
}

// Stub - key/value access to the world state for one invocation
//
// GetState returns nil, nil for a key that does not exist.
// GetStateByRange includes startKey, excludes endKey and an empty
// endKey is unbounded.  GetQueryResult takes a JSON selector.
type Stub interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	GetStateByRange(startKey string, endKey string) (Iterator, error)
	GetQueryResult(query string) (Iterator, error)
	SetEvent(name string, payload []byte) error
	GetTxID() string
	GetTxTimestamp() (time.Time, error)
}

// Identity - the authenticated caller
type Identity interface {
	GetMSPID() (string, error)
}

// Context - everything an invocation can see
type Context interface {
	GetStub() Stub
	GetClientIdentity() Identity
}

// Host - runs a function as one atomic invocation
//
// writes and events are only committed when fn returns nil, the
// committed events are returned so that they can be published
type Host interface {
	Transact(identity Identity, fn func(Context) error) ([]Event, error)
}

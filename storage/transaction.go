// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/google/uuid"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
)

// Transact - run one invocation, writing its batch only on success
//
// invocations never overlap so there are no write conflicts to detect
func (s *Store) Transact(identity ledger.Identity, fn func(ledger.Context) error) ([]ledger.Event, error) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil, fault.NotInitialised
	}

	s.access.Begin()

	tx := &transaction{
		store:     s,
		txID:      uuid.New().String(),
		timestamp: s.clock().UTC(),
	}
	ctx := &context{
		stub:     tx,
		identity: identity,
	}

	err := fn(ctx)
	tx.closed = true
	if nil != err {
		s.access.Begin()
		s.log.Debugf("tx: %s  discarded: %s", tx.txID, err)
		return nil, err
	}

	if !s.readOnly {
		err = s.access.Write()
		if nil != err {
			s.log.Errorf("tx: %s  write error: %s", tx.txID, err)
			return nil, err
		}
	}

	s.log.Tracef("tx: %s  committed  events: %d", tx.txID, len(tx.events))
	return tx.events, nil
}

type context struct {
	stub     ledger.Stub
	identity ledger.Identity
}

func (c *context) GetStub() ledger.Stub              { return c.stub }
func (c *context) GetClientIdentity() ledger.Identity { return c.identity }

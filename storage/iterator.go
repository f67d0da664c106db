// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_iterator "github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/selector"
)

// a LevelDB iterator with one item of lookahead
//
// the filter, if present, drops values it does not match
type iterator struct {
	iter     ldb_iterator.Iterator
	filter   *selector.Selector
	next     *ledger.KV
	count    int
	released bool
}

func newIterator(iter ldb_iterator.Iterator, filter *selector.Selector) *iterator {
	i := &iterator{
		iter:   iter,
		filter: filter,
	}
	i.advance()
	return i
}

func (i *iterator) advance() {
	i.next = nil
	if i.released {
		return
	}
	if nil != i.filter && 0 != i.filter.Limit() && i.count >= i.filter.Limit() {
		return
	}

	for i.iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		value := i.iter.Value()
		if nil != i.filter && !i.filter.Match(value) {
			continue
		}

		i.next = &ledger.KV{
			Key:   worldState.unprefixKey(i.iter.Key()),
			Value: copyBytes(value),
		}
		i.count += 1
		return
	}
}

func (i *iterator) HasNext() bool {
	return nil != i.next
}

func (i *iterator) Next() (*ledger.KV, error) {
	if nil == i.next {
		if i.released {
			return nil, fault.InvalidCursor
		}
		if err := i.iter.Error(); nil != err {
			return nil, err
		}
		return nil, fault.InvalidCursor
	}
	kv := i.next
	i.advance()
	return kv, nil
}

// Close - release the LevelDB iterator, reporting any deferred error
func (i *iterator) Close() error {
	if i.released {
		return nil
	}
	i.released = true
	i.next = nil
	err := i.iter.Error()
	i.iter.Release()
	return err
}

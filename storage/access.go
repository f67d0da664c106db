// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_iterator "github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// DataAccess - batched writes over one database
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Get([]byte) ([]byte, error)
	Write() error
	Iterator(*ldb_util.Range) ldb_iterator.Iterator
}

type dataAccess struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) DataAccess {
	return &dataAccess{
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Begin - drop anything pending
func (d *dataAccess) Begin() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *dataAccess) Put(key []byte, value []byte) {
	d.batch.Put(key, value)
	d.cache.Set(dbPut, string(key), value)
}

// Get - pending value first, then the database
//
// a missing key is not an error and returns nil
func (d *dataAccess) Get(key []byte) ([]byte, error) {
	if value, found := d.cache.Get(string(key)); found {
		return value, nil
	}
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	return value, nil
}

// Write - commit the batch and start afresh
func (d *dataAccess) Write() error {
	err := d.db.Write(d.batch, nil)
	d.Begin()
	return err
}

// Iterator - committed state only
func (d *dataAccess) Iterator(searchRange *ldb_util.Range) ldb_iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// a key range within the database
type pool struct {
	prefix byte
	limit  []byte
}

var worldState = newPool('S')

func newPool(prefix byte) pool {
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return pool{
		prefix: prefix,
		limit:  limit,
	}
}

// prepend the prefix onto the key
func (p pool) prefixKey(key string) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// strip the prefix, the result is a copy
func (p pool) unprefixKey(key []byte) string {
	return string(key[1:])
}

// start inclusive, end exclusive, empty strings mean unbounded
func (p pool) keyRange(start string, end string) *ldb_util.Range {
	r := &ldb_util.Range{
		Start: p.prefixKey(start),
		Limit: p.limit,
	}
	if "" != end {
		r.Limit = p.prefixKey(end)
	}
	return r
}

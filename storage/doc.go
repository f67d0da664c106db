// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the on-disk world state of a standalone node
//
// a LevelDB database split into pools, each pool is defined by a
// single prefix byte in front of every key
//
// Notes:
// 1. ++       = concatenation of byte data
// 2. key      = ledger key as UTF-8 bytes
// 3. version  = big endian uint32 (4 bytes)
//
// World state:
//
//   S ++ key                   - record or policy
//                                data: JSON encoded entity
//
// Database:
//
//   0x00 ++ "VERSION"          - database version
//                                data: version
//
// invocations are serialised: a single write batch together with a
// cache of the pending writes gives each invocation its own view,
// range scans and rich queries only see committed state
package storage

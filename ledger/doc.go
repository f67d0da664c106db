// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the world state port used by the contract
//
// The hosting platform supplies a fresh Context for every invocation.
// Nothing here holds state between invocations: all reads and writes
// go through the Stub and any iterator obtained from it must be closed
// before the invocation returns.
//
// Implementations:
//
//   ledger/memory - map backed host for tests and demonstrations
//   storage       - LevelDB backed host for the standalone node
//   chaincode     - adapter onto a Hyperledger Fabric peer
package ledger

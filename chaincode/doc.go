// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincode - run the contracts on Hyperledger Fabric
//
// the Fabric transaction context is adapted to the ledger port and
// each transaction function delegates to the contract package. Fabric
// itself supplies ordering, endorsement and MVCC conflict detection.
//
// contracts:
//
//   SupplyChainContract  - default contract, authenticated operations
//   LoaderContract       - "loader", unauthenticated bulk ingestion
package chaincode

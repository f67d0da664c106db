// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - supply chain record and policy state transitions
//
// every exported method is one complete invocation: it reads the
// caller once from the context, checks authorisation and reads or
// writes through the ledger stub. nothing is kept between calls, the
// host commits or discards the invocation as a whole.
//
// keys:
//
//   <id>         - record
//   POLICY_<id>  - access policy
//
// SupplyChain is the authenticated surface, Loader is the separate
// unauthenticated bulk ingestion path and is only exposed by hosts
// that enable it explicitly.
package contract

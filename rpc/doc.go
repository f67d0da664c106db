// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring supply chain ledger services
//
// standard golang RPC services can be used on the client side to
// access these services, the client's TLS certificate selects the
// organisation that every call on the connection acts as
package rpc

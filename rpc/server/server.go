// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/contract"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/rpc/invoke"
	"github.com/ledgerworks/supplychaind/rpc/loader"
	"github.com/ledgerworks/supplychaind/rpc/supplychain"
)

// Services - everything shared between connections
type Services struct {
	Log         *logger.L
	Invoker     *invoke.Invoker
	SupplyChain *contract.SupplyChain
	Loader      *contract.Loader // nil unless bulk loading is enabled
}

// Create - a server whose services act as the given organisation
func (s *Services) Create(identity ledger.Identity) *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(supplychain.New(s.Log, s.Invoker, s.SupplyChain, identity))
	if nil != s.Loader {
		_ = server.Register(loader.New(s.Log, s.Invoker, s.Loader, identity))
	}

	return server
}

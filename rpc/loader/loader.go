// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/contract"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/rpc/invoke"
)

// Loader - type for the RPC, only registered when enabled
type Loader struct {
	Log      *logger.L
	Invoker  *invoke.Invoker
	Contract *contract.Loader
	Identity ledger.Identity
}

// SimpleArguments - arguments for CreateSupplyChainDataSimple
type SimpleArguments struct {
	ID      string `json:"id"`
	Payload string `json:"payload"`
}

// SimpleReply - empty result
type SimpleReply struct{}

// New - service for one connection
func New(log *logger.L, invoker *invoke.Invoker, c *contract.Loader, identity ledger.Identity) *Loader {
	return &Loader{
		Log:      log,
		Invoker:  invoker,
		Contract: c,
		Identity: identity,
	}
}

// CreateSupplyChainDataSimple - store a raw JSON payload as a demo record
func (l *Loader) CreateSupplyChainDataSimple(arguments *SimpleArguments, reply *SimpleReply) error {
	l.Log.Infof("Loader.CreateSupplyChainDataSimple: id: %q", arguments.ID)
	return l.Invoker.Run("CreateSupplyChainDataSimple", l.Identity, func(ctx ledger.Context) error {
		return l.Contract.CreateSupplyChainDataSimple(ctx, arguments.ID, arguments.Payload)
	})
}

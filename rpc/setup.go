// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/authorisation"
	"github.com/ledgerworks/supplychaind/contract"
	"github.com/ledgerworks/supplychaind/counter"
	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/rpc/certificate"
	"github.com/ledgerworks/supplychaind/rpc/invoke"
	"github.com/ledgerworks/supplychaind/rpc/listeners"
	"github.com/ledgerworks/supplychaind/rpc/metrics"
	"github.com/ledgerworks/supplychaind/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener
	count    counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC listeners on top of a ledger host
func Initialise(configuration *listeners.RPCConfiguration, host ledger.Host, broadcaster invoke.Broadcaster, m *metrics.Metrics) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey, configuration.TrustedClients)
	if nil != err {
		return err
	}

	guard, err := authorisation.New(logger.New("authorisation"))
	if nil != err {
		return err
	}

	services := &server.Services{
		Log:         log,
		Invoker:     invoke.New(logger.New("invoke"), host, broadcaster, m),
		SupplyChain: contract.New(logger.New("contract"), guard),
	}
	if configuration.EnableLoader {
		log.Warn("loader service enabled: records are created without authorisation")
		services.Loader = contract.NewLoader(logger.New("loader"))
	}

	var observer listeners.ConnectionObserver
	if nil != m {
		observer = m
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&globalData.count,
		services.Create,
		observer,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		_ = rpcListener.Close()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	err := globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return err
}

// ConnectionCount - number of open client connections
func ConnectionCount() uint64 {
	return globalData.count.Uint64()
}

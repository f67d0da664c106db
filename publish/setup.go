// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed ledger events on a ZeroMQ PUB
// socket as two frames: event name then JSON payload
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/background"
	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/messagebus"
	"github.com/ledgerworks/supplychaind/zmqutil"
)

// Configuration - a block of configuration data
// this is read from the Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting events

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start publishing events read from the queue
func Initialise(configuration *Configuration, queue *messagebus.Queue) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: events are not published")
		globalData.initialised = true
		return nil
	}

	var privateKey, publicKey []byte
	if "" != configuration.PrivateKey {
		var err error
		privateKey, err = zmqutil.ReadPrivateKey(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key error: %s", err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKey(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key error: %s", err)
			return err
		}
		globalData.log.Tracef("public key: %x", publicKey)
	}

	if err := globalData.brdc.initialise(globalData.log, privateKey, publicKey, configuration.Broadcast, queue); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	if nil != globalData.background {
		globalData.background.Stop()
		globalData.background = nil
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/ledgerworks/supplychaind/chaincode"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// peers capture the console, the log file is only scratch
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	level := os.Getenv("CHAINCODE_LOG_LEVEL")
	if "" == level {
		level = "info"
	}

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "supplychain-chaincode.log",
		Size:      1048576,
		Count:     5,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("chaincode")
	log.Infof("version: %s", version)

	sc, loader, err := chaincode.New(logger.New("contract"))
	if nil != err {
		log.Criticalf("contract error: %s", err)
		exitwithstatus.Message("contract error: %s", err)
	}

	cc, err := contractapi.NewChaincode(sc, loader)
	if nil != err {
		log.Criticalf("chaincode error: %s", err)
		exitwithstatus.Message("chaincode error: %s", err)
	}
	cc.Info.Title = "supplychain"
	cc.Info.Version = version

	err = cc.Start()
	if nil != err {
		log.Criticalf("chaincode start error: %s", err)
		exitwithstatus.Message("chaincode start error: %s", err)
	}
}

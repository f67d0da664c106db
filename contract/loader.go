// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/hex"
	"encoding/json"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/record"
)

// fixed ownership of every loaded record
const (
	LoaderOrganization = "Org1MSP"
	LoaderDataType     = "demo"
)

// LoaderAccessControl - readers of every loaded record
var LoaderAccessControl = []string{"Org1MSP", "Org2MSP"}

// Loader - unauthenticated bulk ingestion
//
// the caller's identity is never consulted, so this must not be
// reachable from a production write path
type Loader struct {
	log *logger.L
}

// NewLoader - create the ingestion contract
func NewLoader(log *logger.L) *Loader {
	return &Loader{
		log: log,
	}
}

// CreateSupplyChainDataSimple - store a raw JSON payload as a demo
// record, its SHA3-256 digest becomes the data hash
func (l *Loader) CreateSupplyChainDataSimple(ctx ledger.Context, id string, payload string) error {
	err := record.CheckRecordID(id)
	if nil != err {
		return err
	}

	if !json.Valid([]byte(payload)) {
		return fault.MalformedPayload
	}

	stub := ctx.GetStub()
	exists, err := recordExists(stub, id)
	if nil != err {
		return err
	}
	if exists {
		return fault.RecordAlreadyExists
	}

	timestamp, err := txTime(stub)
	if nil != err {
		return err
	}

	digest := sha3.Sum256([]byte(payload))
	access := make([]string, len(LoaderAccessControl))
	copy(access, LoaderAccessControl)

	r := &record.Record{
		ID:             id,
		OrganizationID: LoaderOrganization,
		Timestamp:      timestamp,
		EncryptedData:  payload,
		DataHash:       hex.EncodeToString(digest[:]),
		DataType:       LoaderDataType,
		AccessControl:  access,
	}
	err = putRecord(stub, r)
	if nil != err {
		return err
	}

	l.log.Warnf("loaded unauthenticated record: %q  tx: %s", id, stub.GetTxID())
	return nil
}

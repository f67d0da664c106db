// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"
	"math"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/authorisation"
	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/record"
)

// SupplyChain - the authenticated contract
type SupplyChain struct {
	log   *logger.L
	guard *authorisation.Guard
}

// New - create the contract
func New(log *logger.L, guard *authorisation.Guard) *SupplyChain {
	return &SupplyChain{
		log:   log,
		guard: guard,
	}
}

// InitLedger - nothing to seed
func (s *SupplyChain) InitLedger(ctx ledger.Context) error {
	s.log.Info("init ledger")
	return nil
}

// CreateSupplyChainData - store a new record owned by the caller
func (s *SupplyChain) CreateSupplyChainData(ctx ledger.Context, id string, organizationID string, encryptedData string, dataHash string, dataType string, accessControl []string) error {
	err := record.CheckRecordID(id)
	if nil != err {
		return err
	}

	caller, err := s.guard.Caller(ctx)
	if nil != err {
		return err
	}

	stub := ctx.GetStub()
	exists, err := recordExists(stub, id)
	if nil != err {
		return err
	}
	if exists {
		return fault.RecordAlreadyExists
	}

	err = s.guard.CheckCreate(caller, organizationID)
	if nil != err {
		return err
	}

	timestamp, err := txTime(stub)
	if nil != err {
		return err
	}

	if nil == accessControl {
		accessControl = []string{}
	}
	r := &record.Record{
		ID:              id,
		OrganizationID:  organizationID,
		Timestamp:       timestamp,
		EncryptedData:   encryptedData,
		DataHash:        dataHash,
		DataType:        dataType,
		AccessControl:   accessControl,
		AnomalyDetected: false,
		AnomalyScore:    0.0,
		Explanation:     "",
	}
	err = putRecord(stub, r)
	if nil != err {
		return err
	}

	s.log.Infof("create record: %q  organisation: %q  type: %q  tx: %s", id, organizationID, dataType, stub.GetTxID())
	return nil
}

// ReadSupplyChainData - fetch a record the caller may see
func (s *SupplyChain) ReadSupplyChainData(ctx ledger.Context, id string) (*record.Record, error) {
	caller, err := s.guard.Caller(ctx)
	if nil != err {
		return nil, err
	}
	return s.readRecord(ctx.GetStub(), caller, id)
}

// SupplyChainDataExists - existence probe without authorisation
func (s *SupplyChain) SupplyChainDataExists(ctx ledger.Context, id string) (bool, error) {
	return recordExists(ctx.GetStub(), id)
}

// UpdateAnomalyStatus - overwrite the anomaly annotation of a record
//
// any organisation able to read the record may annotate it, the score
// may be any finite value since JSON has no NaN or infinity
func (s *SupplyChain) UpdateAnomalyStatus(ctx ledger.Context, id string, anomalyDetected bool, anomalyScore float64, explanation string) error {
	if math.IsNaN(anomalyScore) || math.IsInf(anomalyScore, 0) {
		return fault.InvalidAnomalyScore
	}

	caller, err := s.guard.Caller(ctx)
	if nil != err {
		return err
	}

	stub := ctx.GetStub()
	r, err := s.readRecord(stub, caller, id)
	if nil != err {
		return err
	}

	r.AnomalyDetected = anomalyDetected
	r.AnomalyScore = anomalyScore
	r.Explanation = explanation

	err = putRecord(stub, r)
	if nil != err {
		return err
	}

	s.log.Infof("annotate record: %q  caller: %q  detected: %t  score: %g", id, caller, anomalyDetected, anomalyScore)

	if !anomalyDetected {
		return nil
	}
	return emitAnomaly(stub, r)
}

func (s *SupplyChain) readRecord(stub ledger.Stub, caller string, id string) (*record.Record, error) {
	if nil != record.CheckRecordID(id) {
		return nil, fault.RecordNotFound
	}

	data, err := stub.GetState(record.RecordKey(id))
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.RecordNotFound
	}

	r, err := record.UnpackRecord(data)
	if nil != err {
		return nil, err
	}

	err = s.guard.CheckRead(caller, r)
	if nil != err {
		return nil, err
	}
	return r, nil
}

// ids in the policy namespace never name a record
func recordExists(stub ledger.Stub, id string) (bool, error) {
	if nil != record.CheckRecordID(id) {
		return false, nil
	}
	data, err := stub.GetState(record.RecordKey(id))
	if nil != err {
		return false, err
	}
	return nil != data, nil
}

func putRecord(stub ledger.Stub, r *record.Record) error {
	data, err := r.Pack()
	if nil != err {
		return err
	}
	return stub.PutState(record.RecordKey(r.ID), data)
}

// creation times come from the transaction so every endorser agrees
func txTime(stub ledger.Stub) (time.Time, error) {
	t, err := stub.GetTxTimestamp()
	if nil != err {
		return time.Time{}, fmt.Errorf("%w: transaction timestamp: %s", fault.MissingParameters, err)
	}
	return t.UTC(), nil
}

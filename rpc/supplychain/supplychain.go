// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package supplychain

import (
	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/contract"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/record"
	"github.com/ledgerworks/supplychaind/rpc/invoke"
)

// SupplyChain
// -----------

// SupplyChain - type for the RPC, bound to one connection's organisation
type SupplyChain struct {
	Log      *logger.L
	Invoker  *invoke.Invoker
	Contract *contract.SupplyChain
	Identity ledger.Identity
}

// EmptyArguments - for calls that take no arguments
type EmptyArguments struct{}

// EmptyReply - for calls that only succeed or fail
type EmptyReply struct{}

// IDArguments - a single record or policy id
type IDArguments struct {
	ID string `json:"id"`
}

// CreateArguments - arguments for CreateSupplyChainData
type CreateArguments struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organizationId"`
	EncryptedData  string   `json:"encryptedData"`
	DataHash       string   `json:"dataHash"`
	DataType       string   `json:"dataType"`
	AccessControl  []string `json:"accessControl"`
}

// AnomalyArguments - arguments for UpdateAnomalyStatus
type AnomalyArguments struct {
	ID              string  `json:"id"`
	AnomalyDetected bool    `json:"anomalyDetected"`
	AnomalyScore    float64 `json:"anomalyScore"`
	Explanation     string  `json:"explanation"`
}

// OrganizationArguments - arguments for QuerySupplyChainDataByOrg
type OrganizationArguments struct {
	OrganizationID string `json:"organizationId"`
}

// PolicyArguments - arguments for CreateAccessPolicy
type PolicyArguments struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organizationId"`
	DataTypes      []string `json:"dataTypes"`
	AllowedOrgs    []string `json:"allowedOrgs"`
}

// RecordReply - a single record
type RecordReply struct {
	Record *record.Record `json:"record"`
}

// RecordsReply - a list of records, never null
type RecordsReply struct {
	Records []*record.Record `json:"records"`
}

// PolicyReply - a single policy
type PolicyReply struct {
	Policy *record.Policy `json:"policy"`
}

// ExistsReply - result of an existence probe
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// New - service for one connection
func New(log *logger.L, invoker *invoke.Invoker, c *contract.SupplyChain, identity ledger.Identity) *SupplyChain {
	return &SupplyChain{
		Log:      log,
		Invoker:  invoker,
		Contract: c,
		Identity: identity,
	}
}

func (s *SupplyChain) run(method string, fn func(ledger.Context) error) error {
	s.Log.Infof("SupplyChain.%s", method)
	return s.Invoker.Run(method, s.Identity, fn)
}

// InitLedger - no-op
func (s *SupplyChain) InitLedger(arguments *EmptyArguments, reply *EmptyReply) error {
	return s.run("InitLedger", s.Contract.InitLedger)
}

// CreateSupplyChainData - create a record owned by the caller
func (s *SupplyChain) CreateSupplyChainData(arguments *CreateArguments, reply *EmptyReply) error {
	return s.run("CreateSupplyChainData", func(ctx ledger.Context) error {
		return s.Contract.CreateSupplyChainData(ctx, arguments.ID, arguments.OrganizationID, arguments.EncryptedData, arguments.DataHash, arguments.DataType, arguments.AccessControl)
	})
}

// ReadSupplyChainData - read one record
func (s *SupplyChain) ReadSupplyChainData(arguments *IDArguments, reply *RecordReply) error {
	return s.run("ReadSupplyChainData", func(ctx ledger.Context) (err error) {
		reply.Record, err = s.Contract.ReadSupplyChainData(ctx, arguments.ID)
		return
	})
}

// SupplyChainDataExists - existence probe
func (s *SupplyChain) SupplyChainDataExists(arguments *IDArguments, reply *ExistsReply) error {
	return s.run("SupplyChainDataExists", func(ctx ledger.Context) (err error) {
		reply.Exists, err = s.Contract.SupplyChainDataExists(ctx, arguments.ID)
		return
	})
}

// UpdateAnomalyStatus - annotate a record
func (s *SupplyChain) UpdateAnomalyStatus(arguments *AnomalyArguments, reply *EmptyReply) error {
	return s.run("UpdateAnomalyStatus", func(ctx ledger.Context) error {
		return s.Contract.UpdateAnomalyStatus(ctx, arguments.ID, arguments.AnomalyDetected, arguments.AnomalyScore, arguments.Explanation)
	})
}

// QuerySupplyChainDataByOrg - records of the caller's organisation
func (s *SupplyChain) QuerySupplyChainDataByOrg(arguments *OrganizationArguments, reply *RecordsReply) error {
	return s.run("QuerySupplyChainDataByOrg", func(ctx ledger.Context) (err error) {
		reply.Records, err = s.Contract.QuerySupplyChainDataByOrg(ctx, arguments.OrganizationID)
		return
	})
}

// QueryAnomalies - visible flagged records
func (s *SupplyChain) QueryAnomalies(arguments *EmptyArguments, reply *RecordsReply) error {
	return s.run("QueryAnomalies", func(ctx ledger.Context) (err error) {
		reply.Records, err = s.Contract.QueryAnomalies(ctx)
		return
	})
}

// GetAllSupplyChainData - administrative scan
func (s *SupplyChain) GetAllSupplyChainData(arguments *EmptyArguments, reply *RecordsReply) error {
	return s.run("GetAllSupplyChainData", func(ctx ledger.Context) (err error) {
		reply.Records, err = s.Contract.GetAllSupplyChainData(ctx)
		return
	})
}

// CreateAccessPolicy - create a policy owned by the caller
func (s *SupplyChain) CreateAccessPolicy(arguments *PolicyArguments, reply *EmptyReply) error {
	return s.run("CreateAccessPolicy", func(ctx ledger.Context) error {
		return s.Contract.CreateAccessPolicy(ctx, arguments.ID, arguments.OrganizationID, arguments.DataTypes, arguments.AllowedOrgs)
	})
}

// ReadAccessPolicy - read one policy
func (s *SupplyChain) ReadAccessPolicy(arguments *IDArguments, reply *PolicyReply) error {
	return s.run("ReadAccessPolicy", func(ctx ledger.Context) (err error) {
		reply.Policy, err = s.Contract.ReadAccessPolicy(ctx, arguments.ID)
		return
	})
}

// AccessPolicyExists - existence probe
func (s *SupplyChain) AccessPolicyExists(arguments *IDArguments, reply *ExistsReply) error {
	return s.run("AccessPolicyExists", func(ctx ledger.Context) (err error) {
		reply.Exists, err = s.Contract.AccessPolicyExists(ctx, arguments.ID)
		return
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/record"
)

// CreateAccessPolicy - store a new sharing policy owned by the caller
//
// policies are create-once, there is no update or delete
func (s *SupplyChain) CreateAccessPolicy(ctx ledger.Context, id string, organizationID string, dataTypes []string, allowedOrgs []string) error {
	err := record.CheckPolicyID(id)
	if nil != err {
		return err
	}

	caller, err := s.guard.Caller(ctx)
	if nil != err {
		return err
	}

	stub := ctx.GetStub()
	exists, err := policyExists(stub, id)
	if nil != err {
		return err
	}
	if exists {
		return fault.PolicyAlreadyExists
	}

	err = s.guard.CheckCreate(caller, organizationID)
	if nil != err {
		return err
	}

	timestamp, err := txTime(stub)
	if nil != err {
		return err
	}

	p := &record.Policy{
		ID:             id,
		OrganizationID: organizationID,
		DataTypes:      dataTypes,
		AllowedOrgs:    allowedOrgs,
		CreatedAt:      timestamp,
		UpdatedAt:      timestamp,
	}
	data, err := p.Pack()
	if nil != err {
		return err
	}
	err = stub.PutState(record.PolicyKey(id), data)
	if nil != err {
		return err
	}

	s.log.Infof("create policy: %q  organisation: %q  tx: %s", id, organizationID, stub.GetTxID())
	return nil
}

// ReadAccessPolicy - fetch a policy the caller may see
func (s *SupplyChain) ReadAccessPolicy(ctx ledger.Context, id string) (*record.Policy, error) {
	caller, err := s.guard.Caller(ctx)
	if nil != err {
		return nil, err
	}
	if nil != record.CheckPolicyID(id) {
		return nil, fault.PolicyNotFound
	}

	data, err := ctx.GetStub().GetState(record.PolicyKey(id))
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, fault.PolicyNotFound
	}

	p, err := record.UnpackPolicy(data)
	if nil != err {
		return nil, err
	}

	err = s.guard.CheckRead(caller, p)
	if nil != err {
		return nil, err
	}
	return p, nil
}

// AccessPolicyExists - existence probe without authorisation
func (s *SupplyChain) AccessPolicyExists(ctx ledger.Context, id string) (bool, error) {
	return policyExists(ctx.GetStub(), id)
}

func policyExists(stub ledger.Stub, id string) (bool, error) {
	if nil != record.CheckPolicyID(id) {
		return false, nil
	}
	data, err := stub.GetState(record.PolicyKey(id))
	if nil != err {
		return false, err
	}
	return nil != data, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/record"
)

func (e *testEnv) createPolicy(org string, id string, owner string, allowed []string) error {
	_, err := e.as(org, func(ctx ledger.Context) error {
		return e.sc.CreateAccessPolicy(ctx, id, owner, []string{"shipment", "sensor"}, allowed)
	})
	return err
}

func (e *testEnv) readPolicy(org string, id string) (*record.Policy, error) {
	var p *record.Policy
	_, err := e.as(org, func(ctx ledger.Context) (err error) {
		p, err = e.sc.ReadAccessPolicy(ctx, id)
		return
	})
	return p, err
}

func (e *testEnv) policyExists(id string) bool {
	var found bool
	_, err := e.as(org3, func(ctx ledger.Context) (err error) {
		found, err = e.sc.AccessPolicyExists(ctx, id)
		return
	})
	require.Nil(e.t, err, "exists error")
	return found
}

func TestCreateThenReadPolicy(t *testing.T) {
	e := newTestEnv(t)
	require.Nil(t, e.createPolicy(org1, "p1", org1, []string{org2}), "create error")

	p, err := e.readPolicy(org1, "p1")
	require.Nil(t, err, "read error")

	expected := &record.Policy{
		ID:             "p1",
		OrganizationID: org1,
		DataTypes:      []string{"shipment", "sensor"},
		AllowedOrgs:    []string{org2},
		CreatedAt:      fixedTime,
		UpdatedAt:      fixedTime,
	}
	assert.Equal(t, expected, p, "policy")

	_, ok := e.ledger.Get(record.PolicyPrefix + "p1")
	assert.True(t, ok, "namespaced key")
	_, ok = e.ledger.Get("p1")
	assert.False(t, ok, "bare key unused")

	assert.True(t, e.policyExists("p1"), "exists")
	assert.False(t, e.exists("p1"), "not a record")
}

func TestPolicyAndRecordShareId(t *testing.T) {
	e := newTestEnv(t)
	require.Nil(t, e.create(org1, "x", org1, nil), "create record error")
	require.Nil(t, e.createPolicy(org1, "x", org1, nil), "create policy error")

	r, err := e.read(org1, "x")
	require.Nil(t, err, "read record error")
	assert.Equal(t, "shipment", r.DataType, "record intact")

	p, err := e.readPolicy(org1, "x")
	require.Nil(t, err, "read policy error")
	assert.Equal(t, []string{}, p.AllowedOrgs, "empty allow-set")
}

func TestCreatePolicyDuplicate(t *testing.T) {
	e := newTestEnv(t)
	require.Nil(t, e.createPolicy(org1, "p1", org1, nil), "create error")
	before, _ := e.ledger.Get(record.PolicyKey("p1"))

	err := e.createPolicy(org1, "p1", org1, []string{org3})
	assert.Equal(t, fault.PolicyAlreadyExists, err, "duplicate")
	assert.True(t, fault.IsErrExists(err), "exists class")

	after, _ := e.ledger.Get(record.PolicyKey("p1"))
	assert.Equal(t, before, after, "prior policy unchanged")
}

func TestCreatePolicyForOtherOrganisation(t *testing.T) {
	e := newTestEnv(t)
	err := e.createPolicy(org2, "p1", org1, nil)
	assert.Equal(t, fault.PermissionDenied, err, "spoofed owner")
	assert.False(t, e.policyExists("p1"), "nothing written")
}

func TestCreatePolicyMissingIdentifier(t *testing.T) {
	e := newTestEnv(t)
	err := e.createPolicy(org1, "", org1, nil)
	assert.Equal(t, fault.MissingIdentifier, err, "empty id")
}

func TestReadPolicyAccess(t *testing.T) {
	e := newTestEnv(t)
	require.Nil(t, e.createPolicy(org1, "p1", org1, []string{org2}), "create error")

	_, err := e.readPolicy(org2, "p1")
	assert.Nil(t, err, "allowed organisation")

	_, err = e.readPolicy(org3, "p1")
	assert.Equal(t, fault.Unauthorised, err, "other organisation")

	_, err = e.readPolicy(org1, "missing")
	assert.Equal(t, fault.PolicyNotFound, err, "missing")
}

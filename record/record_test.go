// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/record"
)

func TestRecordWireFormat(t *testing.T) {
	r := record.Record{
		ID:             "SC-1",
		OrganizationID: "Org1MSP",
		Timestamp:      time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC),
		EncryptedData:  "ciphertext",
		DataHash:       "digest",
		DataType:       "shipment",
	}

	packed, err := r.Pack()
	assert.Nil(t, err, "pack error")

	fields := map[string]interface{}{}
	err = json.Unmarshal(packed, &fields)
	assert.Nil(t, err, "wire data is not JSON")

	expected := map[string]interface{}{
		"id":              "SC-1",
		"organizationId":  "Org1MSP",
		"timestamp":       "2020-03-04T05:06:07Z",
		"encryptedData":   "ciphertext",
		"dataHash":        "digest",
		"dataType":        "shipment",
		"accessControl":   []interface{}{},
		"anomalyDetected": false,
		"anomalyScore":    0.0,
		"explanation":     "",
	}
	assert.Equal(t, expected, fields, "wrong wire fields")

	unpacked, err := record.UnpackRecord(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, r, *unpacked, "wrong unpacked record")
}

func TestPolicyWireFormat(t *testing.T) {
	p := record.Policy{
		ID:             "P-1",
		OrganizationID: "Org1MSP",
		DataTypes:      []string{"shipment"},
		CreatedAt:      time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC),
		UpdatedAt:      time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC),
	}

	packed, err := p.Pack()
	assert.Nil(t, err, "pack error")

	fields := map[string]interface{}{}
	_ = json.Unmarshal(packed, &fields)
	assert.Equal(t, []interface{}{}, fields["allowedOrgs"], "nil set must encode as empty array")
	assert.Equal(t, "2020-03-04T05:06:07Z", fields["createdAt"], "wrong created at")

	unpacked, err := record.UnpackPolicy(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, p, *unpacked, "wrong unpacked policy")
}

func TestUnpackCorrupt(t *testing.T) {
	_, err := record.UnpackRecord([]byte("{not json"))
	assert.True(t, fault.IsErrProcess(err), "wrong error class: %v", err)

	_, err = record.UnpackPolicy([]byte("[]"))
	assert.True(t, fault.IsErrProcess(err), "wrong error class: %v", err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "SC-1", record.RecordKey("SC-1"), "wrong record key")
	assert.Equal(t, "POLICY_P-1", record.PolicyKey("P-1"), "wrong policy key")
	assert.True(t, record.IsPolicyKey(record.PolicyKey("x")), "policy key not detected")
	assert.False(t, record.IsPolicyKey("SC-1"), "record key detected as policy")

	assert.Nil(t, record.CheckRecordID("SC-1"), "valid id rejected")
	assert.Equal(t, fault.MissingIdentifier, record.CheckRecordID(""), "empty id accepted")
	assert.Equal(t, fault.ReservedIdentifier, record.CheckRecordID("POLICY_1"), "reserved id accepted")
	assert.Nil(t, record.CheckPolicyID("POLICY_1"), "policy id rejected")
	assert.Equal(t, fault.MissingIdentifier, record.CheckPolicyID(""), "empty policy id accepted")
}

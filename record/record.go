// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ledgerworks/supplychaind/fault"
)

// Record - one supply chain fact
//
// only the anomaly fields change after creation
type Record struct {
	ID              string    `json:"id"`
	OrganizationID  string    `json:"organizationId"`
	Timestamp       time.Time `json:"timestamp"`
	EncryptedData   string    `json:"encryptedData"`
	DataHash        string    `json:"dataHash"`
	DataType        string    `json:"dataType"`
	AccessControl   []string  `json:"accessControl"`
	AnomalyDetected bool      `json:"anomalyDetected"`
	AnomalyScore    float64   `json:"anomalyScore"`
	Explanation     string    `json:"explanation"`
}

// Owner - for authorisation
func (r *Record) Owner() string { return r.OrganizationID }

// Readers - organisations other than the owner allowed to read
func (r *Record) Readers() []string { return r.AccessControl }

// Pack - encode for storage
func (r *Record) Pack() ([]byte, error) {
	if nil == r.AccessControl {
		r.AccessControl = []string{}
	}
	b, err := json.Marshal(r)
	if nil != err {
		return nil, fmt.Errorf("%w: record: %s", fault.SerialisationFailed, err)
	}
	return b, nil
}

// UnpackRecord - decode from storage
func UnpackRecord(data []byte) (*Record, error) {
	r := &Record{}
	err := json.Unmarshal(data, r)
	if nil != err {
		return nil, fmt.Errorf("%w: record: %s", fault.SerialisationFailed, err)
	}
	if nil == r.AccessControl {
		r.AccessControl = []string{}
	}
	return r, nil
}

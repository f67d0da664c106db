// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"time"

	"github.com/ledgerworks/supplychaind/record"
)

// Record - transaction result, same JSON as the stored record
//
// contract metadata is generated from these types so the timestamp is
// carried as RFC 3339 text
type Record struct {
	ID              string   `json:"id"`
	OrganizationID  string   `json:"organizationId"`
	Timestamp       string   `json:"timestamp"`
	EncryptedData   string   `json:"encryptedData"`
	DataHash        string   `json:"dataHash"`
	DataType        string   `json:"dataType"`
	AccessControl   []string `json:"accessControl"`
	AnomalyDetected bool     `json:"anomalyDetected"`
	AnomalyScore    float64  `json:"anomalyScore"`
	Explanation     string   `json:"explanation"`
}

// Policy - transaction result, same JSON as the stored policy
type Policy struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organizationId"`
	DataTypes      []string `json:"dataTypes"`
	AllowedOrgs    []string `json:"allowedOrgs"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

func toRecord(r *record.Record) *Record {
	return &Record{
		ID:              r.ID,
		OrganizationID:  r.OrganizationID,
		Timestamp:       r.Timestamp.Format(time.RFC3339Nano),
		EncryptedData:   r.EncryptedData,
		DataHash:        r.DataHash,
		DataType:        r.DataType,
		AccessControl:   r.AccessControl,
		AnomalyDetected: r.AnomalyDetected,
		AnomalyScore:    r.AnomalyScore,
		Explanation:     r.Explanation,
	}
}

func toRecords(records []*record.Record) []*Record {
	result := make([]*Record, 0, len(records))
	for _, r := range records {
		result = append(result, toRecord(r))
	}
	return result
}

func toPolicy(p *record.Policy) *Policy {
	return &Policy{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		DataTypes:      p.DataTypes,
		AllowedOrgs:    p.AllowedOrgs,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

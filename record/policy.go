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

// Policy - a sharing rule, created once and never changed
type Policy struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	DataTypes      []string  `json:"dataTypes"`
	AllowedOrgs    []string  `json:"allowedOrgs"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Owner - for authorisation
func (p *Policy) Owner() string { return p.OrganizationID }

// Readers - organisations other than the owner allowed to read
func (p *Policy) Readers() []string { return p.AllowedOrgs }

// Pack - encode for storage
func (p *Policy) Pack() ([]byte, error) {
	if nil == p.DataTypes {
		p.DataTypes = []string{}
	}
	if nil == p.AllowedOrgs {
		p.AllowedOrgs = []string{}
	}
	b, err := json.Marshal(p)
	if nil != err {
		return nil, fmt.Errorf("%w: policy: %s", fault.SerialisationFailed, err)
	}
	return b, nil
}

// UnpackPolicy - decode from storage
func UnpackPolicy(data []byte) (*Policy, error) {
	p := &Policy{}
	err := json.Unmarshal(data, p)
	if nil != err {
		return nil, fmt.Errorf("%w: policy: %s", fault.SerialisationFailed, err)
	}
	if nil == p.DataTypes {
		p.DataTypes = []string{}
	}
	if nil == p.AllowedOrgs {
		p.AllowedOrgs = []string{}
	}
	return p, nil
}

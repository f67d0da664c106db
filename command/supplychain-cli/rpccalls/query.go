// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ledgerworks/supplychaind/record"
	"github.com/ledgerworks/supplychaind/rpc/supplychain"
)

// QueryByOrganization - records owned by the caller's organisation
func (client *Client) QueryByOrganization(organizationID string) ([]*record.Record, error) {
	var reply supplychain.RecordsReply
	err := client.call("SupplyChain.QuerySupplyChainDataByOrg", supplychain.OrganizationArguments{OrganizationID: organizationID}, &reply)
	return reply.Records, err
}

// QueryAnomalies - flagged records the caller may read
func (client *Client) QueryAnomalies() ([]*record.Record, error) {
	var reply supplychain.RecordsReply
	err := client.call("SupplyChain.QueryAnomalies", supplychain.EmptyArguments{}, &reply)
	return reply.Records, err
}

// GetAll - every record on the ledger
func (client *Client) GetAll() ([]*record.Record, error) {
	var reply supplychain.RecordsReply
	err := client.call("SupplyChain.GetAllSupplyChainData", supplychain.EmptyArguments{}, &reply)
	return reply.Records, err
}

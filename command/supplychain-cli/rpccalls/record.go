// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ledgerworks/supplychaind/record"
	"github.com/ledgerworks/supplychaind/rpc/loader"
	"github.com/ledgerworks/supplychaind/rpc/supplychain"
)

// InitLedger - no-op initialisation hook
func (client *Client) InitLedger() error {
	return client.call("SupplyChain.InitLedger", supplychain.EmptyArguments{}, &supplychain.EmptyReply{})
}

// CreateData - store a new record owned by the caller
func (client *Client) CreateData(arguments *supplychain.CreateArguments) error {
	return client.call("SupplyChain.CreateSupplyChainData", arguments, &supplychain.EmptyReply{})
}

// ReadData - fetch a record the caller may read
func (client *Client) ReadData(id string) (*record.Record, error) {
	var reply supplychain.RecordReply
	err := client.call("SupplyChain.ReadSupplyChainData", supplychain.IDArguments{ID: id}, &reply)
	if nil != err {
		return nil, err
	}
	return reply.Record, nil
}

// DataExists - probe for a record
func (client *Client) DataExists(id string) (bool, error) {
	var reply supplychain.ExistsReply
	err := client.call("SupplyChain.SupplyChainDataExists", supplychain.IDArguments{ID: id}, &reply)
	return reply.Exists, err
}

// UpdateAnomaly - replace the anomaly annotation of a record
func (client *Client) UpdateAnomaly(arguments *supplychain.AnomalyArguments) error {
	return client.call("SupplyChain.UpdateAnomalyStatus", arguments, &supplychain.EmptyReply{})
}

// LoadData - demo ingestion, only served when the loader is enabled
func (client *Client) LoadData(id string, payload string) error {
	arguments := loader.SimpleArguments{
		ID:      id,
		Payload: payload,
	}
	return client.call("Loader.CreateSupplyChainDataSimple", arguments, &loader.SimpleReply{})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ledgerworks/supplychaind/record"
	"github.com/ledgerworks/supplychaind/rpc/supplychain"
)

// CreatePolicy - store a sharing policy owned by the caller
func (client *Client) CreatePolicy(arguments *supplychain.PolicyArguments) error {
	return client.call("SupplyChain.CreateAccessPolicy", arguments, &supplychain.EmptyReply{})
}

// ReadPolicy - fetch a policy the caller may read
func (client *Client) ReadPolicy(id string) (*record.Policy, error) {
	var reply supplychain.PolicyReply
	err := client.call("SupplyChain.ReadAccessPolicy", supplychain.IDArguments{ID: id}, &reply)
	if nil != err {
		return nil, err
	}
	return reply.Policy, nil
}

// PolicyExists - probe for a policy
func (client *Client) PolicyExists(id string) (bool, error) {
	var reply supplychain.ExistsReply
	err := client.call("SupplyChain.AccessPolicyExists", supplychain.IDArguments{ID: id}, &reply)
	return reply.Exists, err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/ledgerworks/supplychaind/rpc/supplychain"
)

func runCreatePolicy(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}
	organization, err := checkOrganization(c.String("organization"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := supplychain.PolicyArguments{
		ID:             id,
		OrganizationID: organization,
		DataTypes:      c.StringSlice("type"),
		AllowedOrgs:    c.StringSlice("allow"),
	}
	err = client.CreatePolicy(&arguments)
	if nil != err {
		return err
	}

	p, err := client.ReadPolicy(id)
	if nil != err {
		return err
	}
	printJson(m.w, p)
	return nil
}

func runReadPolicy(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	p, err := client.ReadPolicy(id)
	if nil != err {
		return err
	}
	printJson(m.w, p)
	return nil
}

func runPolicyExists(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	exists, err := client.PolicyExists(id)
	if nil != err {
		return err
	}
	printJson(m.w, existsResult{ID: id, Exists: exists})
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/ledgerworks/supplychaind/rpc/supplychain"
)

type existsResult struct {
	ID     string `json:"id"`
	Exists bool   `json:"exists"`
}

func runInit(c *cli.Context) error {
	client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.InitLedger()
}

func runCreate(c *cli.Context) error {
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

	arguments := supplychain.CreateArguments{
		ID:             id,
		OrganizationID: organization,
		EncryptedData:  c.String("data"),
		DataHash:       c.String("hash"),
		DataType:       c.String("type"),
		AccessControl:  c.StringSlice("allow"),
	}
	if nil == arguments.AccessControl {
		arguments.AccessControl = []string{}
	}

	err = client.CreateData(&arguments)
	if nil != err {
		return err
	}

	r, err := client.ReadData(id)
	if nil != err {
		return err
	}
	printJson(m.w, r)
	return nil
}

func runRead(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	r, err := client.ReadData(id)
	if nil != err {
		return err
	}
	printJson(m.w, r)
	return nil
}

func runExists(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	exists, err := client.DataExists(id)
	if nil != err {
		return err
	}
	printJson(m.w, existsResult{ID: id, Exists: exists})
	return nil
}

func runAnomaly(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := supplychain.AnomalyArguments{
		ID:              id,
		AnomalyDetected: c.Bool("detected"),
		AnomalyScore:    c.Float64("score"),
		Explanation:     c.String("explanation"),
	}
	err = client.UpdateAnomaly(&arguments)
	if nil != err {
		return err
	}

	r, err := client.ReadData(id)
	if nil != err {
		return err
	}
	printJson(m.w, r)
	return nil
}

func runLoad(c *cli.Context) error {
	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}
	payload := c.String("payload")
	if "" == payload {
		return ErrRequiredPayload
	}

	client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.LoadData(id, payload)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runOwned(c *cli.Context) error {
	organization, err := checkOrganization(c.String("organization"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	records, err := client.QueryByOrganization(organization)
	if nil != err {
		return err
	}
	printJson(m.w, records)
	return nil
}

func runAnomalies(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	records, err := client.QueryAnomalies()
	if nil != err {
		return err
	}
	printJson(m.w, records)
	return nil
}

func runAll(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	records, err := client.GetAll()
	if nil != err {
		return err
	}
	printJson(m.w, records)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/ledgerworks/supplychaind/command/supplychain-cli/rpccalls"
)

// connect with the global credentials
func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	if "" == m.connect {
		return nil, m, ErrRequiredConnect
	}

	certificate, key, err := checkCredentials(m.certificate, m.key)
	if nil != err {
		return nil, m, err
	}

	client, err := rpccalls.NewClient(m.connect, certificate, key, m.verbose, m.e)
	if nil != err {
		return nil, m, err
	}
	return client, m, nil
}

// print out json
func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "printJson error: %s\n", err)
		return
	}

	fmt.Fprintf(handle, "%s\n", b)
}

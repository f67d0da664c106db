// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	connect     string
	certificate string
	key         string
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "supplychain-cli"
	app.Usage = "access a supplychaind node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " supplychaind host/IP and port, `HOST:PORT`",
			EnvVar: "SUPPLYCHAIN_CONNECT",
		},
		cli.StringFlag{
			Name:   "certificate, C",
			Value:  "",
			Usage:  "*client certificate `FILE`, its organisation is the caller",
			EnvVar: "SUPPLYCHAIN_CERTIFICATE",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  "*client private key `FILE`",
			EnvVar: "SUPPLYCHAIN_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "init",
			Usage:  "call the ledger initialisation hook",
			Action: runInit,
		},
		{
			Name:      "create",
			Usage:     "create a supply chain record owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*record `ID`",
				},
				cli.StringFlag{
					Name:  "organization, o",
					Value: "",
					Usage: "*owner `MSPID`, must be the caller",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: " encrypted payload `STRING`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: " payload digest `HEX`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: " data type `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "allow, a",
					Usage: " organisation allowed to read `MSPID` (repeatable)",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "read",
			Usage:     "read a supply chain record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*record `ID`",
				},
			},
			Action: runRead,
		},
		{
			Name:      "exists",
			Usage:     "check whether a supply chain record exists",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*record `ID`",
				},
			},
			Action: runExists,
		},
		{
			Name:      "anomaly",
			Usage:     "set the anomaly annotation of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*record `ID`",
				},
				cli.BoolFlag{
					Name:  "detected, d",
					Usage: " anomaly detected",
				},
				cli.Float64Flag{
					Name:  "score, s",
					Value: 0,
					Usage: " anomaly `SCORE`",
				},
				cli.StringFlag{
					Name:  "explanation, e",
					Value: "",
					Usage: " explanation `TEXT`",
				},
			},
			Action: runAnomaly,
		},
		{
			Name:      "owned",
			Usage:     "list records owned by an organisation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "organization, o",
					Value: "",
					Usage: "*owner `MSPID`, must be the caller",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "anomalies",
			Usage:  "list readable records with an anomaly",
			Action: runAnomalies,
		},
		{
			Name:   "all",
			Usage:  "list every record",
			Action: runAll,
		},
		{
			Name:      "create-policy",
			Usage:     "create a sharing policy owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*policy `ID`",
				},
				cli.StringFlag{
					Name:  "organization, o",
					Value: "",
					Usage: "*owner `MSPID`, must be the caller",
				},
				cli.StringSliceFlag{
					Name:  "type, t",
					Usage: " data type `STRING` (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "allow, a",
					Usage: " organisation allowed to read `MSPID` (repeatable)",
				},
			},
			Action: runCreatePolicy,
		},
		{
			Name:      "read-policy",
			Usage:     "read a sharing policy",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*policy `ID`",
				},
			},
			Action: runReadPolicy,
		},
		{
			Name:      "policy-exists",
			Usage:     "check whether a sharing policy exists",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*policy `ID`",
				},
			},
			Action: runPolicyExists,
		},
		{
			Name:      "load",
			Usage:     "demo ingestion of a JSON payload (loader must be enabled)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*record `ID`",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*JSON `DATA`",
				},
			},
			Action: runLoad,
		},
		{
			Name:  "version",
			Usage: "display supplychain-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect:     c.GlobalString("connect"),
			certificate: c.GlobalString("certificate"),
			key:         c.GlobalString("key"),
			verbose:     c.GlobalBool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}
		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

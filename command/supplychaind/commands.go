// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/authorisation"
	"github.com/ledgerworks/supplychaind/contract"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/record"
	"github.com/ledgerworks/supplychaind/storage"
	"github.com/ledgerworks/supplychaind/zmqutil"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"

	rpcOrganisation = "supplychaind"

	// identity shown to the contract by offline commands
	dumpIdentity = ledger.MSPID("supplychaind-dump")
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate(rpcOrganisation, certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-client-cert", "client":
		if len(arguments) < 1 || "" == arguments[0] {
			exitwithstatus.Message("error: missing organisation argument")
		}
		organisation := arguments[0]
		certificateFilename := getFilenameWithDirectory(arguments[1:], organisation+".crt")
		privateKeyFilename := getFilenameWithDirectory(arguments[1:], organisation+".key")

		err := makeSelfSignedCertificate(organisation, certificateFilename, privateKeyFilename, false, nil)
		if nil != err {
			fmt.Printf("generate client key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated client key: %q and certificate: %q for organisation: %q\n", privateKeyFilename, certificateFilename, organisation)
		fmt.Printf("add the certificate to client_rpc.trusted_clients to allow this organisation\n")

	case "gen-publish-identity", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "dump":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-client-cert ORG [DIR]  (client) - create private key in:  %q\n", "DIR/ORG.key")
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/ORG.crt")
		fmt.Printf("                                        the certificate identifies organisation ORG\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-identity [DIR] (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                        and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  dump [FILE]                         - write every record as JSON to stdout/file\n")
		fmt.Printf("                                        the database is opened read only\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// logging is running but no services are started, the database is
// opened read only so a running daemon is not disturbed
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "dump":
		output := "-"
		if len(arguments) > 0 {
			output = arguments[0]
		}
		err := dumpRecords(log, options.Database.Name, output)
		if nil != err {
			log.Errorf("dump error: %s", err)
			exitwithstatus.Message("dump error: %s", err)
		}

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// write all records through the administrative scan
func dumpRecords(log *logger.L, database string, output string) error {
	store, err := storage.Open(log, database, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer store.Close()

	guard, err := authorisation.New(log)
	if nil != err {
		return err
	}
	sc := contract.New(log, guard)

	var records []*record.Record
	_, err = store.Transact(dumpIdentity, func(ctx ledger.Context) error {
		var err error
		records, err = sc.GetAllSupplyChainData(ctx)
		return err
	})
	if nil != err {
		return err
	}

	fd := os.Stdout
	if "" != output && "-" != output {
		fd, err = os.Create(output)
		if nil != err {
			return err
		}
		defer fd.Close()
	}

	s, err := json.MarshalIndent(records, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(fd, "%s\n", s)
	return err
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

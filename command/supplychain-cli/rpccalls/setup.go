// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the supplychaind JSON RPC services
package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a supplychaind
//
// the certificate and key are PEM data, the organisation named by
// the certificate is the identity for every call
func NewClient(connect string, certificate []byte, key []byte, verbose bool, handle io.Writer) (*Client, error) {

	keyPair, err := tls.X509KeyPair(certificate, key)
	if nil != err {
		return nil, err
	}

	// servers use self signed certificates identified by fingerprint
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		Certificates:       []tls.Certificate{keyPair},
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the supplychaind connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	if err := client.printJson(method, arguments); nil != err {
		return err
	}
	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}
	return client.printJson("reply", reply)
}

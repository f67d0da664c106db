// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/counter"
	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/rpc/certificate"
)

const (
	logName          = "client_rpc"
	handshakeTimeout = 10 * time.Second
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	TrustedClients     []string `gluamapper:"trusted_clients" json:"trusted_clients"`
	EnableLoader       bool     `gluamapper:"enable_loader" json:"enable_loader"`
}

// ServerFactory - build the RPC server for one authenticated connection
type ServerFactory func(identity ledger.Identity) *rpc.Server

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	factory         ServerFactory
	observer        ConnectionObserver
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - validate the configuration, nothing is opened until Serve
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	factory ServerFactory,
	observer ConnectionObserver,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := &rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: append([]string{}, configuration.Listen...),
		factory:         factory,
		observer:        observer,
		count:           count,
		tlsConfig:       tlsConfig,
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// validate all listen addresses
	var err error
	r.ipType, err = parseListenAddress(r.listenIPAndPort, r.log)
	if nil != err {
		return nil, err
	}

	return r, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.accept(l)
	}
	return nil
}

// Addresses - the bound addresses, useful when listening on port 0
func (r *rpcListener) Addresses() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addresses := make([]net.Addr, 0, len(r.listeners))
	for _, l := range r.listeners {
		addresses = append(addresses, l.Addr())
	}
	return addresses
}

// Close - stop accepting, open connections finish on their own
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	var err error
	for _, l := range r.listeners {
		if e := l.Close(); nil != e && nil == err {
			err = e
		}
	}
	r.listeners = nil
	return err
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			break
		}
		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("connection limit reached, rejected: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		r.observe()

		go func() {
			r.serve(conn)
			_ = conn.Close()
			r.count.Release()
			r.observe()
		}()
	}
	_ = listen.Close()
}

// authenticate the peer then serve with its organisation bound
func (r *rpcListener) serve(conn net.Conn) {
	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		r.log.Errorf("not a TLS connection: %s", conn.RemoteAddr())
		return
	}

	_ = tlsConn.SetDeadline(time.Now().Add(handshakeTimeout))
	if err := tlsConn.Handshake(); nil != err {
		r.log.Warnf("handshake failed: %s  error: %s", conn.RemoteAddr(), err)
		return
	}
	_ = tlsConn.SetDeadline(time.Time{})

	organisation, err := certificate.Organisation(tlsConn.ConnectionState())
	if nil != err {
		r.log.Warnf("rejected: %s  error: %s", conn.RemoteAddr(), err)
		return
	}

	r.log.Infof("connection: %s  organisation: %q", conn.RemoteAddr(), organisation)
	server := r.factory(ledger.MSPID(organisation))
	server.ServeCodec(jsonrpc.NewServerCodec(conn))
	r.log.Debugf("closed: %s", conn.RemoteAddr())
}

func (r *rpcListener) observe() {
	if nil != r.observer {
		r.observer.Connections(r.count.Uint64())
	}
}

func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: %s", fault.InvalidIPAddress)
			return nil, fault.InvalidIPAddress
		}
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			parts := strings.Split(listen, ":")
			if 2 != len(parts) || "*" != parts[0] || "" == parts[1] {
				log.Errorf("rpc server listen error: %s", fault.InvalidIPAddress)
				return nil, fault.InvalidIPAddress
			}
			addrs[i] = "[::]" + ":" + parts[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIPAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}

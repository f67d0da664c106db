// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS setup for the client RPC listener
//
// clients authenticate with a certificate that must be exactly one of
// the trusted certificates, the first organisation of its subject is the
// caller's organisation for every call on that connection
package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/fault"
)

// Get - verify a set of listener parameters and return the TLS
// configuration together with the server certificate fingerprint
func Get(log *logger.L, name string, certificate string, key string, trusted []string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	if 0 == len(trusted) {
		log.Errorf("%s has no trusted client certificates", name)
		return nil, fin, fault.MissingCertificate
	}

	pinned := make(map[[32]byte]struct{}, len(trusted))
	for i, text := range trusted {
		block, _ := pem.Decode([]byte(text))
		if nil == block || "CERTIFICATE" != block.Type {
			log.Errorf("%s trusted client certificate[%d] is not valid PEM", name, i)
			return nil, fin, fmt.Errorf("%w: trusted client certificate: %d", fault.MissingCertificate, i)
		}
		if _, err := x509.ParseCertificate(block.Bytes); nil != err {
			log.Errorf("%s trusted client certificate[%d] parse error: %s", name, i, err)
			return nil, fin, fmt.Errorf("%w: trusted client certificate: %d", fault.MissingCertificate, i)
		}
		pinned[Fingerprint(block.Bytes)] = struct{}{}
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		ClientAuth:            tls.RequireAnyClientCert,
		VerifyPeerCertificate: verifier(pinned),
		MinVersion:            tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// accept only a single client certificate that is byte for byte one
// of the trusted certificates, a trusted certificate may be able to
// sign others so chains are never followed
func verifier(pinned map[[32]byte]struct{}) func([][]byte, [][]*x509.Certificate) error {
	return func(raw [][]byte, _ [][]*x509.Certificate) error {
		if 0 == len(raw) {
			return fault.MissingCertificate
		}
		if 1 != len(raw) {
			return fault.UntrustedCertificate
		}
		if _, ok := pinned[Fingerprint(raw[0])]; !ok {
			return fault.UntrustedCertificate
		}
		return nil
	}
}

// Organisation - the organisation named by the client certificate of
// a completed handshake
func Organisation(state tls.ConnectionState) (string, error) {
	if !state.HandshakeComplete || 0 == len(state.PeerCertificates) {
		return "", fault.MissingCertificate
	}
	leaf := state.PeerCertificates[0]
	if 0 == len(leaf.Subject.Organization) {
		return "", fault.MissingOrganisation
	}
	organisation := strings.TrimSpace(leaf.Subject.Organization[0])
	if "" == organisation {
		return "", fault.MissingOrganisation
	}
	return organisation, nil
}

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in supplychaind-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

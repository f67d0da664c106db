// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/fixtures"
	"github.com/ledgerworks/supplychaind/rpc/certificate"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestGet(t *testing.T) {
	cer, key, err := fixtures.Certificate("supplychaind")
	require.Nil(t, err, "server certificate")
	client, _, err := fixtures.Certificate(fixtures.Org1)
	require.Nil(t, err, "client certificate")

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
		[]string{client},
	)
	require.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
	assert.Equal(t, tls.RequireAnyClientCert, tlsConfig.ClientAuth, "client authentication")
	require.NotNil(t, tlsConfig.VerifyPeerCertificate, "verifier")

	trusted := parse(t, client)
	assert.Nil(t, tlsConfig.VerifyPeerCertificate([][]byte{trusted.Raw}, nil), "trusted client")

	stranger, _, err := fixtures.Certificate(fixtures.Org3)
	require.Nil(t, err, "stranger certificate")
	assert.NotNil(t, tlsConfig.VerifyPeerCertificate([][]byte{parse(t, stranger).Raw}, nil), "untrusted client")

	assert.Equal(t, fault.MissingCertificate, tlsConfig.VerifyPeerCertificate(nil, nil), "no client certificate")
	assert.Equal(t, fault.UntrustedCertificate, tlsConfig.VerifyPeerCertificate([][]byte{trusted.Raw, trusted.Raw}, nil), "chain of trusted")
}

// a trusted client must not be able to issue itself a certificate
// naming some other organisation
func TestGetRejectsCertificateSignedByTrustedClient(t *testing.T) {
	cer, key, err := fixtures.Certificate("supplychaind")
	require.Nil(t, err, "server certificate")
	client, clientKey, err := fixtures.Certificate(fixtures.Org1)
	require.Nil(t, err, "client certificate")

	tlsConfig, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key, []string{client})
	require.Nil(t, err, "wrong Get")

	issuer, err := tls.X509KeyPair([]byte(client), []byte(clientKey))
	require.Nil(t, err, "client key pair")
	parent := parse(t, client)

	leafKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.Nil(t, err, "leaf key")
	template := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{Organization: []string{fixtures.Org2}},
		NotBefore:    time.Now().Add(-time.Minute),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	leaf, err := x509.CreateCertificate(rand.Reader, template, parent, &leafKey.PublicKey, issuer.PrivateKey)
	require.Nil(t, err, "sign leaf")

	assert.Equal(t, fault.UntrustedCertificate, tlsConfig.VerifyPeerCertificate([][]byte{leaf, parent.Raw}, nil), "leaf with issuer")
	assert.Equal(t, fault.UntrustedCertificate, tlsConfig.VerifyPeerCertificate([][]byte{leaf}, nil), "leaf alone")
}

func TestGetWithoutTrustedClients(t *testing.T) {
	cer, key, err := fixtures.Certificate("supplychaind")
	require.Nil(t, err, "server certificate")

	log := logger.New(fixtures.LogCategory)

	_, _, err = certificate.Get(log, "test", cer, key, nil)
	assert.Equal(t, fault.MissingCertificate, err, "no trusted clients")

	_, _, err = certificate.Get(log, "test", cer, key, []string{"not a certificate"})
	assert.True(t, errors.Is(err, fault.MissingCertificate), "bad trusted client")

	_, _, err = certificate.Get(log, "test", cer, "bad key", []string{cer})
	assert.NotNil(t, err, "bad key")
}

func parse(t *testing.T, cer string) *x509.Certificate {
	block, _ := pem.Decode([]byte(cer))
	require.NotNil(t, block, "pem block")
	c, err := x509.ParseCertificate(block.Bytes)
	require.Nil(t, err, "parse certificate")
	return c
}

func TestOrganisation(t *testing.T) {
	cer, _, err := fixtures.Certificate(fixtures.Org2)
	require.Nil(t, err, "client certificate")

	state := tls.ConnectionState{
		HandshakeComplete: true,
		PeerCertificates:  []*x509.Certificate{parse(t, cer)},
	}
	organisation, err := certificate.Organisation(state)
	assert.Nil(t, err, "organisation error")
	assert.Equal(t, fixtures.Org2, organisation, "organisation")
}

func TestOrganisationUnverified(t *testing.T) {
	_, err := certificate.Organisation(tls.ConnectionState{})
	assert.Equal(t, fault.MissingCertificate, err, "no handshake")

	state := tls.ConnectionState{
		HandshakeComplete: true,
		PeerCertificates:  []*x509.Certificate{{}},
	}
	_, err = certificate.Organisation(state)
	assert.Equal(t, fault.MissingOrganisation, err, "no organisation")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckID(t *testing.T) {
	_, err := checkID("")
	assert.Equal(t, ErrRequiredID, err, "blank id")

	id, err := checkID("r1")
	assert.Nil(t, err, "id")
	assert.Equal(t, "r1", id, "id value")
}

func TestCheckOrganization(t *testing.T) {
	_, err := checkOrganization("")
	assert.Equal(t, ErrRequiredOrganization, err, "blank organization")
}

func TestCheckCredentials(t *testing.T) {
	_, _, err := checkCredentials("", "key")
	assert.Equal(t, ErrRequiredCertificate, err, "no certificate")

	_, _, err = checkCredentials("cert", "")
	assert.Equal(t, ErrRequiredKey, err, "no key")

	dir := t.TempDir()
	certificateFile := filepath.Join(dir, "Org1MSP.crt")
	keyFile := filepath.Join(dir, "Org1MSP.key")
	require.Nil(t, os.WriteFile(certificateFile, []byte("CERT"), 0600), "write certificate")
	require.Nil(t, os.WriteFile(keyFile, []byte("KEY"), 0600), "write key")

	certificate, key, err := checkCredentials(certificateFile, keyFile)
	assert.Nil(t, err, "read credentials")
	assert.Equal(t, []byte("CERT"), certificate, "certificate")
	assert.Equal(t, []byte("KEY"), key, "key")

	_, _, err = checkCredentials(filepath.Join(dir, "missing.crt"), keyFile)
	assert.NotNil(t, err, "missing file")
}

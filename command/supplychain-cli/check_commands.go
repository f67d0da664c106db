// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/ledgerworks/supplychaind/fault"
)

var (
	ErrRequiredCertificate  = fault.InvalidError("client certificate file is required")
	ErrRequiredConnect      = fault.InvalidError("connect is required")
	ErrRequiredID           = fault.InvalidError("id is required")
	ErrRequiredKey          = fault.InvalidError("client key file is required")
	ErrRequiredOrganization = fault.InvalidError("organization is required")
	ErrRequiredPayload      = fault.InvalidError("payload is required")
)

// check for non-blank id
func checkID(id string) (string, error) {
	if "" == id {
		return "", ErrRequiredID
	}
	return id, nil
}

// check for non-blank organisation
func checkOrganization(organization string) (string, error) {
	if "" == organization {
		return "", ErrRequiredOrganization
	}
	return organization, nil
}

// read the certificate and key, environment variables are expanded
func checkCredentials(certificateFile string, keyFile string) ([]byte, []byte, error) {
	if "" == certificateFile {
		return nil, nil, ErrRequiredCertificate
	}
	if "" == keyFile {
		return nil, nil, ErrRequiredKey
	}

	certificate, err := os.ReadFile(os.ExpandEnv(certificateFile))
	if nil != err {
		return nil, nil, err
	}
	key, err := os.ReadFile(os.ExpandEnv(keyFile))
	if nil != err {
		return nil, nil, err
	}
	return certificate, key, nil
}

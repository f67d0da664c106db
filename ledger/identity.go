// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strings"

	"github.com/ledgerworks/supplychaind/fault"
)

// MSPID - an organisation identifier already verified by the host
type MSPID string

// GetMSPID - the organisation, an empty value is not an identity
func (m MSPID) GetMSPID() (string, error) {
	s := strings.TrimSpace(string(m))
	if "" == s {
		return "", fault.MissingIdentity
	}
	return s, nil
}

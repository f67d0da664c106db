// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strings"

	"github.com/ledgerworks/supplychaind/fault"
)

// PolicyPrefix - reserved tag in front of every policy key
const PolicyPrefix = "POLICY_"

// RecordKey - records are stored under their bare id
func RecordKey(id string) string {
	return id
}

// PolicyKey - policies live in their own namespace
func PolicyKey(id string) string {
	return PolicyPrefix + id
}

// IsPolicyKey - true for keys in the policy namespace
func IsPolicyKey(key string) bool {
	return strings.HasPrefix(key, PolicyPrefix)
}

// CheckRecordID - a record id must be usable as a key and must not
// fall into the policy namespace
func CheckRecordID(id string) error {
	if "" == id {
		return fault.MissingIdentifier
	}
	if IsPolicyKey(id) {
		return fault.ReservedIdentifier
	}
	return nil
}

// CheckPolicyID - any non-empty id, the prefix keeps it apart
func CheckPolicyID(id string) error {
	if "" == id {
		return fault.MissingIdentifier
	}
	return nil
}

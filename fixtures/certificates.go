// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"time"

	"github.com/bitmark-inc/certgen"
)

// Certificate - a fresh self signed PEM certificate and key whose
// subject organisation is the given organisation
func Certificate(organisation string) (string, string, error) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(organisation, validUntil, true, []string{"127.0.0.1", "localhost"})
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}

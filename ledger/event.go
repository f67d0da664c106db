// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// Event - a named payload released when an invocation commits
type Event struct {
	TxID    string `json:"txId"`
	Name    string `json:"name"`
	Payload []byte `json:"payload"`
}

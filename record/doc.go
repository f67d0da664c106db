// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the persisted entities and their key names
//
// Keys:
//
//   id                 - supply chain record
//                        data: JSON encoded Record
//   POLICY_ ++ id      - access policy
//                        data: JSON encoded Policy
//
// timestamps are RFC 3339 text so that they sort
package record

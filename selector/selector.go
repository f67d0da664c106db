// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package selector - evaluate rich queries against JSON documents
//
// a query has the CouchDB form:
//
//   {"selector": {"organizationId": "Org1MSP", "anomalyScore": {"$gt": 0.5}}, "limit": 10}
//
// the selector is a Mango selector, each field takes one operator so
// ranges are written with $and
package selector

import (
	"encoding/json"
	"fmt"

	"github.com/go-kivik/kivik/v4/x/mango"

	"github.com/ledgerworks/supplychaind/fault"
)

// Selector - a parsed query
type Selector struct {
	root  mango.Node
	limit int
}

type query struct {
	Selector json.RawMessage `json:"selector"`
	Limit    int             `json:"limit,omitempty"`
}

// Parse - decode and validate a query string
func Parse(text string) (*Selector, error) {
	q := query{}
	err := json.Unmarshal([]byte(text), &q)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.InvalidSelector, err)
	}
	if 0 == len(q.Selector) || "null" == string(q.Selector) {
		return nil, fmt.Errorf("%w: missing selector", fault.InvalidSelector)
	}
	if q.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit", fault.InvalidSelector)
	}

	root, err := parseSelector(q.Selector)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.InvalidSelector, err)
	}

	return &Selector{
		root:  root,
		limit: q.Limit,
	}, nil
}

// mango panics on some nested forms it cannot represent
func parseSelector(raw json.RawMessage) (root mango.Node, err error) {
	defer func() {
		if r := recover(); nil != r {
			root = nil
			err = fmt.Errorf("unsupported selector: %v", r)
		}
	}()
	return mango.Parse(raw)
}

// Equal - build a query matching a single field value
func Equal(field string, value interface{}) string {
	condition, err := json.Marshal(map[string]interface{}{field: value})
	if nil != err {
		// only reachable with a value json cannot encode
		return `{"selector":{"$or":[]}}`
	}
	b, _ := json.Marshal(query{
		Selector: condition,
	})
	return string(b)
}

// Limit - maximum number of results, zero means no limit
func (s *Selector) Limit() int {
	return s.limit
}

// Match - true if the document satisfies the selector
//
// documents that are not JSON objects never match
func (s *Selector) Match(document []byte) (matched bool) {
	var doc map[string]interface{}
	if err := json.Unmarshal(document, &doc); nil != err || nil == doc {
		return false
	}

	// an unknown $type name only fails during evaluation
	defer func() {
		if r := recover(); nil != r {
			matched = false
		}
	}()
	return mango.Match(s.root, doc)
}

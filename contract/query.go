// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/record"
	"github.com/ledgerworks/supplychaind/selector"
)

// QuerySupplyChainDataByOrg - all records owned by the caller's own
// organisation
func (s *SupplyChain) QuerySupplyChainDataByOrg(ctx ledger.Context, organizationID string) ([]*record.Record, error) {
	caller, err := s.guard.Caller(ctx)
	if nil != err {
		return nil, err
	}

	err = s.guard.CheckList(caller, organizationID)
	if nil != err {
		return nil, err
	}

	query := selector.Equal("organizationId", organizationID)
	records, err := queryRecords(ctx.GetStub(), query, nil)
	if nil != err {
		return nil, err
	}

	s.log.Debugf("query by organisation: %q  count: %d", organizationID, len(records))
	return records, nil
}

// QueryAnomalies - flagged records, restricted to the ones the caller
// may read
func (s *SupplyChain) QueryAnomalies(ctx ledger.Context) ([]*record.Record, error) {
	caller, err := s.guard.Caller(ctx)
	if nil != err {
		return nil, err
	}

	visible := func(r *record.Record) bool {
		return s.guard.Visible(caller, r)
	}

	query := selector.Equal("anomalyDetected", true)
	records, err := queryRecords(ctx.GetStub(), query, visible)
	if nil != err {
		return nil, err
	}

	s.log.Debugf("query anomalies: caller: %q  count: %d", caller, len(records))
	return records, nil
}

// GetAllSupplyChainData - administrative scan of every record
//
// policies are excluded and entries that fail to decode are skipped
func (s *SupplyChain) GetAllSupplyChainData(ctx ledger.Context) ([]*record.Record, error) {
	iter, err := ctx.GetStub().GetStateByRange("", "")
	if nil != err {
		return nil, err
	}

	records := make([]*record.Record, 0)
	skipped := 0
	err = ledger.Each(iter, func(kv *ledger.KV) error {
		if record.IsPolicyKey(kv.Key) {
			return nil
		}
		r, err := record.UnpackRecord(kv.Value)
		if nil != err {
			s.log.Warnf("scan: skip key: %q  error: %s", kv.Key, err)
			skipped += 1
			return nil
		}
		records = append(records, r)
		return nil
	})
	if nil != err {
		return nil, err
	}

	s.log.Debugf("scan: count: %d  skipped: %d", len(records), skipped)
	return records, nil
}

// run a rich query, policies carry an organizationId too so their
// keys are dropped here
func queryRecords(stub ledger.Stub, query string, keep func(*record.Record) bool) ([]*record.Record, error) {
	iter, err := stub.GetQueryResult(query)
	if nil != err {
		return nil, err
	}

	records := make([]*record.Record, 0)
	err = ledger.Each(iter, func(kv *ledger.KV) error {
		if record.IsPolicyKey(kv.Key) {
			return nil
		}
		r, err := record.UnpackRecord(kv.Value)
		if nil != err {
			return err
		}
		if nil != keep && !keep(r) {
			return nil
		}
		records = append(records, r)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return records, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/ledger/memory"
)

var fixedTime = time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)

func clock() time.Time { return fixedTime }

func TestCommitOnSuccess(t *testing.T) {
	l := memory.NewWithClock(clock)

	events, err := l.Transact(ledger.MSPID("Org1MSP"), func(ctx ledger.Context) error {
		stub := ctx.GetStub()
		if err := stub.PutState("a", []byte(`{"v":1}`)); nil != err {
			return err
		}

		// own writes are visible
		v, err := stub.GetState("a")
		if nil != err {
			return err
		}
		assert.Equal(t, []byte(`{"v":1}`), v, "read your writes")

		ts, err := stub.GetTxTimestamp()
		assert.Nil(t, err, "timestamp error")
		assert.Equal(t, fixedTime, ts, "timestamp")

		return stub.SetEvent("Changed", []byte("payload"))
	})
	require.Nil(t, err, "transact error")
	require.Equal(t, 1, len(events), "event count")
	assert.Equal(t, "Changed", events[0].Name, "event name")
	assert.Equal(t, []byte("payload"), events[0].Payload, "event payload")
	assert.Equal(t, "memory-1", events[0].TxID, "event tx id")

	v, ok := l.Get("a")
	assert.True(t, ok, "committed")
	assert.Equal(t, []byte(`{"v":1}`), v, "committed value")
}

func TestDiscardOnError(t *testing.T) {
	l := memory.New()
	l.Put("a", []byte("old"))

	failed := errors.New("failed")
	events, err := l.Transact(ledger.MSPID("Org1MSP"), func(ctx ledger.Context) error {
		stub := ctx.GetStub()
		_ = stub.PutState("a", []byte("new"))
		_ = stub.PutState("b", []byte("new"))
		_ = stub.SetEvent("Changed", nil)
		return failed
	})
	assert.Equal(t, failed, err, "transact error")
	assert.Nil(t, events, "no events released")

	v, _ := l.Get("a")
	assert.Equal(t, []byte("old"), v, "unchanged")
	_, ok := l.Get("b")
	assert.False(t, ok, "nothing written")
}

func TestMissingKey(t *testing.T) {
	l := memory.New()
	_, err := l.Transact(ledger.MSPID("Org1MSP"), func(ctx ledger.Context) error {
		v, err := ctx.GetStub().GetState("missing")
		assert.Nil(t, v, "missing value")
		return err
	})
	assert.Nil(t, err, "transact error")
}

func TestRange(t *testing.T) {
	l := memory.New()
	for _, k := range []string{"c", "a", "POLICY_x", "b"} {
		l.Put(k, []byte(`{}`))
	}

	scan := func(start string, end string) []string {
		keys := []string{}
		_, err := l.Transact(ledger.MSPID("Org1MSP"), func(ctx ledger.Context) error {
			iter, err := ctx.GetStub().GetStateByRange(start, end)
			if nil != err {
				return err
			}
			return ledger.Each(iter, func(kv *ledger.KV) error {
				keys = append(keys, kv.Key)
				return nil
			})
		})
		require.Nil(t, err, "scan error")
		return keys
	}

	assert.Equal(t, []string{"POLICY_x", "a", "b", "c"}, scan("", ""), "full range")
	assert.Equal(t, []string{"a", "b"}, scan("a", "c"), "half open range")
	assert.Equal(t, []string{"b", "c"}, scan("b", ""), "open end")
}

func TestRangeSeesCommittedOnly(t *testing.T) {
	l := memory.New()
	_, err := l.Transact(ledger.MSPID("Org1MSP"), func(ctx ledger.Context) error {
		stub := ctx.GetStub()
		_ = stub.PutState("pending", []byte(`{}`))
		iter, err := stub.GetStateByRange("", "")
		if nil != err {
			return err
		}
		assert.False(t, iter.HasNext(), "uncommitted write not scanned")
		return iter.Close()
	})
	assert.Nil(t, err, "transact error")
}

func TestQueryResult(t *testing.T) {
	l := memory.New()
	l.Put("r1", []byte(`{"organizationId":"Org1MSP","anomalyDetected":true}`))
	l.Put("r2", []byte(`{"organizationId":"Org2MSP","anomalyDetected":true}`))
	l.Put("r3", []byte(`{"organizationId":"Org1MSP","anomalyDetected":false}`))
	l.Put("raw", []byte(`not json`))

	query := func(q string) ([]string, error) {
		keys := []string{}
		_, err := l.Transact(ledger.MSPID("Org1MSP"), func(ctx ledger.Context) error {
			iter, err := ctx.GetStub().GetQueryResult(q)
			if nil != err {
				return err
			}
			return ledger.Each(iter, func(kv *ledger.KV) error {
				keys = append(keys, kv.Key)
				return nil
			})
		})
		return keys, err
	}

	keys, err := query(`{"selector":{"organizationId":"Org1MSP"}}`)
	assert.Nil(t, err, "query error")
	assert.Equal(t, []string{"r1", "r3"}, keys, "by organisation")

	keys, err = query(`{"selector":{"anomalyDetected":true},"limit":1}`)
	assert.Nil(t, err, "query error")
	assert.Equal(t, []string{"r1"}, keys, "limited")

	_, err = query(`{"selector":`)
	assert.True(t, fault.IsErrInvalid(err), "bad selector")
}

func TestClosedTransaction(t *testing.T) {
	l := memory.New()
	var saved ledger.Stub
	_, err := l.Transact(ledger.MSPID("Org1MSP"), func(ctx ledger.Context) error {
		saved = ctx.GetStub()
		return nil
	})
	require.Nil(t, err, "transact error")

	err = saved.PutState("late", []byte(`{}`))
	assert.Equal(t, fault.TransactionIsClosed, err, "stub outlives invocation")
}

func TestIteratorAfterClose(t *testing.T) {
	l := memory.New()
	l.Put("a", []byte(`{}`))
	_, err := l.Transact(ledger.MSPID("Org1MSP"), func(ctx ledger.Context) error {
		iter, err := ctx.GetStub().GetStateByRange("", "")
		if nil != err {
			return err
		}
		_ = iter.Close()
		assert.False(t, iter.HasNext(), "closed iterator is exhausted")
		_, err = iter.Next()
		assert.Equal(t, fault.InvalidCursor, err, "next after close")
		return nil
	})
	assert.Nil(t, err, "transact error")
}

func TestIdentityPassedThrough(t *testing.T) {
	l := memory.New()
	_, err := l.Transact(ledger.MSPID("Org2MSP"), func(ctx ledger.Context) error {
		id, err := ctx.GetClientIdentity().GetMSPID()
		assert.Equal(t, "Org2MSP", id, "organisation")
		return err
	})
	assert.Nil(t, err, "transact error")
}

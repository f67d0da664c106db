// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/ledger/mocks"
)

func mockContext(ctl *gomock.Controller, org string) (*mocks.MockContext, *mocks.MockStub) {
	stub := mocks.NewMockStub(ctl)
	ctx := mocks.NewMockContext(ctl)
	ctx.EXPECT().GetStub().Return(stub).AnyTimes()
	ctx.EXPECT().GetClientIdentity().Return(ledger.MSPID(org)).AnyTimes()
	return ctx, stub
}

func TestQueryClosesIteratorOnDecodeError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newTestEnv(t)
	ctx, stub := mockContext(ctl, org1)
	iter := mocks.NewMockIterator(ctl)

	stub.EXPECT().GetQueryResult(gomock.Any()).Return(iter, nil).Times(1)
	iter.EXPECT().HasNext().Return(true).Times(1)
	iter.EXPECT().Next().Return(&ledger.KV{Key: "bad", Value: []byte("{")}, nil).Times(1)
	iter.EXPECT().Close().Return(nil).Times(1)

	records, err := e.sc.QueryAnomalies(ctx)
	assert.True(t, fault.IsErrProcess(err), "serialisation error")
	assert.Nil(t, records, "no partial result")
}

func TestQueryClosesIteratorOnSuccess(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newTestEnv(t)
	ctx, stub := mockContext(ctl, org1)
	iter := mocks.NewMockIterator(ctl)

	value := []byte(`{"id":"a","organizationId":"Org1MSP","accessControl":[]}`)
	stub.EXPECT().GetQueryResult(`{"selector":{"organizationId":"Org1MSP"}}`).Return(iter, nil).Times(1)
	gomock.InOrder(
		iter.EXPECT().HasNext().Return(true),
		iter.EXPECT().Next().Return(&ledger.KV{Key: "a", Value: value}, nil),
		iter.EXPECT().HasNext().Return(false),
	)
	iter.EXPECT().Close().Return(nil).Times(1)

	records, err := e.sc.QuerySupplyChainDataByOrg(ctx, org1)
	assert.Nil(t, err, "query error")
	assert.Equal(t, []string{"a"}, ids(records), "records")
}

func TestScanClosesIteratorOnNextError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newTestEnv(t)
	ctx, stub := mockContext(ctl, org1)
	iter := mocks.NewMockIterator(ctl)

	failed := errors.New("peer went away")
	stub.EXPECT().GetStateByRange("", "").Return(iter, nil).Times(1)
	iter.EXPECT().HasNext().Return(true).Times(1)
	iter.EXPECT().Next().Return(nil, failed).Times(1)
	iter.EXPECT().Close().Return(nil).Times(1)

	_, err := e.sc.GetAllSupplyChainData(ctx)
	assert.Equal(t, failed, err, "next error aborts the scan")
}

func TestScanReportsCloseError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newTestEnv(t)
	ctx, stub := mockContext(ctl, org1)
	iter := mocks.NewMockIterator(ctl)

	failed := errors.New("close failed")
	stub.EXPECT().GetStateByRange("", "").Return(iter, nil).Times(1)
	iter.EXPECT().HasNext().Return(false).Times(1)
	iter.EXPECT().Close().Return(failed).Times(1)

	_, err := e.sc.GetAllSupplyChainData(ctx)
	assert.Equal(t, failed, err, "close error")
}

func TestQueryError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := newTestEnv(t)
	ctx, stub := mockContext(ctl, org2)

	failed := errors.New("no rich query support")
	stub.EXPECT().GetQueryResult(gomock.Any()).Return(nil, failed).Times(1)

	_, err := e.sc.QueryAnomalies(ctx)
	assert.Equal(t, failed, err, "query error")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/ledger/mocks"
)

var (
	errCallback = errors.New("callback failed")
	errNext     = errors.New("next failed")
	errClose    = errors.New("close failed")
)

func TestEachVisitsAllAndCloses(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	iter := mocks.NewMockIterator(ctl)
	gomock.InOrder(
		iter.EXPECT().HasNext().Return(true),
		iter.EXPECT().Next().Return(&ledger.KV{Key: "a", Value: []byte("1")}, nil),
		iter.EXPECT().HasNext().Return(true),
		iter.EXPECT().Next().Return(&ledger.KV{Key: "b", Value: []byte("2")}, nil),
		iter.EXPECT().HasNext().Return(false),
		iter.EXPECT().Close().Return(nil),
	)

	keys := []string{}
	err := ledger.Each(iter, func(kv *ledger.KV) error {
		keys = append(keys, kv.Key)
		return nil
	})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, []string{"a", "b"}, keys, "wrong keys")
}

func TestEachClosesOnCallbackError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	iter := mocks.NewMockIterator(ctl)
	iter.EXPECT().HasNext().Return(true).Times(1)
	iter.EXPECT().Next().Return(&ledger.KV{Key: "a"}, nil).Times(1)
	iter.EXPECT().Close().Return(errClose).Times(1)

	err := ledger.Each(iter, func(kv *ledger.KV) error {
		return errCallback
	})
	assert.Equal(t, errCallback, err, "close error must not hide the first error")
}

func TestEachClosesOnNextError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	iter := mocks.NewMockIterator(ctl)
	iter.EXPECT().HasNext().Return(true).Times(1)
	iter.EXPECT().Next().Return(nil, errNext).Times(1)
	iter.EXPECT().Close().Return(nil).Times(1)

	err := ledger.Each(iter, func(kv *ledger.KV) error {
		t.Fatal("callback must not run")
		return nil
	})
	assert.Equal(t, errNext, err, "wrong error")
}

func TestEachStopEarly(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	iter := mocks.NewMockIterator(ctl)
	iter.EXPECT().HasNext().Return(true).Times(1)
	iter.EXPECT().Next().Return(&ledger.KV{Key: "a"}, nil).Times(1)
	iter.EXPECT().Close().Return(nil).Times(1)

	n := 0
	err := ledger.Each(iter, func(kv *ledger.KV) error {
		n += 1
		return ledger.Stop
	})
	assert.Nil(t, err, "stop is not an error")
	assert.Equal(t, 1, n, "wrong visit count")
}

func TestEachReportsCloseError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	iter := mocks.NewMockIterator(ctl)
	iter.EXPECT().HasNext().Return(false).Times(1)
	iter.EXPECT().Close().Return(errClose).Times(1)

	err := ledger.Each(iter, func(kv *ledger.KV) error { return nil })
	assert.Equal(t, errClose, err, "close error lost")
}

func TestMSPID(t *testing.T) {
	id, err := ledger.MSPID(" Org1MSP ").GetMSPID()
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "Org1MSP", id, "wrong id")

	_, err = ledger.MSPID("").GetMSPID()
	assert.Equal(t, fault.MissingIdentity, err, "empty identity accepted")
}

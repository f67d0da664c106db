// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invoke_test

import (
	"errors"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerworks/supplychaind/fixtures"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/ledger/mocks"
	"github.com/ledgerworks/supplychaind/rpc/invoke"
	"github.com/ledgerworks/supplychaind/rpc/metrics"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type recorder struct {
	events []ledger.Event
}

func (r *recorder) Broadcast(event ledger.Event) {
	r.events = append(r.events, event)
}

func TestRunCommitted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	r := &recorder{}
	m := metrics.New()
	i := invoke.New(logger.New(fixtures.LogCategory), host, r, m)

	identity := ledger.MSPID(fixtures.Org1)
	events := []ledger.Event{{TxID: "t1", Name: "AnomalyDetected", Payload: []byte("{}")}}
	host.EXPECT().Transact(identity, gomock.Any()).Return(events, nil).Times(1)

	err := i.Run("UpdateAnomalyStatus", identity, func(ledger.Context) error { return nil })
	assert.Nil(t, err, "run error")
	assert.Equal(t, events, r.events, "broadcast")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations("UpdateAnomalyStatus", metrics.ResultOK)), "counted")
}

func TestRunFailed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	r := &recorder{}
	m := metrics.New()
	i := invoke.New(logger.New(fixtures.LogCategory), host, r, m)

	failed := errors.New("failed")
	host.EXPECT().Transact(gomock.Any(), gomock.Any()).Return(nil, failed).Times(1)

	err := i.Run("CreateSupplyChainData", ledger.MSPID(fixtures.Org1), func(ledger.Context) error { return nil })
	assert.Equal(t, failed, err, "run error")
	assert.Equal(t, 0, len(r.events), "nothing broadcast")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations("CreateSupplyChainData", metrics.ResultError)), "counted")
}

func TestRunWithoutBroadcaster(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	host := mocks.NewMockHost(ctl)
	i := invoke.New(logger.New(fixtures.LogCategory), host, nil, nil)

	host.EXPECT().Transact(gomock.Any(), gomock.Any()).Return([]ledger.Event{{Name: "x"}}, nil).Times(1)

	err := i.Run("UpdateAnomalyStatus", ledger.MSPID(fixtures.Org1), func(ledger.Context) error { return nil })
	assert.Nil(t, err, "run error")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics_test

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/rpc/metrics"
)

func TestResult(t *testing.T) {
	items := []struct {
		err      error
		expected string
	}{
		{nil, metrics.ResultOK},
		{fault.RecordNotFound, metrics.ResultNotFound},
		{fault.PolicyAlreadyExists, metrics.ResultExists},
		{fault.PermissionDenied, metrics.ResultPermission},
		{fault.Unauthorised, metrics.ResultUnauthorised},
		{fmt.Errorf("%w: detail", fault.MalformedPayload), metrics.ResultInvalid},
		{fault.SerialisationFailed, metrics.ResultProcess},
		{errors.New("other"), metrics.ResultError},
	}

	for i, item := range items {
		assert.Equal(t, item.expected, metrics.Result(item.err), "item: %d", i)
	}
}

func TestObserve(t *testing.T) {
	m := metrics.New()

	m.Observe("ReadSupplyChainData", time.Millisecond, nil)
	m.Observe("ReadSupplyChainData", time.Millisecond, nil)
	m.Observe("ReadSupplyChainData", time.Millisecond, fault.Unauthorised)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Invocations("ReadSupplyChainData", metrics.ResultOK)), "ok count")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invocations("ReadSupplyChainData", metrics.ResultUnauthorised)), "denied count")
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.Observe("QueryAnomalies", time.Millisecond, nil)
	m.Connections(3)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(w.Result().Body)
	assert.Equal(t, 200, w.Code, "status")
	assert.Contains(t, string(body), `supplychain_invocations_total{method="QueryAnomalies",result="ok"} 1`, "counter exported")
	assert.Contains(t, string(body), "supplychain_invocation_seconds_bucket", "histogram exported")
	assert.Contains(t, string(body), "supplychain_rpc_connections 3", "gauge exported")
}

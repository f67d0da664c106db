// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus instrumentation of contract invocations
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ledgerworks/supplychaind/fault"
)

const namespace = "supplychain"

// result label values
const (
	ResultOK           = "ok"
	ResultNotFound     = "not_found"
	ResultExists       = "exists"
	ResultPermission   = "permission_denied"
	ResultUnauthorised = "unauthorised"
	ResultInvalid      = "invalid"
	ResultProcess      = "process"
	ResultError        = "error"
)

// Metrics - collectors on their own registry
type Metrics struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	connections prometheus.Gauge
}

// New - create and register all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invocations_total",
				Help:      "Contract invocations by method and result.",
			},
			[]string{"method", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "invocation_seconds",
				Help:      "Time spent inside the ledger transaction.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		connections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rpc_connections",
				Help:      "Open client RPC connections.",
			},
		),
	}

	m.registry.MustRegister(
		m.invocations,
		m.duration,
		m.connections,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe - count one invocation and its duration
func (m *Metrics) Observe(method string, elapsed time.Duration, err error) {
	m.invocations.WithLabelValues(method, Result(err)).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Connections - current number of client connections
func (m *Metrics) Connections(n uint64) {
	m.connections.Set(float64(n))
}

// Invocations - the counter for a method and result, for inspection
func (m *Metrics) Invocations(method string, result string) prometheus.Counter {
	return m.invocations.WithLabelValues(method, result)
}

// Handler - serve the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Result - label for an invocation outcome
func Result(err error) string {
	switch {
	case nil == err:
		return ResultOK
	case fault.IsErrNotFound(err):
		return ResultNotFound
	case fault.IsErrExists(err):
		return ResultExists
	case fault.IsErrPermission(err):
		return ResultPermission
	case fault.IsErrAuthorisation(err):
		return ResultUnauthorised
	case fault.IsErrInvalid(err):
		return ResultInvalid
	case fault.IsErrProcess(err):
		return ResultProcess
	default:
		return ResultError
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - throttle contract invocations shared by every
// client connection
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/ledgerworks/supplychaind/fault"
)

// New - a limiter admitting perSecond invocations with bursts of up
// to burst
func New(perSecond float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Limit - take one invocation slot, sleeping until it is due
//
// an invocation that would wait longer than maximumDelay is refused
// and its slot handed back to the limiter
func Limit(limiter *rate.Limiter, maximumDelay time.Duration) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	delay := r.Delay()
	if delay > maximumDelay {
		r.Cancel()
		return fault.RateLimiting
	}
	time.Sleep(delay)
	return nil
}

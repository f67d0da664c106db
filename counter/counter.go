// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - count open resources against a ceiling
package counter

import (
	"sync/atomic"
)

// Counter - number of resources currently held
type Counter struct {
	n atomic.Uint64
}

// Acquire - take one slot if fewer than maximum are held
func (c *Counter) Acquire(maximum uint64) bool {
	for {
		current := c.n.Load()
		if current >= maximum {
			return false
		}
		if c.n.CompareAndSwap(current, current+1) {
			return true
		}
	}
}

// Release - give back a slot taken by Acquire
func (c *Counter) Release() {
	for {
		current := c.n.Load()
		if 0 == current {
			return
		}
		if c.n.CompareAndSwap(current, current-1) {
			return
		}
	}
}

// Uint64 - slots currently held
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// IsZero - nothing held
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
)

const (
	minConnectionCount = 1
)

// Listener - a started network service
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Close() error
}

// ConnectionObserver - told the open connection count on every change
type ConnectionObserver interface {
	Connections(uint64)
}

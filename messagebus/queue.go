// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"

	"github.com/ledgerworks/supplychaind/ledger"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its frames
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - bounded single consumer queue
type Queue struct {
	c       chan Message
	dropped atomic.Uint64
}

// BusType - the set of queues
type BusType struct {
	Events *Queue // ledger events for the publisher
}

// Bus - all available queues
var Bus = BusType{
	Events: NewQueue(queueSize),
}

// NewQueue - a queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, false if it was dropped
func (q *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case q.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Broadcast - queue a ledger event as its name and payload
func (q *Queue) Broadcast(event ledger.Event) {
	q.Send(event.Name, event.Payload)
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// Dropped - number of messages lost to a full queue
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

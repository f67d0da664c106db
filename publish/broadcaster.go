// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/ledgerworks/supplychaind/messagebus"
	"github.com/ledgerworks/supplychaind/zmqutil"
)

const (
	broadcasterZapDomain = "publish"
)

type broadcaster struct {
	log    *logger.L
	socket *zmq.Socket
	queue  *messagebus.Queue
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string, queue *messagebus.Queue) error {

	brdc.log = log
	brdc.queue = queue

	socket, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket = socket

	return nil
}

// Run - wait for events and publish them, the socket is closed on shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue.Chan():
			err := brdc.process(item)
			if nil != err {
				log.Errorf("publish: %q  error: %s", item.Command, err)
			}
		}
	}

	log.Infof("dropped: %d", brdc.queue.Dropped())
	_ = brdc.socket.Close()
	log.Info("stopped")
}

// send one message as a multipart frame
func (brdc *broadcaster) process(item messagebus.Message) error {
	log := brdc.log
	log.Debugf("event: %q", item.Command)

	parts := make([]interface{}, 0, 1+len(item.Parameters))
	parts = append(parts, item.Command)
	for _, p := range item.Parameters {
		parts = append(parts, p)
	}

	_, err := brdc.socket.SendMessage(parts...)
	return err
}

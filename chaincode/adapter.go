// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/ledgerworks/supplychaind/ledger"
)

// wrap a Fabric transaction context as a ledger context
func adapt(ctx contractapi.TransactionContextInterface) ledger.Context {
	return &context{
		stub:     &stub{stub: ctx.GetStub()},
		identity: ctx.GetClientIdentity(),
	}
}

type context struct {
	stub     ledger.Stub
	identity ledger.Identity
}

func (c *context) GetStub() ledger.Stub              { return c.stub }
func (c *context) GetClientIdentity() ledger.Identity { return c.identity }

type stub struct {
	stub shim.ChaincodeStubInterface
}

func (s *stub) GetState(key string) ([]byte, error) {
	return s.stub.GetState(key)
}

func (s *stub) PutState(key string, value []byte) error {
	return s.stub.PutState(key, value)
}

func (s *stub) GetStateByRange(startKey string, endKey string) (ledger.Iterator, error) {
	iter, err := s.stub.GetStateByRange(startKey, endKey)
	if nil != err {
		return nil, err
	}
	return &iterator{iter: iter}, nil
}

func (s *stub) GetQueryResult(query string) (ledger.Iterator, error) {
	iter, err := s.stub.GetQueryResult(query)
	if nil != err {
		return nil, err
	}
	return &iterator{iter: iter}, nil
}

func (s *stub) SetEvent(name string, payload []byte) error {
	return s.stub.SetEvent(name, payload)
}

func (s *stub) GetTxID() string {
	return s.stub.GetTxID()
}

// the proposal timestamp, identical on every endorsing peer
func (s *stub) GetTxTimestamp() (time.Time, error) {
	ts, err := s.stub.GetTxTimestamp()
	if nil != err {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}

type iterator struct {
	iter shim.StateQueryIteratorInterface
}

func (i *iterator) HasNext() bool {
	return i.iter.HasNext()
}

func (i *iterator) Next() (*ledger.KV, error) {
	kv, err := i.iter.Next()
	if nil != err {
		return nil, err
	}
	return &ledger.KV{
		Key:   kv.Key,
		Value: kv.Value,
	}, nil
}

func (i *iterator) Close() error {
	return i.iter.Close()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/authorisation"
	"github.com/ledgerworks/supplychaind/contract"
)

// LoaderName - name under which the ingestion contract is installed
const LoaderName = "loader"

// SupplyChainContract - Fabric transaction functions
type SupplyChainContract struct {
	contractapi.Contract
	sc *contract.SupplyChain
}

// LoaderContract - Fabric transaction function for bulk ingestion
type LoaderContract struct {
	contractapi.Contract
	loader *contract.Loader
}

// New - both contracts, ready for contractapi.NewChaincode
func New(log *logger.L) (*SupplyChainContract, *LoaderContract, error) {
	guard, err := authorisation.New(log)
	if nil != err {
		return nil, nil, err
	}

	sc := &SupplyChainContract{
		sc: contract.New(log, guard),
	}
	loader := &LoaderContract{
		loader: contract.NewLoader(log),
	}
	loader.Name = LoaderName

	return sc, loader, nil
}

func (c *SupplyChainContract) InitLedger(ctx contractapi.TransactionContextInterface) error {
	return c.sc.InitLedger(adapt(ctx))
}

func (c *SupplyChainContract) CreateSupplyChainData(ctx contractapi.TransactionContextInterface, id string, organizationID string, encryptedData string, dataHash string, dataType string, accessControl []string) error {
	return c.sc.CreateSupplyChainData(adapt(ctx), id, organizationID, encryptedData, dataHash, dataType, accessControl)
}

func (c *SupplyChainContract) ReadSupplyChainData(ctx contractapi.TransactionContextInterface, id string) (*Record, error) {
	r, err := c.sc.ReadSupplyChainData(adapt(ctx), id)
	if nil != err {
		return nil, err
	}
	return toRecord(r), nil
}

func (c *SupplyChainContract) SupplyChainDataExists(ctx contractapi.TransactionContextInterface, id string) (bool, error) {
	return c.sc.SupplyChainDataExists(adapt(ctx), id)
}

func (c *SupplyChainContract) UpdateAnomalyStatus(ctx contractapi.TransactionContextInterface, id string, anomalyDetected bool, anomalyScore float64, explanation string) error {
	return c.sc.UpdateAnomalyStatus(adapt(ctx), id, anomalyDetected, anomalyScore, explanation)
}

func (c *SupplyChainContract) QuerySupplyChainDataByOrg(ctx contractapi.TransactionContextInterface, organizationID string) ([]*Record, error) {
	records, err := c.sc.QuerySupplyChainDataByOrg(adapt(ctx), organizationID)
	if nil != err {
		return nil, err
	}
	return toRecords(records), nil
}

func (c *SupplyChainContract) QueryAnomalies(ctx contractapi.TransactionContextInterface) ([]*Record, error) {
	records, err := c.sc.QueryAnomalies(adapt(ctx))
	if nil != err {
		return nil, err
	}
	return toRecords(records), nil
}

func (c *SupplyChainContract) GetAllSupplyChainData(ctx contractapi.TransactionContextInterface) ([]*Record, error) {
	records, err := c.sc.GetAllSupplyChainData(adapt(ctx))
	if nil != err {
		return nil, err
	}
	return toRecords(records), nil
}

func (c *SupplyChainContract) CreateAccessPolicy(ctx contractapi.TransactionContextInterface, id string, organizationID string, dataTypes []string, allowedOrgs []string) error {
	return c.sc.CreateAccessPolicy(adapt(ctx), id, organizationID, dataTypes, allowedOrgs)
}

func (c *SupplyChainContract) ReadAccessPolicy(ctx contractapi.TransactionContextInterface, id string) (*Policy, error) {
	p, err := c.sc.ReadAccessPolicy(adapt(ctx), id)
	if nil != err {
		return nil, err
	}
	return toPolicy(p), nil
}

func (c *SupplyChainContract) AccessPolicyExists(ctx contractapi.TransactionContextInterface, id string) (bool, error) {
	return c.sc.AccessPolicyExists(adapt(ctx), id)
}

func (c *LoaderContract) CreateSupplyChainDataSimple(ctx contractapi.TransactionContextInterface, id string, payload string) error {
	return c.loader.CreateSupplyChainDataSimple(adapt(ctx), id, payload)
}

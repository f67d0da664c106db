// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"
	"fmt"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
	"github.com/ledgerworks/supplychaind/record"
)

// EventAnomalyDetected - name of the event set when a record is
// flagged as anomalous
const EventAnomalyDetected = "AnomalyDetected"

// AnomalyEvent - payload of EventAnomalyDetected
type AnomalyEvent struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organizationId"`
	DataType       string  `json:"dataType"`
	AnomalyScore   float64 `json:"anomalyScore"`
}

func emitAnomaly(stub ledger.Stub, r *record.Record) error {
	payload, err := json.Marshal(AnomalyEvent{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		DataType:       r.DataType,
		AnomalyScore:   r.AnomalyScore,
	})
	if nil != err {
		return fmt.Errorf("%w: event: %s", fault.SerialisationFailed, err)
	}
	return stub.SetEvent(EventAnomalyDetected, payload)
}

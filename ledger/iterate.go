// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"errors"
)

// Stop - returned by an Each callback to finish early without error
var Stop = errors.New("stop iteration")

// Each - run a function on every remaining entry of an iterator
//
// the iterator is always closed, whichever way this returns, and a
// close failure is reported if nothing else failed first
func Each(iter Iterator, f func(kv *KV) error) (err error) {
	defer func() {
		closeErr := iter.Close()
		if nil == err {
			err = closeErr
		}
	}()

	for iter.HasNext() {
		kv, err := iter.Next()
		if nil != err {
			return err
		}
		err = f(kv)
		if Stop == err {
			return nil
		}
		if nil != err {
			return err
		}
	}
	return nil
}

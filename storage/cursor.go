// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/sbtregistry/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool  *PoolHandle
	start []byte
}

// NewFetchCursor - initialise a cursor to the start of a pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:  p,
		start: []byte{},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.start = key
	return cursor
}

// Fetch - return up to count elements starting from the cursor
// and advance the cursor past the last one
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	iter := cursor.pool.Iterator(cursor.start)

	results := make([]Element, 0, count)
	for len(results) < count && iter.Next() {
		results = append(results, Element{
			Key:   iter.Key(),
			Value: iter.Value(),
		})
	}
	iter.Release()
	err := iter.Error()

	if n := len(results); n > 0 {
		// smallest key greater than the last one returned
		last := results[n-1].Key
		next := make([]byte, len(last)+1)
		copy(next, last)
		cursor.start = next
	}
	return results, err
}

// Map - run a function on elements from the cursor until the end of
// the pool or the function returns an error
//
// returning StopMap ends the scan without error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	iter := cursor.pool.Iterator(cursor.start)

	var err error
iterating:
	for iter.Next() {
		err = f(iter.Key(), iter.Value())
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if StopMap == err {
		return nil
	}
	if nil == err {
		err = iter.Error()
	}
	return err
}

// StopMap - returned by a Map function to end the scan early
var StopMap = fault.ProcessError("stop map")

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/bitmark-inc/sbtregistry/avl"
)

// Iterator - ascending scan over one pool
//
// Key and Value are copies with the pool prefix removed, so they may
// be kept after the next call to Next
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Release()
	Error() error
}

// merge committed leveldb data with pending transaction writes, the
// pending side wins on equal keys and deleted keys are skipped
type mergedIterator struct {
	prefix  byte
	db      iterator.Iterator
	pending *avl.Iterator // nil outside a transaction

	dbOk      bool
	pendingOk bool
	needDB    bool
	needPend  bool
	started   bool

	key   []byte
	value []byte
}

func (it *mergedIterator) advancePending() bool {
	if nil == it.pending || !it.pending.Next() {
		return false
	}
	k := it.pending.Node().Key().(pendingKey)
	return 0 != len(k) && it.prefix == k[0]
}

// Next - move to the next live key
func (it *mergedIterator) Next() bool {
	if !it.started {
		it.started = true
		it.needDB = true
		it.needPend = true
	}
	for {
		if it.needDB {
			it.dbOk = it.db.Next()
			it.needDB = false
		}
		if it.needPend {
			it.pendingOk = it.advancePending()
			it.needPend = false
		}

		switch {
		case !it.dbOk && !it.pendingOk:
			it.key = nil
			it.value = nil
			return false

		case it.dbOk && !it.pendingOk:
			it.set(it.db.Key(), it.db.Value())
			it.needDB = true
			return true
		}

		node := it.pending.Node()
		pk := []byte(node.Key().(pendingKey))
		pv := node.Value().(pendingValue)

		if it.dbOk {
			switch bytes.Compare(it.db.Key(), pk) {
			case -1:
				it.set(it.db.Key(), it.db.Value())
				it.needDB = true
				return true
			case 0:
				it.needDB = true // shadowed by the pending write
			}
		}
		it.needPend = true
		if pv.deleted {
			continue
		}
		it.set(pk, pv.value)
		return true
	}
}

func (it *mergedIterator) set(key []byte, value []byte) {
	it.key = make([]byte, len(key)-1) // strip the prefix
	copy(it.key, key[1:])             // ...
	it.value = make([]byte, len(value))
	copy(it.value, value)
}

// Key - current key without the pool prefix
func (it *mergedIterator) Key() []byte {
	return it.key
}

// Value - current value
func (it *mergedIterator) Value() []byte {
	return it.value
}

// Release - free the underlying leveldb iterator
func (it *mergedIterator) Release() {
	it.db.Release()
	it.pending = nil
}

// Error - any leveldb iteration error
func (it *mergedIterator) Error() error {
	return it.db.Error()
}

type emptyIterator struct{}

func (emptyIterator) Next() bool    { return false }
func (emptyIterator) Key() []byte   { return nil }
func (emptyIterator) Value() []byte { return nil }
func (emptyIterator) Release()      {}
func (emptyIterator) Error() error  { return nil }

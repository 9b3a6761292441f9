// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/avl"
)

// Reader - point and range reads across pools
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Iterator(*PoolHandle, []byte) Iterator
}

// Committed - a Reader over committed data only
var Committed Reader = committedReader{}

type committedReader struct{}

func (committedReader) Get(p *PoolHandle, key []byte) []byte { return p.Get(key) }
func (committedReader) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}
func (committedReader) Has(p *PoolHandle, key []byte) bool { return p.Has(key) }
func (committedReader) Iterator(p *PoolHandle, start []byte) Iterator {
	return p.Iterator(start)
}

// Transaction - all-or-nothing group of writes across pools
//
// reads through a transaction see its own pending writes
type Transaction interface {
	Reader
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Size() int
	Commit() error
	Abort()
}

// key of a pending write: the prefixed database key
type pendingKey []byte

// Compare - ordering for the pending tree
func (k pendingKey) Compare(x interface{}) int {
	return bytes.Compare(k, x.(pendingKey))
}

type pendingValue struct {
	deleted bool
	value   []byte
}

type transactionData struct {
	sync.Mutex
	inUse   bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	pending *avl.Tree
}

func newTransaction(db *leveldb.DB) *transactionData {
	return &transactionData{
		inUse:   false,
		db:      db,
		batch:   new(leveldb.Batch),
		pending: avl.New(),
	}
}

// Begin - claim the transaction
func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fmt.Errorf("transaction already in use")
	}

	t.inUse = true
	return nil
}

// Put - queue a key/value write
func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.pending.Insert(pendingKey(k), pendingValue{value: v})
	t.batch.Put(k, v)
}

// PutN - queue a big endian uint64 write
func (t *transactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, EncodeN(value))
}

// Delete - queue a key removal
func (t *transactionData) Delete(p *PoolHandle, key []byte) {
	k := p.prefixKey(key)
	t.pending.Insert(pendingKey(k), pendingValue{deleted: true})
	t.batch.Delete(k)
}

// Get - read a value, pending writes first
func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	k := p.prefixKey(key)
	if node := t.pending.Search(pendingKey(k)); nil != node {
		pv := node.Value().(pendingValue)
		if pv.deleted {
			return nil
		}
		return pv.value
	}
	value, err := t.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read a big endian uint64, false if not present
func (t *transactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

// Has - check if a key exists, pending writes first
func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	k := p.prefixKey(key)
	if node := t.pending.Search(pendingKey(k)); nil != node {
		return !node.Value().(pendingValue).deleted
	}
	found, err := t.db.Has(k, nil)
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Iterator - ordered scan of committed and pending data
//
// no writes may be made to the transaction while the iterator is in use
func (t *transactionData) Iterator(p *PoolHandle, start []byte) Iterator {
	return &mergedIterator{
		prefix:  p.prefix,
		db:      t.db.NewIterator(p.keyRange(start), nil),
		pending: t.pending.Seek(pendingKey(p.prefixKey(start))),
	}
}

// Size - bytes queued in the batch so far
func (t *transactionData) Size() int {
	return len(t.batch.Dump())
}

// Commit - write all pending data and release the transaction
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fmt.Errorf("transaction not started")
	}
	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard all pending data and release the transaction
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *transactionData) reset() {
	t.batch.Reset()
	t.pending = avl.New()
	t.inUse = false
}

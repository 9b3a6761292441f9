// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sbtregistry/storage"
)

func TestTransactionReadsPending(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	populate(p)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	trx.Put(p, []byte("key-new"), []byte("data-new"))
	trx.Delete(p, []byte("key-one"))
	trx.PutN(p, []byte("key-n"), 7)

	assert.Equal(t, []byte("data-new"), trx.Get(p, []byte("key-new")), "pending put not visible")
	assert.Nil(t, p.Get([]byte("key-new")), "pending put visible outside transaction")
	assert.False(t, trx.Has(p, []byte("key-one")), "pending delete not visible")
	assert.Nil(t, trx.Get(p, []byte("key-one")), "deleted key readable")
	assert.True(t, p.Has([]byte("key-one")), "pending delete visible outside transaction")
	assert.True(t, trx.Has(p, []byte("key-two")), "committed key not visible")

	n, found := trx.GetN(p, []byte("key-n"))
	assert.True(t, found, "pending count missing")
	assert.Equal(t, uint64(7), n, "wrong pending count")
	assert.True(t, trx.Size() > 0, "empty batch size")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.Equal(t, []byte("data-new"), p.Get([]byte("key-new")), "commit lost put")
	assert.False(t, p.Has([]byte("key-one")), "commit lost delete")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	populate(p)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	_, err = storage.NewDBTransaction()
	assert.NotNil(t, err, "second begin allowed")

	trx.Put(p, []byte("key-new"), []byte("data-new"))
	trx.Delete(p, []byte("key-two"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("key-new")), "aborted put committed")
	assert.True(t, p.Has([]byte("key-two")), "aborted delete committed")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort error")
	assert.Nil(t, trx.Get(p, []byte("key-new")), "aborted put still pending")
	assert.Equal(t, 0, trx.Size(), "batch not reset")
	trx.Abort()
}

func TestTransactionIterator(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	populate(p)
	storage.Pool.Tokens.Put([]byte("other-pool"), []byte("x"))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	defer trx.Abort()

	trx.Put(p, []byte("key-four"), []byte("data-four"))
	trx.Delete(p, []byte("key-one"))
	trx.Put(p, []byte("key-two"), []byte("data-two(NEW)"))
	trx.Put(p, []byte("key-zero"), []byte("data-zero"))
	trx.Put(storage.Pool.Banlist, []byte("other-pending"), []byte{})

	expected := makeElements([]stringElement{
		{"key-five", "data-five"},
		{"key-four", "data-four"},
		{"key-three", "data-three"},
		{"key-two", "data-two(NEW)"},
		{"key-zero", "data-zero"},
	})
	assert.Equal(t, expected, collect(t, trx.Iterator(p, nil)), "wrong merged scan")
	assert.Equal(t, expected[2:], collect(t, trx.Iterator(p, []byte("key-t"))), "wrong merged scan from middle")

	// outside the transaction only committed data is seen
	assert.Equal(t, committedElements, collect(t, p.Iterator(nil)), "pending data leaked")
}

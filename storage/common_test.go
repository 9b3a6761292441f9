// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2018 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/sbtregistry/storage"
)

// common test setup routines

// configure for testing
func setup(t *testing.T) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("leveldb open error: %s", err)
	}
	version, err := storage.InitialiseWith(db)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	if storage.CurrentVersion != version {
		t.Fatalf("empty database version: %d  expected: %d", version, storage.CurrentVersion)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// committed data for the test pool
var committedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-one", "data-one"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

func populate(pool *storage.PoolHandle) {
	for _, e := range committedElements {
		pool.Put(e.Key, e.Value)
	}
}

func collect(t *testing.T, iter storage.Iterator) []storage.Element {
	result := []storage.Element{}
	for iter.Next() {
		result = append(result, storage.Element{
			Key:   iter.Key(),
			Value: iter.Value(),
		})
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		t.Fatalf("iterator error: %s", err)
	}
	return result
}

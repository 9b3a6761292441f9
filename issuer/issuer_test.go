// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/fixtures"
	"github.com/bitmark-inc/sbtregistry/issuer"
	"github.com/bitmark-inc/sbtregistry/storage"
)

func setupDirectory(t *testing.T) *issuer.Directory {
	fixtures.SetupTestLogger()

	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("leveldb open error: %s", err)
	}
	_, err = storage.InitialiseWith(db)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	return issuer.New(logger.New(fixtures.LogCategory), issuer.Handles{
		Issuers:     storage.Pool.Issuers,
		IssuerNames: storage.Pool.IssuerNames,
		Registry:    storage.Pool.Registry,
	})
}

func teardownDirectory() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func register(t *testing.T, d *issuer.Directory, name account.Account) (issuer.Id, bool) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	id, added, err := d.Register(trx, name)
	if nil != err {
		trx.Abort()
		t.Fatalf("register error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return id, added
}

func TestRegisterResolve(t *testing.T) {
	d := setupDirectory(t)
	defer teardownDirectory()

	id, added := register(t, d, "issuer-one.near")
	assert.True(t, added, "first registration not added")
	assert.Equal(t, issuer.Id(1), id, "wrong first id")

	id, added = register(t, d, "issuer-two.near")
	assert.True(t, added, "second registration not added")
	assert.Equal(t, issuer.Id(2), id, "wrong second id")

	id, added = register(t, d, "issuer-one.near")
	assert.False(t, added, "duplicate registration added")
	assert.Equal(t, issuer.Id(1), id, "duplicate changed id")

	resolved, err := d.Resolve("issuer-two.near")
	assert.Nil(t, err, "resolve error")
	assert.Equal(t, issuer.Id(2), resolved, "wrong resolved id")

	// second time from cache
	resolved, err = d.Resolve("issuer-two.near")
	assert.Nil(t, err, "cached resolve error")
	assert.Equal(t, issuer.Id(2), resolved, "wrong cached id")

	name, err := d.Name(1)
	assert.Nil(t, err, "name error")
	assert.Equal(t, account.Account("issuer-one.near"), name, "wrong name")

	list, err := d.List()
	assert.Nil(t, err, "list error")
	assert.Equal(t, []account.Account{"issuer-one.near", "issuer-two.near"}, list, "wrong list")
}

func TestUnknownIssuer(t *testing.T) {
	d := setupDirectory(t)
	defer teardownDirectory()

	_, err := d.Resolve("nobody.near")
	assert.Equal(t, fault.UnknownIssuer, err, "unknown issuer resolved")

	_, err = d.Name(7)
	assert.Equal(t, fault.UnknownIssuer, err, "unknown id named")
}

func TestAbortedRegistration(t *testing.T) {
	d := setupDirectory(t)
	defer teardownDirectory()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	id, added, err := d.Register(trx, "issuer-one.near")
	assert.Nil(t, err, "register error")
	assert.True(t, added, "not added")
	assert.Equal(t, issuer.Id(1), id, "wrong id")
	trx.Abort()

	_, err = d.Resolve("issuer-one.near")
	assert.Equal(t, fault.UnknownIssuer, err, "aborted issuer resolved")

	id, _ = register(t, d, "issuer-two.near")
	assert.Equal(t, issuer.Id(1), id, "aborted id not reused")
}

func TestIdBytes(t *testing.T) {
	id := issuer.Id(0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, id.Bytes(), "wrong bytes")
	assert.Equal(t, id, issuer.IdFromBytes(id.Bytes()), "wrong round trip")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Issuers        *PoolHandle `prefix:"I"`
	IssuerNames    *PoolHandle `prefix:"J"`
	Registry       *PoolHandle `prefix:"R"`
	Tokens         *PoolHandle `prefix:"T"`
	NextTokenID    *PoolHandle `prefix:"N"`
	Balances       *PoolHandle `prefix:"B"`
	SupplyByOwner  *PoolHandle `prefix:"O"`
	SupplyByClass  *PoolHandle `prefix:"C"`
	SupplyByIssuer *PoolHandle `prefix:"S"`
	Ongoing        *PoolHandle `prefix:"G"`
	Banlist        *PoolHandle `prefix:"X"`
	TestData       *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// database versions
const (
	VersionInitial  = 1 // tokens, balances, supply, ongoing and banlist
	VersionSettings = 2 // registry settings record added
	CurrentVersion  = VersionSettings
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db  *leveldb.DB
	trx *transactionData
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
// returns the version found on disk, an empty database is tagged with
// the current version
func Initialise(database string, readOnly bool) (int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}
	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return 0, err
	}
	return initialiseDB(db, readOnly)
}

// InitialiseWith - use an already open database, mainly for tests
// using an in-memory leveldb storage
func InitialiseWith(db *leveldb.DB) (int, error) {
	return initialiseDB(db, ReadWrite)
}

func initialiseDB(db *leveldb.DB, readOnly bool) (int, error) {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		if nil != db {
			db.Close()
		}
		return 0, fault.AlreadyInitialised
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return 0, err
	}

	// ensure no database downgrade
	if version > CurrentVersion {
		logger.Criticalf("database version: %d > current version: %d", version, CurrentVersion)
		return version, fault.DowngradeDatabase
	}

	// prevent readOnly from modifying the database
	if readOnly && version != CurrentVersion {
		logger.Criticalf("database is inconsistent: %d  current: %d", version, CurrentVersion)
		return version, fmt.Errorf("database is inconsistent: %d  current: %d", version, CurrentVersion)
	}

	if 0 == version {
		// database was empty so tag as current version
		version = CurrentVersion
		err = putVersion(db, version)
		if nil != err {
			return 0, err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return 0, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	poolData.db = db
	poolData.trx = newTransaction(db)

	ok = true // prevent db close
	return version, nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
		poolData.trx = nil
	}
	Pool = pools{}
	poolData.Unlock()
}

// UpdateVersion - record the database version, called at the end of
// a migration
func UpdateVersion(version int) error {
	poolData.Lock()
	defer poolData.Unlock()
	if nil == poolData.db {
		return fault.DatabaseIsNotSet
	}
	return putVersion(poolData.db, version)
}

// NewDBTransaction - start the single read/write transaction
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()
	if nil == trx {
		return nil, fault.DatabaseIsNotSet
	}
	err := trx.Begin()
	if nil != err {
		return nil, err
	}
	return trx, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

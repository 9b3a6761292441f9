// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package issuer - directory of accounts allowed to mint tokens
//
// each issuer account is given a compact numeric id, the first is 1
// and ids are never reused or changed
package issuer

import (
	"encoding/binary"
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/storage"
)

// Id - compact issuer number
type Id uint32

// IdLength - bytes in a packed Id
const IdLength = 4

// Bytes - big endian key bytes
func (id Id) Bytes() []byte {
	buffer := make([]byte, IdLength)
	binary.BigEndian.PutUint32(buffer, uint32(id))
	return buffer
}

// IdFromBytes - decode the first IdLength bytes
func IdFromBytes(buffer []byte) Id {
	return Id(binary.BigEndian.Uint32(buffer[:IdLength]))
}

// key in the registry pool
var nextIssuerKey = []byte("next-issuer")

const (
	cacheExpiration = 10 * time.Minute
	cacheCleanup    = 20 * time.Minute
)

// Handles - the pools used by the directory
type Handles struct {
	Issuers     *storage.PoolHandle
	IssuerNames *storage.PoolHandle
	Registry    *storage.PoolHandle
}

// Directory - issuer account <-> id mapping
//
// the cache only holds entries read from committed data, so an aborted
// registration never appears in it
type Directory struct {
	log   *logger.L
	pools Handles
	cache *cache.Cache
}

// New - create a directory over the given pools
func New(log *logger.L, pools Handles) *Directory {
	return &Directory{
		log:   log,
		pools: pools,
		cache: cache.New(cacheExpiration, cacheCleanup),
	}
}

// Register - assign the next id to an account inside a transaction
//
// returns the existing id and false if already registered
func (d *Directory) Register(trx storage.Transaction, issuer account.Account) (Id, bool, error) {
	if !issuer.Valid() {
		return 0, false, fault.InvalidAccount
	}
	if buffer := trx.Get(d.pools.Issuers, issuer.Bytes()); nil != buffer {
		return IdFromBytes(buffer), false, nil
	}

	next, _ := trx.GetN(d.pools.Registry, nextIssuerKey)
	if 0 == next {
		next = 1
	}
	id := Id(next)

	trx.Put(d.pools.Issuers, issuer.Bytes(), id.Bytes())
	trx.Put(d.pools.IssuerNames, id.Bytes(), issuer.Bytes())
	trx.PutN(d.pools.Registry, nextIssuerKey, next+1)

	d.log.Infof("register issuer: %s  id: %d", issuer, id)
	return id, true, nil
}

// Resolve - committed id of an issuer
func (d *Directory) Resolve(issuer account.Account) (Id, error) {
	key := "a:" + issuer.String()
	if id, found := d.cache.Get(key); found {
		return id.(Id), nil
	}
	buffer := d.pools.Issuers.Get(issuer.Bytes())
	if nil == buffer {
		return 0, fault.UnknownIssuer
	}
	id := IdFromBytes(buffer)
	d.cache.SetDefault(key, id)
	return id, nil
}

// Name - committed account of an issuer id
func (d *Directory) Name(id Id) (account.Account, error) {
	key := "i:" + strconv.FormatUint(uint64(id), 10)
	if name, found := d.cache.Get(key); found {
		return name.(account.Account), nil
	}
	buffer := d.pools.IssuerNames.Get(id.Bytes())
	if nil == buffer {
		return "", fault.UnknownIssuer
	}
	name := account.Account(buffer)
	d.cache.SetDefault(key, name)
	return name, nil
}

// List - all registered issuers in id order
func (d *Directory) List() ([]account.Account, error) {
	result := []account.Account{}
	err := d.pools.IssuerNames.NewFetchCursor().Map(func(key []byte, value []byte) error {
		result = append(result, account.Account(value))
		return nil
	})
	return result, err
}

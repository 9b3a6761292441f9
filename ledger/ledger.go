// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/issuer"
	"github.com/bitmark-inc/sbtregistry/storage"
	"github.com/bitmark-inc/sbtregistry/token"
)

// default limits
const (
	DefaultMaxTokensPerCall = 100
	DefaultRecoverBatch     = 20
	DefaultByteCost         = 1
	MaximumQueryLimit       = 1000
)

// Configuration - the ledger section of the configuration file
type Configuration struct {
	Authority        string   `gluamapper:"authority" json:"authority"`
	MaxTokensPerCall int      `gluamapper:"max_tokens_per_call" json:"max_tokens_per_call"`
	RecoverBatch     int      `gluamapper:"recover_batch" json:"recover_batch"`
	ByteCost         uint64   `gluamapper:"byte_cost" json:"byte_cost"`
	IahIssuer        string   `gluamapper:"iah_issuer" json:"iah_issuer"`
	IahClasses       []uint64 `gluamapper:"iah_classes" json:"iah_classes"`
}

// Limits - resource budget of a single call, reloadable
type Limits struct {
	MaxTokensPerCall int
	RecoverBatch     int
	ByteCost         uint64
}

// Pools - the storage pools used by the ledger
type Pools struct {
	Tokens         *storage.PoolHandle
	NextTokenID    *storage.PoolHandle
	Balances       *storage.PoolHandle
	SupplyByOwner  *storage.PoolHandle
	SupplyByClass  *storage.PoolHandle
	SupplyByIssuer *storage.PoolHandle
	Ongoing        *storage.PoolHandle
	Banlist        *storage.PoolHandle
	Registry       *storage.PoolHandle
}

// Ledger - the token registry
type Ledger struct {
	sync.RWMutex // mutations hold the write lock, queries a read lock

	log      *logger.L
	pools    Pools
	issuers  *issuer.Directory
	settings Settings

	limitsLock sync.RWMutex
	limits     Limits

	now func() uint64 // milliseconds
}

// New - create a ledger over the global storage pools
//
// the stored settings record wins over the configuration; when the
// database has none it is written from the configuration
func New(log *logger.L, conf Configuration) (*Ledger, error) {
	if nil == log {
		return nil, fault.NotInitialised
	}

	l := &Ledger{
		log: log,
		pools: Pools{
			Tokens:         storage.Pool.Tokens,
			NextTokenID:    storage.Pool.NextTokenID,
			Balances:       storage.Pool.Balances,
			SupplyByOwner:  storage.Pool.SupplyByOwner,
			SupplyByClass:  storage.Pool.SupplyByClass,
			SupplyByIssuer: storage.Pool.SupplyByIssuer,
			Ongoing:        storage.Pool.Ongoing,
			Banlist:        storage.Pool.Banlist,
			Registry:       storage.Pool.Registry,
		},
		issuers: issuer.New(log, issuer.Handles{
			Issuers:     storage.Pool.Issuers,
			IssuerNames: storage.Pool.IssuerNames,
			Registry:    storage.Pool.Registry,
		}),
		now: nowMillis,
	}
	if nil == l.pools.Tokens {
		return nil, fault.DatabaseIsNotSet
	}

	l.SetLimits(conf.Limits())

	settings, err := l.loadSettings(conf)
	if nil != err {
		return nil, err
	}
	l.settings = *settings

	log.Infof("authority: %s  iah issuer: %q  iah classes: %v", settings.Authority, settings.IahIssuer, settings.IahClasses)
	return l, nil
}

func nowMillis() uint64 {
	return uint64(time.Now().UnixNano() / int64(time.Millisecond))
}

// SetClock - replace the millisecond clock
func (l *Ledger) SetClock(now func() uint64) {
	l.Lock()
	l.now = now
	l.Unlock()
}

// Limits - the limits from a configuration, defaults filled in
func (conf Configuration) Limits() Limits {
	limits := Limits{
		MaxTokensPerCall: conf.MaxTokensPerCall,
		RecoverBatch:     conf.RecoverBatch,
		ByteCost:         conf.ByteCost,
	}
	if limits.MaxTokensPerCall <= 0 {
		limits.MaxTokensPerCall = DefaultMaxTokensPerCall
	}
	if limits.RecoverBatch <= 0 {
		limits.RecoverBatch = DefaultRecoverBatch
	}
	if 0 == limits.ByteCost {
		limits.ByteCost = DefaultByteCost
	}
	return limits
}

// Settings - the settings record from a configuration
func (conf Configuration) Settings() (*Settings, error) {
	s := &Settings{
		Authority: account.Account(conf.Authority),
		IahIssuer: account.Account(conf.IahIssuer),
	}
	if !s.Authority.Valid() {
		return nil, fault.ConfigurationError
	}
	if "" != s.IahIssuer && !s.IahIssuer.Valid() {
		return nil, fault.ConfigurationError
	}
	for _, c := range conf.IahClasses {
		if 0 == c {
			return nil, fault.ZeroClass
		}
		s.IahClasses = append(s.IahClasses, token.ClassId(c))
	}
	return s, nil
}

// SetLimits - replace the per call limits
func (l *Ledger) SetLimits(limits Limits) {
	l.limitsLock.Lock()
	l.limits = limits
	l.limitsLock.Unlock()
	l.log.Infof("limits: max tokens per call: %d  recover batch: %d  byte cost: %d", limits.MaxTokensPerCall, limits.RecoverBatch, limits.ByteCost)
}

// CurrentLimits - the per call limits in force
func (l *Ledger) CurrentLimits() Limits {
	l.limitsLock.RLock()
	defer l.limitsLock.RUnlock()
	return l.limits
}

// Authority - the account allowed to administer the registry
func (l *Ledger) Authority() account.Account {
	return l.settings.Authority
}

// Issuers - the issuer directory
func (l *Ledger) Issuers() *issuer.Directory {
	return l.issuers
}

func (l *Ledger) loadSettings(conf Configuration) (*Settings, error) {
	if buffer := l.pools.Registry.Get(settingsKey); nil != buffer {
		return unpackSettings(buffer)
	}

	settings, err := conf.Settings()
	if nil != err {
		return nil, err
	}
	err = l.storeSettings(settings)
	if nil != err {
		return nil, err
	}
	return settings, nil
}

func (l *Ledger) storeSettings(settings *Settings) error {
	packed, err := settings.pack()
	if nil != err {
		return err
	}
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(l.pools.Registry, settingsKey, packed)
	return trx.Commit()
}

// run f inside a fresh transaction, committing only when it succeeds
func (l *Ledger) update(f func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// load a token through any reader, nil when absent
func (l *Ledger) loadToken(r storage.Reader, id issuer.Id, t token.Id) (*token.Record, error) {
	packed := r.Get(l.pools.Tokens, tokenKey(id, t))
	if nil == packed {
		return nil, nil
	}
	return token.Packed(packed).Unpack()
}

func (l *Ledger) storeToken(trx storage.Transaction, id issuer.Id, t token.Id, record *token.Record) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	trx.Put(l.pools.Tokens, tokenKey(id, t), packed)
	return nil
}

// add to a counter
func increment(trx storage.Transaction, pool *storage.PoolHandle, key []byte, n uint64) {
	value, _ := trx.GetN(pool, key)
	trx.PutN(pool, key, value+n)
}

// subtract from a counter, deleting it at zero, never below zero
func (l *Ledger) decrement(trx storage.Transaction, pool *storage.PoolHandle, key []byte, n uint64) error {
	value, _ := trx.GetN(pool, key)
	if value < n {
		l.log.Criticalf("counter underflow: key: %x  value: %d  decrement: %d", key, value, n)
		return fault.CounterUnderflow
	}
	if value == n {
		trx.Delete(pool, key)
	} else {
		trx.PutN(pool, key, value-n)
	}
	return nil
}

func (l *Ledger) isBanned(r storage.Reader, a account.Account) bool {
	return r.Has(l.pools.Banlist, a.Bytes())
}

func (l *Ledger) isGuarded(a account.Account) bool {
	return l.pools.Ongoing.Has(a.Bytes())
}

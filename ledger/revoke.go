// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/event"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/issuer"
	"github.com/bitmark-inc/sbtregistry/storage"
	"github.com/bitmark-inc/sbtregistry/token"
)

// Revoke - burn or expire tokens of the calling issuer
//
// burn removes the tokens and their balance entries; otherwise the
// tokens stay in place with their expiry set to now
func (l *Ledger) Revoke(caller account.Account, ids []token.Id, burn bool) error {
	if nil == ids {
		ids = []token.Id{}
	}

	l.Lock()
	events, err := l.revokeCall(caller, burn, true, func(storage.Transaction, issuer.Id) ([]token.Id, error) {
		return ids, nil
	})
	l.Unlock()

	observe("revoke", err)
	if nil != err {
		return err
	}
	events.Send()
	return nil
}

// RevokeByOwner - burn or expire every token the calling issuer gave to owner
//
// includes expired tokens and ignores any recover in progress; an
// owner with nothing to revoke emits no events
func (l *Ledger) RevokeByOwner(caller account.Account, owner account.Account, burn bool) error {
	l.Lock()
	events, err := l.revokeCall(caller, burn, false, func(trx storage.Transaction, issuerId issuer.Id) ([]token.Id, error) {
		return l.ownerTokenIds(trx, owner, issuerId, 0)
	})
	l.Unlock()

	observe("revoke_by_owner", err)
	if nil != err {
		return err
	}
	events.Send()
	return nil
}

// all token ids of owner from one issuer in balance order, at most
// limit when limit > 0
func (l *Ledger) ownerTokenIds(r storage.Reader, owner account.Account, issuerId issuer.Id, limit int) ([]token.Id, error) {
	ids := []token.Id{}
	err := l.ownerBalances(r, owner, issuerId, func(_ token.ClassId, id token.Id) bool {
		ids = append(ids, id)
		return limit <= 0 || len(ids) < limit
	})
	return ids, err
}

// visit the balance entries of owner from one issuer in class order
// until f returns false
func (l *Ledger) ownerBalances(r storage.Reader, owner account.Account, issuerId issuer.Id, f func(token.ClassId, token.Id) bool) error {
	prefix := ownerPrefix(owner)
	iter := r.Iterator(l.pools.Balances, ownerIssuerKey(owner, issuerId))
	defer iter.Release()

	for iter.Next() {
		id, class, ok := splitBalanceKey(prefix, iter.Key())
		if !ok || id != issuerId {
			break
		}
		if !f(class, token.Id(storage.DecodeN(iter.Value()))) {
			break
		}
	}
	return iter.Error()
}

// announceEmpty: emit the events even when no token was selected
func (l *Ledger) revokeCall(caller account.Account, burn bool, announceEmpty bool, selector func(storage.Transaction, issuer.Id) ([]token.Id, error)) (event.List, error) {
	issuerId, err := l.issuers.Resolve(caller)
	if nil != err {
		return nil, err
	}
	limit := l.CurrentLimits().MaxTokensPerCall

	events := event.List{}
	burned := 0
	err = l.update(func(trx storage.Transaction) error {
		ids, err := selector(trx, issuerId)
		if nil != err {
			return err
		}
		if 0 == len(ids) && !announceEmpty {
			return nil
		}
		if len(ids) > limit {
			return fault.TooManyTokens
		}

		if burn {
			if 0 != len(ids) {
				err = l.burn(trx, issuerId, ids)
				if nil != err {
					return err
				}
				burned = len(ids)
			}
			events = append(events, event.Burn(caller, ids))
		} else {
			err = l.expire(trx, issuerId, ids)
			if nil != err {
				return err
			}
		}
		events = append(events, event.Revoke(caller, ids))
		return nil
	})
	if nil != err {
		l.log.Debugf("revoke: issuer: %s  burn: %t  error: %s", caller, burn, err)
		return nil, err
	}

	// only count after the commit
	tokensBurned.Add(float64(burned))
	return events, nil
}

// remove tokens, then apply the counter decrements in a second pass
func (l *Ledger) burn(trx storage.Transaction, issuerId issuer.Id, ids []token.Id) error {
	classCounts := make(map[token.ClassId]uint64)
	ownerCounts := make(map[account.Account]uint64)

	for _, id := range ids {
		record, err := l.loadToken(trx, issuerId, id)
		if nil != err {
			return err
		}
		if nil == record {
			l.log.Criticalf("burn: issuer: %d  token: %d is missing", issuerId, id)
			return fault.MissingToken
		}
		trx.Delete(l.pools.Tokens, tokenKey(issuerId, id))
		trx.Delete(l.pools.Balances, balanceKey(record.Owner, issuerId, record.Metadata.Class))
		classCounts[record.Metadata.Class] += 1
		ownerCounts[record.Owner] += 1
	}

	for class, n := range classCounts {
		err := l.decrement(trx, l.pools.SupplyByClass, classKey(issuerId, class), n)
		if nil != err {
			return err
		}
	}
	for owner, n := range ownerCounts {
		err := l.decrement(trx, l.pools.SupplyByOwner, ownerIssuerKey(owner, issuerId), n)
		if nil != err {
			return err
		}
	}
	return l.decrement(trx, l.pools.SupplyByIssuer, issuerId.Bytes(), uint64(len(ids)))
}

// set the expiry of tokens to now
func (l *Ledger) expire(trx storage.Transaction, issuerId issuer.Id, ids []token.Id) error {
	return l.setExpiry(trx, issuerId, ids, l.now())
}

func (l *Ledger) setExpiry(trx storage.Transaction, issuerId issuer.Id, ids []token.Id, at uint64) error {
	for _, id := range ids {
		record, err := l.loadToken(trx, issuerId, id)
		if nil != err {
			return err
		}
		if nil == record {
			return fault.NotTokenOwner
		}
		record.Metadata.SetExpiry(at)
		err = l.storeToken(trx, issuerId, id, record)
		if nil != err {
			return err
		}
	}
	return nil
}

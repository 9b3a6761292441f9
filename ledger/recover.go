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

// Recover - move every token of the calling issuer from one owner to another
//
// moves at most one batch per call and returns the number moved and
// whether nothing is left; while tokens remain the source account is
// guarded and reads as empty
func (l *Ledger) Recover(caller account.Account, from account.Account, to account.Account) (uint32, bool, error) {
	l.Lock()
	moved, done, events, err := l.recover(caller, from, to)
	l.Unlock()

	observe("recover", err)
	if nil != err {
		l.log.Debugf("recover: issuer: %s  from: %s  to: %s  error: %s", caller, from, to, err)
		return 0, false, err
	}
	events.Send()
	return moved, done, nil
}

func (l *Ledger) recover(caller account.Account, from account.Account, to account.Account) (uint32, bool, event.List, error) {
	issuerId, err := l.issuers.Resolve(caller)
	if nil != err {
		return 0, false, nil, err
	}
	if !from.Valid() || !to.Valid() || from == to {
		return 0, false, nil, fault.InvalidRecoverTarget
	}
	batch := l.CurrentLimits().RecoverBatch

	moved := 0
	done := false
	events := event.List{}

	err = l.update(func(trx storage.Transaction) error {
		if l.isBanned(trx, to) {
			return fault.AccountBanned
		}

		guard := trx.Get(l.pools.Ongoing, from.Bytes())
		if nil != guard {
			if owner, ok := guardIssuer(guard); !ok || owner != issuerId {
				return fault.RecoverInProgress
			}
		}

		// nothing moves while any remaining class would collide at to
		err := l.checkRecoverTarget(trx, issuerId, from, to)
		if nil != err {
			return err
		}

		// one beyond the batch shows whether anything remains
		ids, err := l.ownerTokenIds(trx, from, issuerId, batch+1)
		if nil != err {
			return err
		}
		done = len(ids) <= batch
		if !done {
			ids = ids[:batch]
		}

		for _, id := range ids {
			err := l.reassign(trx, issuerId, id, from, to)
			if nil != err {
				return err
			}
		}
		moved = len(ids)

		if moved > 0 {
			err = l.decrement(trx, l.pools.SupplyByOwner, ownerIssuerKey(from, issuerId), uint64(moved))
			if nil != err {
				return err
			}
			increment(trx, l.pools.SupplyByOwner, ownerIssuerKey(to, issuerId), uint64(moved))
		}

		if !done {
			trx.Put(l.pools.Ongoing, from.Bytes(), guardValue(issuerId, ids[moved-1]))
			return nil
		}
		if nil != guard || moved > 0 {
			trx.Delete(l.pools.Ongoing, from.Bytes())
			events = append(events, event.Recover(caller, from, to))
		}
		return nil
	})
	if nil != err {
		return 0, false, nil, err
	}

	l.log.Debugf("recover: issuer: %s  from: %s  to: %s  moved: %d  done: %t", caller, from, to, moved, done)
	return uint32(moved), done, events, nil
}

// BalanceKeyOccupied if to holds a class that from still holds
func (l *Ledger) checkRecoverTarget(trx storage.Transaction, issuerId issuer.Id, from account.Account, to account.Account) error {
	occupied := false
	err := l.ownerBalances(trx, from, issuerId, func(class token.ClassId, _ token.Id) bool {
		occupied = trx.Has(l.pools.Balances, balanceKey(to, issuerId, class))
		return !occupied
	})
	if nil != err {
		return err
	}
	if occupied {
		return fault.BalanceKeyOccupied
	}
	return nil
}

// move one token and its balance entry to a new owner
func (l *Ledger) reassign(trx storage.Transaction, issuerId issuer.Id, id token.Id, from account.Account, to account.Account) error {
	record, err := l.loadToken(trx, issuerId, id)
	if nil != err {
		return err
	}
	if nil == record || record.Owner != from {
		l.log.Criticalf("recover: issuer: %d  token: %d  not held by: %s", issuerId, id, from)
		return fault.MissingToken
	}

	class := record.Metadata.Class
	newKey := balanceKey(to, issuerId, class)
	if trx.Has(l.pools.Balances, newKey) {
		return fault.BalanceKeyOccupied
	}
	trx.Delete(l.pools.Balances, balanceKey(from, issuerId, class))
	trx.PutN(l.pools.Balances, newKey, uint64(id))

	record.Owner = to
	return l.storeToken(trx, issuerId, id, record)
}

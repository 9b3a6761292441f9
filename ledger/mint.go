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

// MintItem - tokens for one owner
type MintItem struct {
	Owner    account.Account  `json:"owner"`
	Metadata []token.Metadata `json:"metadata"`
}

// Mint - create tokens for the calling issuer
//
// returns the new token ids in request order and the unused part of
// the deposit; on any error nothing is written and the whole deposit
// is returned
func (l *Ledger) Mint(caller account.Account, items []MintItem, deposit uint64) ([]token.Id, uint64, error) {
	l.Lock()
	ids, refund, events, err := l.mint(caller, items, deposit)
	l.Unlock()

	observe("mint", err)
	if nil != err {
		l.log.Debugf("mint: issuer: %s  error: %s", caller, err)
		return nil, deposit, err
	}
	events.Send()
	tokensMinted.Add(float64(len(ids)))
	return ids, refund, nil
}

func (l *Ledger) mint(caller account.Account, items []MintItem, deposit uint64) ([]token.Id, uint64, event.List, error) {
	issuerId, err := l.issuers.Resolve(caller)
	if nil != err {
		return nil, 0, nil, err
	}

	limits := l.CurrentLimits()
	total := 0
	for _, item := range items {
		total += len(item.Metadata)
	}
	if total > limits.MaxTokensPerCall {
		return nil, 0, nil, fault.TooManyTokens
	}

	ids := make([]token.Id, 0, total)
	owners := make([]event.OwnerTokens, 0, len(items))
	cost := uint64(0)

	err = l.update(func(trx storage.Transaction) error {
		next, _ := trx.GetN(l.pools.NextTokenID, issuerId.Bytes())
		now := l.now()

		for _, item := range items {
			minted, err := l.mintOwner(trx, issuerId, item, &next, now)
			if nil != err {
				return err
			}
			if 0 == len(minted) {
				continue
			}
			ids = append(ids, minted...)
			owners = append(owners, event.OwnerTokens{Owner: item.Owner, Tokens: minted})
		}

		if 0 != len(ids) {
			trx.PutN(l.pools.NextTokenID, issuerId.Bytes(), next)
			increment(trx, l.pools.SupplyByIssuer, issuerId.Bytes(), uint64(len(ids)))
		}

		cost = uint64(trx.Size()) * limits.ByteCost
		if deposit < cost {
			l.log.Debugf("mint: deposit: %d  required: %d", deposit, cost)
			return fault.InsufficientDeposit
		}
		return nil
	})
	if nil != err {
		return nil, 0, nil, err
	}

	l.log.Debugf("mint: issuer: %s  tokens: %v  cost: %d", caller, ids, cost)
	events := event.List{}
	if 0 != len(owners) {
		events = append(events, event.Mint(caller, owners))
	}
	return ids, deposit - cost, events, nil
}

func (l *Ledger) mintOwner(trx storage.Transaction, issuerId issuer.Id, item MintItem, next *uint64, now uint64) ([]token.Id, error) {
	if !item.Owner.Valid() {
		return nil, fault.InvalidAccount
	}
	if l.isBanned(trx, item.Owner) {
		return nil, fault.AccountBanned
	}

	minted := make([]token.Id, 0, len(item.Metadata))
	for _, metadata := range item.Metadata {
		if 0 == metadata.Class {
			return nil, fault.ZeroClass
		}
		if 0 == metadata.IssuedAt {
			metadata.IssuedAt = now
		}

		key := balanceKey(item.Owner, issuerId, metadata.Class)
		if trx.Has(l.pools.Balances, key) {
			return nil, fault.BalanceKeyOccupied
		}

		*next += 1
		id := token.Id(*next)

		record := &token.Record{
			Owner:    item.Owner,
			Metadata: metadata,
		}
		err := l.storeToken(trx, issuerId, id, record)
		if nil != err {
			return nil, err
		}
		trx.PutN(l.pools.Balances, key, uint64(id))
		increment(trx, l.pools.SupplyByClass, classKey(issuerId, metadata.Class), 1)
		minted = append(minted, id)
	}

	if 0 != len(minted) {
		increment(trx, l.pools.SupplyByOwner, ownerIssuerKey(item.Owner, issuerId), uint64(len(minted)))
	}
	return minted, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/issuer"
	"github.com/bitmark-inc/sbtregistry/storage"
	"github.com/bitmark-inc/sbtregistry/token"
)

// IssuerTokens - the tokens of one issuer held by an account
type IssuerTokens struct {
	Issuer account.Account    `json:"issuer"`
	Tokens []token.OwnedToken `json:"tokens"`
}

// OwnerQuery - arguments of TokensByOwner
type OwnerQuery struct {
	Account     account.Account
	Issuer      *account.Account
	FromClass   *token.ClassId
	Limit       *int
	WithExpired bool
}

// IssuerQuery - arguments of TokensByIssuer
type IssuerQuery struct {
	Issuer      account.Account
	FromToken   *token.Id
	Limit       *int
	WithExpired bool
}

func queryLimit(limit *int) (int, error) {
	if nil == limit {
		return MaximumQueryLimit, nil
	}
	if *limit <= 0 {
		return 0, fault.InvalidLimit
	}
	if *limit > MaximumQueryLimit {
		return MaximumQueryLimit, nil
	}
	return *limit, nil
}

// TokensByOwner - tokens held by an account grouped by issuer
//
// scans the balance index from (account, issuer, from class); a
// named issuer must be registered
func (l *Ledger) TokensByOwner(q OwnerQuery) ([]IssuerTokens, error) {
	l.RLock()
	defer l.RUnlock()

	limit, err := queryLimit(q.Limit)
	if nil != err {
		return nil, err
	}
	if nil != q.FromClass && nil == q.Issuer {
		return nil, fault.FromClassWithoutIssuer
	}

	prefix := ownerPrefix(q.Account)
	start := prefix
	only := issuer.Id(0)
	if nil != q.Issuer {
		only, err = l.issuers.Resolve(*q.Issuer)
		if nil != err {
			return nil, err
		}
		class := token.ClassId(0)
		if nil != q.FromClass {
			class = *q.FromClass
		}
		start = balanceKey(q.Account, only, class)
	}

	result := []IssuerTokens{}
	if !q.Account.Valid() || l.isGuarded(q.Account) {
		return result, nil
	}

	now := l.now()
	emitted := 0
	lastIssuer := issuer.Id(0)

	iter := l.pools.Balances.Iterator(start)
	defer iter.Release()

scan:
	for iter.Next() {
		issuerId, _, ok := splitBalanceKey(prefix, iter.Key())
		if !ok {
			break scan
		}
		if nil != q.Issuer && issuerId != only {
			break scan
		}

		id := token.Id(storage.DecodeN(iter.Value()))
		record, err := l.loadToken(storage.Committed, issuerId, id)
		if nil != err {
			return nil, err
		}
		if nil == record {
			l.log.Criticalf("balance entry: %x  token: %d is missing", iter.Key(), id)
			return nil, fault.MissingToken
		}
		if !q.WithExpired && record.Metadata.IsExpired(now) {
			continue scan
		}

		if 0 == len(result) || issuerId != lastIssuer {
			name, err := l.issuers.Name(issuerId)
			if nil != err {
				return nil, err
			}
			result = append(result, IssuerTokens{Issuer: name})
			lastIssuer = issuerId
		}
		group := &result[len(result)-1]
		group.Tokens = append(group.Tokens, token.OwnedToken{
			Token:    id,
			Metadata: record.Metadata,
		})

		emitted += 1
		if emitted >= limit {
			break scan
		}
	}
	return result, iter.Error()
}

// TokensByIssuer - tokens of one issuer in ascending token id order
//
// missing ids are skipped; the limit counts returned tokens
func (l *Ledger) TokensByIssuer(q IssuerQuery) ([]token.Token, error) {
	l.RLock()
	defer l.RUnlock()

	from := token.Id(1)
	if nil != q.FromToken {
		if *q.FromToken < 1 {
			return nil, fault.InvalidFromToken
		}
		from = *q.FromToken
	}
	limit, err := queryLimit(q.Limit)
	if nil != err {
		return nil, err
	}

	result := []token.Token{}
	issuerId, err := l.issuers.Resolve(q.Issuer)
	if fault.IsErrNotFound(err) {
		return result, nil
	} else if nil != err {
		return nil, err
	}

	last, _ := l.pools.NextTokenID.GetN(issuerId.Bytes())
	now := l.now()

	iter := l.pools.Tokens.Iterator(tokenKey(issuerId, from))
	defer iter.Release()

	for len(result) < limit && iter.Next() {
		id, ok := splitTokenKey(issuerId, iter.Key())
		if !ok || uint64(id) > last {
			break
		}
		record, err := token.Packed(iter.Value()).Unpack()
		if nil != err {
			return nil, err
		}
		if !q.WithExpired && record.Metadata.IsExpired(now) {
			continue
		}
		result = append(result, token.Token{
			Token:    id,
			Owner:    record.Owner,
			Metadata: record.Metadata,
		})
	}
	return result, iter.Error()
}

// Token - a single token, nil when absent
func (l *Ledger) Token(issuerName account.Account, id token.Id) (*token.Token, error) {
	l.RLock()
	defer l.RUnlock()

	tokens, err := l.tokens(issuerName, []token.Id{id})
	if nil != err {
		return nil, err
	}
	return tokens[0], nil
}

// Tokens - one entry per id, nil for absent tokens
func (l *Ledger) Tokens(issuerName account.Account, ids []token.Id) ([]*token.Token, error) {
	l.RLock()
	defer l.RUnlock()

	return l.tokens(issuerName, ids)
}

func (l *Ledger) tokens(issuerName account.Account, ids []token.Id) ([]*token.Token, error) {
	issuerId, err := l.issuers.Resolve(issuerName)
	if nil != err {
		return nil, err
	}

	result := make([]*token.Token, len(ids))
	for i, id := range ids {
		record, err := l.loadToken(storage.Committed, issuerId, id)
		if nil != err {
			return nil, err
		}
		if nil == record {
			continue
		}
		result[i] = &token.Token{
			Token:    id,
			Owner:    record.Owner,
			Metadata: record.Metadata,
		}
	}
	return result, nil
}

// Classes - class of each token, nil for absent tokens
func (l *Ledger) Classes(issuerName account.Account, ids []token.Id) ([]*token.ClassId, error) {
	l.RLock()
	defer l.RUnlock()

	tokens, err := l.tokens(issuerName, ids)
	if nil != err {
		return nil, err
	}
	result := make([]*token.ClassId, len(ids))
	for i, t := range tokens {
		if nil != t {
			class := t.Metadata.Class
			result[i] = &class
		}
	}
	return result, nil
}

// Supply - live tokens of an issuer
func (l *Ledger) Supply(issuerName account.Account) uint64 {
	l.RLock()
	defer l.RUnlock()

	issuerId, err := l.issuers.Resolve(issuerName)
	if nil != err {
		return 0
	}
	n, _ := l.pools.SupplyByIssuer.GetN(issuerId.Bytes())
	return n
}

// SupplyByClass - live tokens of one issuer class
func (l *Ledger) SupplyByClass(issuerName account.Account, class token.ClassId) uint64 {
	l.RLock()
	defer l.RUnlock()

	issuerId, err := l.issuers.Resolve(issuerName)
	if nil != err {
		return 0
	}
	n, _ := l.pools.SupplyByClass.GetN(classKey(issuerId, class))
	return n
}

// SupplyByOwner - tokens an account holds from an issuer, optionally of one class
func (l *Ledger) SupplyByOwner(owner account.Account, issuerName account.Account, class *token.ClassId) uint64 {
	l.RLock()
	defer l.RUnlock()

	if !owner.Valid() || l.isGuarded(owner) {
		return 0
	}
	issuerId, err := l.issuers.Resolve(issuerName)
	if nil != err {
		return 0
	}
	if nil != class {
		if l.pools.Balances.Has(balanceKey(owner, issuerId, *class)) {
			return 1
		}
		return 0
	}
	n, _ := l.pools.SupplyByOwner.GetN(ownerIssuerKey(owner, issuerId))
	return n
}

// IsBanned - true if the account is on the banlist
func (l *Ledger) IsBanned(a account.Account) bool {
	l.RLock()
	defer l.RUnlock()

	return l.isBanned(storage.Committed, a)
}

// IsHuman - proof of personhood for an account
//
// non-empty only when the account holds a live token of every
// configured class from the configured issuer
func (l *Ledger) IsHuman(a account.Account) ([]IssuerTokens, error) {
	l.RLock()
	defer l.RUnlock()

	result := []IssuerTokens{}
	settings := l.settings
	if "" == settings.IahIssuer || 0 == len(settings.IahClasses) {
		return result, nil
	}
	if !a.Valid() || l.isBanned(storage.Committed, a) || l.isGuarded(a) {
		return result, nil
	}

	issuerId, err := l.issuers.Resolve(settings.IahIssuer)
	if fault.IsErrNotFound(err) {
		return result, nil
	} else if nil != err {
		return nil, err
	}

	now := l.now()
	proof := IssuerTokens{Issuer: settings.IahIssuer}
	for _, class := range settings.IahClasses {
		value := l.pools.Balances.Get(balanceKey(a, issuerId, class))
		if nil == value {
			return result, nil
		}
		id := token.Id(storage.DecodeN(value))
		record, err := l.loadToken(storage.Committed, issuerId, id)
		if nil != err {
			return nil, err
		}
		if nil == record || record.Metadata.IsExpired(now) {
			return result, nil
		}
		proof.Tokens = append(proof.Tokens, token.OwnedToken{
			Token:    id,
			Metadata: record.Metadata,
		})
	}
	return append(result, proof), nil
}

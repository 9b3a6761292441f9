// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/token"
)

func tokenIds(tokens []token.Token) []token.Id {
	ids := make([]token.Id, 0, len(tokens))
	for _, t := range tokens {
		ids = append(ids, t.Token)
	}
	return ids
}

func ownedIds(tokens []token.OwnedToken) []token.Id {
	ids := make([]token.Id, 0, len(tokens))
	for _, t := range tokens {
		ids = append(ids, t.Token)
	}
	return ids
}

func TestTokensByIssuerHole(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	mintClasses(t, l, issuerX, alice, classRange(1, 7)...)
	err := l.Revoke(issuerX, []token.Id{6}, true)
	assert.Nil(t, err, "burn error")

	from := token.Id(5)
	tokens, err := l.TokensByIssuer(ledger.IssuerQuery{Issuer: issuerX, FromToken: &from, Limit: intPtr(2)})
	assert.Nil(t, err, "query error")
	assert.Equal(t, []token.Id{5, 7}, tokenIds(tokens), "wrong tokens")
	assert.Equal(t, alice, tokens[0].Owner, "wrong owner")

	tokens, err = l.TokensByIssuer(ledger.IssuerQuery{Issuer: issuerX})
	assert.Nil(t, err, "query error")
	assert.Equal(t, []token.Id{1, 2, 3, 4, 5, 7}, tokenIds(tokens), "wrong tokens")

	// expired tokens are skipped unless requested
	err = l.Revoke(issuerX, []token.Id{2}, false)
	assert.Nil(t, err, "revoke error")
	tokens, err = l.TokensByIssuer(ledger.IssuerQuery{Issuer: issuerX, Limit: intPtr(2)})
	assert.Nil(t, err, "query error")
	assert.Equal(t, []token.Id{1, 3}, tokenIds(tokens), "expired token listed")
	tokens, err = l.TokensByIssuer(ledger.IssuerQuery{Issuer: issuerX, Limit: intPtr(2), WithExpired: true})
	assert.Nil(t, err, "query error")
	assert.Equal(t, []token.Id{1, 2}, tokenIds(tokens), "expired token missing")

	// past the end
	from = 8
	tokens, err = l.TokensByIssuer(ledger.IssuerQuery{Issuer: issuerX, FromToken: &from})
	assert.Nil(t, err, "query error")
	assert.Empty(t, tokens, "tokens past the last id")

	tokens, err = l.TokensByIssuer(ledger.IssuerQuery{Issuer: "nobody.near"})
	assert.Nil(t, err, "unknown issuer error")
	assert.Empty(t, tokens, "unknown issuer tokens")

	// issuer Y tokens are never listed for X
	mintClasses(t, l, issuerY, bob, 1)
	tokens, err = l.TokensByIssuer(ledger.IssuerQuery{Issuer: issuerY})
	assert.Nil(t, err, "query error")
	assert.Equal(t, []token.Id{1}, tokenIds(tokens), "wrong Y tokens")
	assert.Equal(t, bob, tokens[0].Owner, "wrong Y owner")
}

func TestTokensByIssuerArguments(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	zero := token.Id(0)
	_, err := l.TokensByIssuer(ledger.IssuerQuery{Issuer: issuerX, FromToken: &zero})
	assert.Equal(t, fault.InvalidFromToken, err, "from token 0 accepted")

	_, err = l.TokensByIssuer(ledger.IssuerQuery{Issuer: issuerX, Limit: intPtr(0)})
	assert.Equal(t, fault.InvalidLimit, err, "limit 0 accepted")
}

func TestTokensByOwner(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	mintClasses(t, l, issuerX, alice, 1, 2, 3)
	mintClasses(t, l, issuerY, alice, 1)
	mintClasses(t, l, issuerX, bob, 1)
	mintClasses(t, l, issuerX, "alice.near2", 1)

	groups, err := l.TokensByOwner(ledger.OwnerQuery{Account: alice})
	assert.Nil(t, err, "query error")
	assert.Equal(t, 2, len(groups), "wrong group count")
	assert.Equal(t, issuerX, groups[0].Issuer, "wrong first issuer")
	assert.Equal(t, []token.Id{1, 2, 3}, ownedIds(groups[0].Tokens), "wrong X tokens")
	assert.Equal(t, issuerY, groups[1].Issuer, "wrong second issuer")
	assert.Equal(t, []token.Id{1}, ownedIds(groups[1].Tokens), "wrong Y tokens")
	assert.Equal(t, token.ClassId(3), groups[0].Tokens[2].Metadata.Class, "wrong class")

	groups, err = l.TokensByOwner(ledger.OwnerQuery{Account: alice, Issuer: &issuerY})
	assert.Nil(t, err, "query error")
	assert.Equal(t, 1, len(groups), "issuer filter ignored")
	assert.Equal(t, issuerY, groups[0].Issuer, "wrong issuer")

	groups, err = l.TokensByOwner(ledger.OwnerQuery{Account: alice, Issuer: &issuerX, FromClass: classPtr(2)})
	assert.Nil(t, err, "query error")
	assert.Equal(t, 1, len(groups), "scan left the issuer")
	assert.Equal(t, []token.Id{2, 3}, ownedIds(groups[0].Tokens), "from class ignored")

	groups, err = l.TokensByOwner(ledger.OwnerQuery{Account: alice, Limit: intPtr(4)})
	assert.Nil(t, err, "query error")
	assert.Equal(t, 2, len(groups), "limit cut too early")

	groups, err = l.TokensByOwner(ledger.OwnerQuery{Account: alice, Limit: intPtr(2)})
	assert.Nil(t, err, "query error")
	assert.Equal(t, 1, len(groups), "limit ignored")
	assert.Equal(t, []token.Id{1, 2}, ownedIds(groups[0].Tokens), "limit ignored")

	groups, err = l.TokensByOwner(ledger.OwnerQuery{Account: bob})
	assert.Nil(t, err, "query error")
	assert.Equal(t, 1, len(groups), "other owner leaked")
	assert.Equal(t, []token.Id{4}, ownedIds(groups[0].Tokens), "wrong bob tokens")

	groups, err = l.TokensByOwner(ledger.OwnerQuery{Account: carol})
	assert.Nil(t, err, "query error")
	assert.Empty(t, groups, "carol holds nothing")

	unknown := account.Account("nobody.near")
	groups, err = l.TokensByOwner(ledger.OwnerQuery{Account: alice, Issuer: &unknown})
	assert.Equal(t, fault.UnknownIssuer, err, "unknown issuer accepted")
	assert.Nil(t, groups, "unknown issuer tokens")

	groups, err = l.TokensByOwner(ledger.OwnerQuery{Account: carol, Issuer: &unknown, FromClass: classPtr(1)})
	assert.Equal(t, fault.UnknownIssuer, err, "unknown issuer accepted for empty owner")
	assert.Nil(t, groups, "unknown issuer tokens")
}

func TestTokensByOwnerArguments(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	_, err := l.TokensByOwner(ledger.OwnerQuery{Account: alice, FromClass: classPtr(1)})
	assert.Equal(t, fault.FromClassWithoutIssuer, err, "from class without issuer accepted")

	_, err = l.TokensByOwner(ledger.OwnerQuery{Account: alice, Limit: intPtr(0)})
	assert.Equal(t, fault.InvalidLimit, err, "limit 0 accepted")

	_, err = l.TokensByOwner(ledger.OwnerQuery{Account: alice, Limit: intPtr(-3)})
	assert.True(t, fault.IsErrInvalid(err), "negative limit accepted")
}

func TestPointQueries(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	mintClasses(t, l, issuerX, alice, 4, 9)

	tokens, err := l.Tokens(issuerX, []token.Id{2, 3, 1})
	assert.Nil(t, err, "tokens error")
	assert.Equal(t, 3, len(tokens), "wrong count")
	assert.Equal(t, token.Id(2), tokens[0].Token, "wrong first token")
	assert.Nil(t, tokens[1], "missing token returned")
	assert.Equal(t, token.ClassId(4), tokens[2].Metadata.Class, "wrong class")

	classes, err := l.Classes(issuerX, []token.Id{1, 5, 2})
	assert.Nil(t, err, "classes error")
	assert.Equal(t, token.ClassId(4), *classes[0], "wrong class")
	assert.Nil(t, classes[1], "missing class returned")
	assert.Equal(t, token.ClassId(9), *classes[2], "wrong class")

	tok, err := l.Token("nobody.near", 1)
	assert.Equal(t, fault.UnknownIssuer, err, "unknown issuer accepted")
	assert.Nil(t, tok, "token from unknown issuer")

	tokens, err = l.Tokens("nobody.near", []token.Id{1})
	assert.Equal(t, fault.UnknownIssuer, err, "unknown issuer accepted")
	assert.Nil(t, tokens, "tokens from unknown issuer")

	classes, err = l.Classes("nobody.near", []token.Id{1})
	assert.Equal(t, fault.UnknownIssuer, err, "unknown issuer accepted")
	assert.Nil(t, classes, "classes from unknown issuer")

	// counts and issuer listings stay empty for an unknown issuer
	assert.Equal(t, uint64(0), l.Supply("nobody.near"), "unknown issuer supply")
	listed, err := l.TokensByIssuer(ledger.IssuerQuery{Issuer: "nobody.near"})
	assert.Nil(t, err, "unknown issuer listing error")
	assert.Empty(t, listed, "unknown issuer listing")
}

func TestRenew(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	ids := mintClasses(t, l, issuerX, alice, 1, 2)
	drainEvents()

	err := l.Renew(issuerX, ids, testNow+5000)
	assert.Nil(t, err, "renew error")
	assert.Equal(t, []string{"renew"}, eventNames(drainEvents()), "wrong events")

	tok, err := l.Token(issuerX, ids[1])
	assert.Nil(t, err, "token error")
	assert.Equal(t, testNow+5000, *tok.Metadata.ExpiresAt, "expiry not set")

	// renew brings a soft revoked token back
	err = l.Revoke(issuerX, ids[:1], false)
	assert.Nil(t, err, "revoke error")
	err = l.Renew(issuerX, ids[:1], testNow+1)
	assert.Nil(t, err, "renew error")
	groups, err := l.TokensByOwner(ledger.OwnerQuery{Account: alice})
	assert.Nil(t, err, "query error")
	assert.Equal(t, ids, ownedIds(groups[0].Tokens), "renewed token hidden")

	// not issued by Y
	drainEvents()
	err = l.Renew(issuerY, ids, testNow)
	assert.Equal(t, fault.NotTokenOwner, err, "wrong error")
	assert.True(t, fault.IsErrNotFound(err), "not a not found error")
	assert.Equal(t, 0, len(drainEvents()), "event for failed renew")

	assert.Equal(t, uint64(2), l.Supply(issuerX), "supply changed")
}

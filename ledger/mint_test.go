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

func TestMint(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	ids, refund, err := l.Mint(issuerX, []ledger.MintItem{
		{Owner: alice, Metadata: []token.Metadata{{Class: 1}}},
		{Owner: bob, Metadata: []token.Metadata{{Class: 2}}},
	}, testDeposit)
	assert.Nil(t, err, "mint error")
	assert.Equal(t, []token.Id{1, 2}, ids, "wrong token ids")
	assert.True(t, refund < testDeposit, "storage was not charged")

	assert.Equal(t, uint64(1), l.SupplyByOwner(alice, issuerX, classPtr(1)), "alice class 1")
	assert.Equal(t, uint64(0), l.SupplyByOwner(alice, issuerX, classPtr(2)), "alice class 2")
	assert.Equal(t, uint64(1), l.SupplyByOwner(bob, issuerX, classPtr(2)), "bob class 2")
	assert.Equal(t, uint64(2), l.Supply(issuerX), "issuer supply")
	assert.Equal(t, uint64(0), l.Supply(issuerY), "other issuer supply")

	tok, err := l.Token(issuerX, 1)
	assert.Nil(t, err, "token error")
	assert.Equal(t, alice, tok.Owner, "wrong owner")
	assert.Equal(t, testNow, tok.Metadata.IssuedAt, "issued at not defaulted")

	// ids continue per issuer
	more := mintClasses(t, l, issuerX, carol, 1)
	assert.Equal(t, []token.Id{3}, more, "next id")
	other := mintClasses(t, l, issuerY, carol, 1)
	assert.Equal(t, []token.Id{1}, other, "first id of another issuer")

	checkSupply(t, l, issuerX, []account.Account{alice, bob, carol}, []token.ClassId{1, 2})

	// one event per call carrying every owner
	events := drainEvents()
	assert.Equal(t, []string{"mint", "mint", "mint"}, eventNames(events), "wrong events")
	assert.Contains(t, string(events[0].Parameters[0]), `"tokens":[["alice.near",[1]],["bob.near",[2]]]`, "wrong first event")
}

func TestMintZeroClass(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	_, refund, err := l.Mint(issuerX, []ledger.MintItem{
		{Owner: alice, Metadata: []token.Metadata{{Class: 1}, {Class: 0}}},
	}, testDeposit)
	assert.Equal(t, fault.ZeroClass, err, "wrong error")
	assert.True(t, fault.IsErrInvalid(err), "not a precondition error")
	assert.Equal(t, testDeposit, refund, "deposit not returned")

	assert.Equal(t, uint64(0), l.Supply(issuerX), "issuer supply changed")
	assert.Equal(t, uint64(0), l.SupplyByClass(issuerX, 1), "class supply changed")
	assert.Equal(t, uint64(0), l.SupplyByOwner(alice, issuerX, nil), "owner supply changed")

	ids := mintClasses(t, l, issuerX, alice, 1)
	assert.Equal(t, []token.Id{1}, ids, "token id was consumed")
	assert.Equal(t, 1, len(drainEvents()), "event from failed mint")
}

func TestMintRejects(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	err := l.Ban(auth, []account.Account{"spam.near"})
	assert.Nil(t, err, "ban error")

	items := []struct {
		caller account.Account
		mint   []ledger.MintItem
		err    error
	}{
		{"nobody.near", []ledger.MintItem{{Owner: alice, Metadata: []token.Metadata{{Class: 1}}}}, fault.UnknownIssuer},
		{issuerX, []ledger.MintItem{{Owner: "Bad Owner", Metadata: []token.Metadata{{Class: 1}}}}, fault.InvalidAccount},
		{issuerX, []ledger.MintItem{{Owner: "spam.near", Metadata: []token.Metadata{{Class: 1}}}}, fault.AccountBanned},
		{issuerX, []ledger.MintItem{{Owner: alice, Metadata: []token.Metadata{{Class: 1}, {Class: 1}}}}, fault.BalanceKeyOccupied},
		{issuerX, []ledger.MintItem{
			{Owner: alice, Metadata: []token.Metadata{{Class: 3}}},
			{Owner: alice, Metadata: []token.Metadata{{Class: 3}}},
		}, fault.BalanceKeyOccupied},
	}

	for i, item := range items {
		ids, refund, err := l.Mint(item.caller, item.mint, testDeposit)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Nil(t, ids, "%d: ids returned", i)
		assert.Equal(t, testDeposit, refund, "%d: deposit not returned", i)
	}
	assert.Equal(t, uint64(0), l.Supply(issuerX), "supply changed")
	tokens, err := l.Tokens(issuerX, []token.Id{1})
	assert.Nil(t, err, "tokens error")
	assert.Nil(t, tokens[0], "token written")

	// an occupied key from an earlier call
	mintClasses(t, l, issuerX, alice, 1)
	_, _, err = l.Mint(issuerX, []ledger.MintItem{{Owner: alice, Metadata: []token.Metadata{{Class: 1}}}}, testDeposit)
	assert.True(t, fault.IsErrExists(err), "occupied balance key accepted")
	assert.Equal(t, uint64(1), l.Supply(issuerX), "supply changed")
}

func TestMintLimits(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	l.SetLimits(ledger.Limits{MaxTokensPerCall: 2, RecoverBatch: 20, ByteCost: 1})

	_, refund, err := l.Mint(issuerX, []ledger.MintItem{
		{Owner: alice, Metadata: []token.Metadata{{Class: 1}, {Class: 2}}},
		{Owner: bob, Metadata: []token.Metadata{{Class: 1}}},
	}, testDeposit)
	assert.Equal(t, fault.TooManyTokens, err, "wrong error")
	assert.True(t, fault.IsErrLimit(err), "not a limit error")
	assert.Equal(t, testDeposit, refund, "deposit not returned")

	_, refund, err = l.Mint(issuerX, []ledger.MintItem{
		{Owner: alice, Metadata: []token.Metadata{{Class: 1}}},
	}, 1)
	assert.Equal(t, fault.InsufficientDeposit, err, "wrong error")
	assert.True(t, fault.IsErrLimit(err), "not a limit error")
	assert.Equal(t, uint64(1), refund, "deposit not returned")
	assert.Equal(t, uint64(0), l.Supply(issuerX), "supply changed")
}

func TestMintCharge(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	_, refund1, err := l.Mint(issuerX, []ledger.MintItem{
		{Owner: alice, Metadata: []token.Metadata{{Class: 1}}},
	}, testDeposit)
	assert.Nil(t, err, "mint error")

	l.SetLimits(ledger.Limits{MaxTokensPerCall: 10, RecoverBatch: 20, ByteCost: 3})
	_, refund3, err := l.Mint(issuerX, []ledger.MintItem{
		{Owner: bob, Metadata: []token.Metadata{{Class: 1}}},
	}, testDeposit)
	assert.Nil(t, err, "mint error")

	cost1 := testDeposit - refund1
	cost3 := testDeposit - refund3
	assert.True(t, cost1 > 0, "no charge")
	assert.Equal(t, uint64(0), cost3%3, "charge not a multiple of byte cost")
	assert.True(t, cost3 > cost1, "byte cost ignored")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fixtures"
	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/messagebus"
	"github.com/bitmark-inc/sbtregistry/storage"
	"github.com/bitmark-inc/sbtregistry/token"
)

const (
	testNow     = uint64(1000000)
	testDeposit = uint64(1) << 40
)

var (
	issuerX = account.Account(fixtures.IssuerX)
	issuerY = account.Account(fixtures.IssuerY)
	alice   = account.Account(fixtures.Alice)
	bob     = account.Account(fixtures.Bob)
	carol   = account.Account(fixtures.Carol)
	auth    = account.Account(fixtures.Authority)
)

func testConfiguration() ledger.Configuration {
	return ledger.Configuration{
		Authority:  fixtures.Authority,
		IahIssuer:  fixtures.IssuerY,
		IahClasses: []uint64{1},
	}
}

// open an empty in-memory database with issuers X and Y registered
func setupLedger(t *testing.T) *ledger.Ledger {
	fixtures.SetupTestLogger()

	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("leveldb open error: %s", err)
	}
	_, err = storage.InitialiseWith(db)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	l, err := ledger.New(logger.New(fixtures.LogCategory), testConfiguration())
	if nil != err {
		t.Fatalf("ledger create error: %s", err)
	}
	l.SetClock(func() uint64 { return testNow })

	for _, name := range []account.Account{issuerX, issuerY} {
		added, err := l.AddIssuer(auth, name)
		if nil != err || !added {
			t.Fatalf("add issuer: %s  added: %t  error: %v", name, added, err)
		}
	}
	return l
}

func teardownLedger() {
	storage.Finalise()
	drainEvents()
	fixtures.TeardownTestLogger()
}

// everything queued on the event bus so far
func drainEvents() []messagebus.Message {
	messages := []messagebus.Message{}
	queue := messagebus.Bus.Events.Chan()
	for {
		select {
		case m := <-queue:
			messages = append(messages, m)
		default:
			return messages
		}
	}
}

func eventNames(messages []messagebus.Message) []string {
	names := make([]string, 0, len(messages))
	for _, m := range messages {
		names = append(names, m.Command)
	}
	return names
}

// one token of each class for owner
func mintClasses(t *testing.T, l *ledger.Ledger, issuerName account.Account, owner account.Account, classes ...token.ClassId) []token.Id {
	metadata := make([]token.Metadata, 0, len(classes))
	for _, c := range classes {
		metadata = append(metadata, token.Metadata{Class: c})
	}
	ids, _, err := l.Mint(issuerName, []ledger.MintItem{{Owner: owner, Metadata: metadata}}, testDeposit)
	if nil != err {
		t.Fatalf("mint for: %s  error: %s", owner, err)
	}
	if len(classes) != len(ids) {
		t.Fatalf("minted: %d  expected: %d", len(ids), len(classes))
	}
	return ids
}

func classRange(first token.ClassId, last token.ClassId) []token.ClassId {
	classes := []token.ClassId{}
	for c := first; c <= last; c += 1 {
		classes = append(classes, c)
	}
	return classes
}

func classPtr(c token.ClassId) *token.ClassId {
	return &c
}

func intPtr(n int) *int {
	return &n
}

// supply by issuer must equal the sum over classes and the sum over owners
func checkSupply(t *testing.T, l *ledger.Ledger, issuerName account.Account, owners []account.Account, classes []token.ClassId) {
	total := l.Supply(issuerName)

	byClass := uint64(0)
	for _, c := range classes {
		byClass += l.SupplyByClass(issuerName, c)
	}
	byOwner := uint64(0)
	for _, o := range owners {
		byOwner += l.SupplyByOwner(o, issuerName, nil)
	}

	if total != byClass || total != byOwner {
		t.Errorf("supply mismatch: issuer: %d  classes: %d  owners: %d", total, byClass, byOwner)
	}
}

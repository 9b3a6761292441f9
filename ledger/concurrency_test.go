// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/messagebus"
	"github.com/bitmark-inc/sbtregistry/token"
)

// readers must see either all or none of each mint and burn
func TestQueriesDuringMutations(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	mintClasses(t, l, issuerX, alice, classRange(1, 10)...)

	const readers = 4
	stop := make(chan struct{})
	failures := make(chan string, readers)
	var wg sync.WaitGroup

	for i := 0; i < readers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				groups, err := l.TokensByOwner(ledger.OwnerQuery{Account: alice, Issuer: &issuerX, WithExpired: true})
				if nil != err {
					failures <- err.Error()
					return
				}
				if 1 != len(groups) || (10 != len(groups[0].Tokens) && 12 != len(groups[0].Tokens)) {
					failures <- "partial mint or burn observed"
					return
				}
				runtime.Gosched()
			}
		}()
	}

	for i := 0; i < 200; i += 1 {
		ids := mintClasses(t, l, issuerX, alice, 11, 12)
		err := l.Revoke(issuerX, ids, true)
		if nil != err {
			t.Fatalf("burn error: %s", err)
		}
		drainEvents()
	}
	close(stop)
	wg.Wait()
	close(failures)

	for f := range failures {
		t.Errorf("query: %s", f)
	}
	assert.Equal(t, uint64(10), l.Supply(issuerX), "issuer supply")
}

// a full event queue must not block readers or other mutations
func TestFullEventQueue(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	drainEvents()
	queue := messagebus.Bus.Events
	for queue.Len() < cap(queue.Chan()) {
		queue.Send("filler")
	}

	minted := make(chan error, 1)
	go func() {
		_, _, err := l.Mint(issuerX, []ledger.MintItem{
			{Owner: alice, Metadata: []token.Metadata{{Class: 1}}},
		}, testDeposit)
		minted <- err
	}()

	assert.Eventually(t, func() bool {
		return 1 == l.Supply(issuerX)
	}, 5*time.Second, 10*time.Millisecond, "mint not committed")

	added := make(chan bool, 1)
	go func() {
		ok, _ := l.AddIssuer(auth, "late.near")
		added <- ok
	}()
	select {
	case ok := <-added:
		assert.True(t, ok, "issuer not added")
	case <-time.After(5 * time.Second):
		t.Fatal("mutation blocked by a pending event")
	}

	// releasing the queue lets the mint return
	names := eventNames(drainEvents())
	select {
	case err := <-minted:
		assert.Nil(t, err, "mint error")
	case <-time.After(5 * time.Second):
		t.Fatal("mint did not return")
	}
	names = append(names, eventNames(drainEvents())...)
	assert.Equal(t, "mint", names[len(names)-1], "mint event lost")
}

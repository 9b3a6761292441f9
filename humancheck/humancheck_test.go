// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package humancheck_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/fixtures"
	"github.com/bitmark-inc/sbtregistry/humancheck"
	"github.com/bitmark-inc/sbtregistry/humancheck/mocks"
	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/token"
)

var (
	alice   = account.Account(fixtures.Alice)
	issuerY = account.Account(fixtures.IssuerY)
)

var aliceProof = []ledger.IssuerTokens{
	{
		Issuer: issuerY,
		Tokens: []token.OwnedToken{
			{Token: 3, Metadata: token.Metadata{Class: 1}},
			{Token: 8, Metadata: token.Metadata{Class: 2}},
		},
	},
}

func TestIsHuman(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProver(ctl)
	r := mocks.NewMockRefunder(ctl)
	c := humancheck.New(logger.New(fixtures.LogCategory), p, r)

	p.EXPECT().IsHuman(alice).Return(aliceProof, nil).Times(1)

	proof, err := c.IsHuman(alice)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, []humancheck.ProofEntry{{Issuer: issuerY, Tokens: []token.Id{3, 8}}}, proof, "wrong proof")

	buffer, err := json.Marshal(proof)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `[["issuer-y.near",[3,8]]]`, string(buffer), "wrong proof json")

	decoded := []humancheck.ProofEntry{}
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, proof, decoded, "wrong decoded proof")
}

func TestCall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProver(ctl)
	r := mocks.NewMockRefunder(ctl)
	target := mocks.NewMockTarget(ctl)
	c := humancheck.New(logger.New(fixtures.LogCategory), p, r)

	expected := `{"caller":"alice.near","iah_proof":[["issuer-y.near",[3,8]]],"payload":{"vote":1}}`

	p.EXPECT().IsHuman(alice).Return(aliceProof, nil).Times(1)
	target.EXPECT().Call("vote", []byte(expected), uint64(50)).Return(nil).Times(1)

	err := c.Call(alice, target, "vote", json.RawMessage(`{"vote":1}`), 50)
	assert.Nil(t, err, "wrong error")
}

func TestCallRefunds(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProver(ctl)
	r := mocks.NewMockRefunder(ctl)
	target := mocks.NewMockTarget(ctl)
	c := humancheck.New(logger.New(fixtures.LogCategory), p, r)

	// target rejects
	p.EXPECT().IsHuman(alice).Return(aliceProof, nil).Times(1)
	target.EXPECT().Call("vote", gomock.Any(), uint64(50)).Return(fmt.Errorf("rejected")).Times(1)
	r.EXPECT().Refund(alice, uint64(50)).Return(nil).Times(1)

	err := c.Call(alice, target, "vote", nil, 50)
	assert.Equal(t, fault.HandshakeFailed, err, "wrong error")
	assert.True(t, fault.IsErrProcess(err), "not a process error")

	// not a human: the target is never called
	p.EXPECT().IsHuman(alice).Return([]ledger.IssuerTokens{}, nil).Times(1)
	r.EXPECT().Refund(alice, uint64(7)).Return(nil).Times(1)

	err = c.Call(alice, target, "vote", nil, 7)
	assert.Equal(t, fault.NotHuman, err, "wrong error")

	// nothing to refund
	p.EXPECT().IsHuman(alice).Return(nil, nil).Times(1)
	err = c.Call(alice, target, "vote", nil, 0)
	assert.Equal(t, fault.NotHuman, err, "wrong error")

	err = c.Call(alice, nil, "vote", nil, 0)
	assert.Equal(t, fault.InvalidIssuerTarget, err, "missing target accepted")
}

func TestHTTPTarget(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- r.URL.Path + " " + r.Header.Get("X-Attached-Deposit") + " " + string(body)
		if "/fail" == r.URL.Path {
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer server.Close()

	targets, err := humancheck.NewTargets(humancheck.TargetConfiguration{
		Targets: map[string]string{"app.near": server.URL + "/"},
	})
	assert.Nil(t, err, "targets error")

	target, ok := targets.Get("app.near")
	assert.True(t, ok, "target missing")
	_, ok = targets.Get("other.near")
	assert.False(t, ok, "unknown target found")

	err = target.Call("vote", []byte(`{}`), 12)
	assert.Nil(t, err, "call error")
	assert.Equal(t, "/vote 12 {}", <-received, "wrong request")

	err = target.Call("fail", []byte(`{}`), 0)
	assert.NotNil(t, err, "bad status accepted")
	<-received

	_, err = humancheck.NewTargets(humancheck.TargetConfiguration{
		Targets: map[string]string{"Not Valid": server.URL},
	})
	assert.NotNil(t, err, "invalid target name accepted")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package human_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/fixtures"
	"github.com/bitmark-inc/sbtregistry/humancheck"
	hcmocks "github.com/bitmark-inc/sbtregistry/humancheck/mocks"
	"github.com/bitmark-inc/sbtregistry/mode"
	"github.com/bitmark-inc/sbtregistry/rpc/human"
	"github.com/bitmark-inc/sbtregistry/rpc/mocks"
	"github.com/bitmark-inc/sbtregistry/token"
)

var (
	alice   = account.Account(fixtures.Alice)
	issuerX = account.Account(fixtures.IssuerX)
	target  = account.Account("market.near")
)

func normal(_ mode.Mode) bool { return true }

func TestIsHuman(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockChecker(ctl)
	ts := mocks.NewMockTargets(ctl)
	h := human.New(logger.New(fixtures.LogCategory), c, ts, normal)

	proof := []humancheck.ProofEntry{
		{Issuer: issuerX, Tokens: []token.Id{1}},
	}
	c.EXPECT().IsHuman(alice).Return(proof, nil).Times(1)

	var reply human.IsHumanReply
	err := h.IsHuman(&human.IsHumanArguments{Account: alice}, &reply)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, proof, reply.Proof, "wrong proof")
}

func TestCall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockChecker(ctl)
	ts := mocks.NewMockTargets(ctl)
	h := human.New(logger.New(fixtures.LogCategory), c, ts, normal)

	tgt := hcmocks.NewMockTarget(ctl)
	payload := json.RawMessage(`{"vote":1}`)

	ts.EXPECT().Get(target).Return(tgt, true).Times(1)
	c.EXPECT().Call(alice, tgt, "vote", payload, uint64(10)).Return(nil).Times(1)

	var reply human.CallReply
	err := h.Call(&human.CallArguments{
		Caller:   alice,
		Target:   target,
		Function: "vote",
		Payload:  payload,
		Deposit:  10,
	}, &reply)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "ok", reply.Status, "wrong status")
}

func TestCallNotHuman(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockChecker(ctl)
	ts := mocks.NewMockTargets(ctl)
	h := human.New(logger.New(fixtures.LogCategory), c, ts, normal)

	tgt := hcmocks.NewMockTarget(ctl)
	ts.EXPECT().Get(target).Return(tgt, true).Times(1)
	c.EXPECT().Call(alice, tgt, "vote", gomock.Any(), uint64(0)).Return(fault.NotHuman).Times(1)

	err := h.Call(&human.CallArguments{
		Caller:   alice,
		Target:   target,
		Function: "vote",
	}, &human.CallReply{})
	assert.Equal(t, fault.NotHuman, err, "wrong error")
}

func TestCallUnknownTarget(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockChecker(ctl)
	ts := mocks.NewMockTargets(ctl)
	h := human.New(logger.New(fixtures.LogCategory), c, ts, normal)

	ts.EXPECT().Get(target).Return(nil, false).Times(1)

	err := h.Call(&human.CallArguments{
		Caller:   alice,
		Target:   target,
		Function: "vote",
	}, &human.CallReply{})
	assert.Equal(t, fault.InvalidIssuerTarget, err, "wrong error")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/fixtures"
	"github.com/bitmark-inc/sbtregistry/mode"
	"github.com/bitmark-inc/sbtregistry/rpc/admin"
	"github.com/bitmark-inc/sbtregistry/rpc/mocks"
)

var (
	authority = account.Account(fixtures.Authority)
	issuerY   = account.Account(fixtures.IssuerY)
)

func TestAddIssuer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockAdmin(ctl)
	a := admin.New(logger.New(fixtures.LogCategory), l, func(_ mode.Mode) bool { return true })

	gomock.InOrder(
		l.EXPECT().AddIssuer(authority, issuerY).Return(true, nil),
		l.EXPECT().AddIssuer(authority, issuerY).Return(false, nil),
		l.EXPECT().AddIssuer(issuerY, issuerY).Return(false, fault.NotAuthorised),
	)

	arguments := admin.AddIssuerArguments{
		Caller: authority,
		Issuer: issuerY,
	}

	var reply admin.AddIssuerReply
	err := a.AddIssuer(&arguments, &reply)
	assert.Nil(t, err, "first add")
	assert.True(t, reply.Added, "first add")

	reply = admin.AddIssuerReply{}
	err = a.AddIssuer(&arguments, &reply)
	assert.Nil(t, err, "second add")
	assert.False(t, reply.Added, "second add")

	arguments.Caller = issuerY
	err = a.AddIssuer(&arguments, &reply)
	assert.Equal(t, fault.NotAuthorised, err, "wrong caller")
}

func TestBan(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockAdmin(ctl)
	a := admin.New(logger.New(fixtures.LogCategory), l, func(_ mode.Mode) bool { return true })

	accounts := []account.Account{fixtures.Alice, fixtures.Bob}
	l.EXPECT().Ban(authority, accounts).Return(nil).Times(1)

	var reply admin.BanReply
	err := a.Ban(&admin.BanArguments{Caller: authority, Accounts: accounts}, &reply)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, 2, reply.Banned, "wrong count")

	err = a.Ban(&admin.BanArguments{Caller: authority}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "empty ban")
}

func TestAdminNotNormalMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockAdmin(ctl)
	a := admin.New(logger.New(fixtures.LogCategory), l, func(_ mode.Mode) bool { return false })

	err := a.AddIssuer(&admin.AddIssuerArguments{Caller: authority, Issuer: issuerY}, &admin.AddIssuerReply{})
	assert.Equal(t, fault.NotAvailableInCurrentMode, err, "wrong error")
}

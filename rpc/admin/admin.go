// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/mode"
	"github.com/bitmark-inc/sbtregistry/rpc/ratelimit"
)

const (
	rateLimitAdmin = 10
	rateBurstAdmin = 10
)

// Ledger - the registry administration calls
type Ledger interface {
	AddIssuer(account.Account, account.Account) (bool, error)
	Ban(account.Account, []account.Account) error
}

// Admin - type for the RPC
type Admin struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Ledger       Ledger
	IsNormalMode func(mode.Mode) bool
}

// New - create the admin service
func New(log *logger.L, l Ledger, isNormalMode func(mode.Mode) bool) *Admin {
	return &Admin{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Ledger:       l,
		IsNormalMode: isNormalMode,
	}
}

// AddIssuerArguments - arguments for RPC
type AddIssuerArguments struct {
	Caller account.Account `json:"caller"`
	Issuer account.Account `json:"issuer"`
}

// AddIssuerReply - result of RPC
type AddIssuerReply struct {
	Added bool `json:"added"`
}

// AddIssuer - register a new issuer
func (a *Admin) AddIssuer(arguments *AddIssuerArguments, reply *AddIssuerReply) error {
	if nil == arguments || "" == arguments.Issuer {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if !a.IsNormalMode(mode.Normal) {
		return fault.NotAvailableInCurrentMode
	}

	a.Log.Infof("Admin.AddIssuer: caller: %s  issuer: %s", arguments.Caller, arguments.Issuer)

	added, err := a.Ledger.AddIssuer(arguments.Caller, arguments.Issuer)
	if nil != err {
		return err
	}
	reply.Added = added
	return nil
}

// BanArguments - arguments for RPC
type BanArguments struct {
	Caller   account.Account   `json:"caller"`
	Accounts []account.Account `json:"accounts"`
}

// BanReply - result of RPC
type BanReply struct {
	Banned int `json:"banned"`
}

// Ban - add accounts to the banlist
func (a *Admin) Ban(arguments *BanArguments, reply *BanReply) error {
	if nil == arguments || 0 == len(arguments.Accounts) {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if !a.IsNormalMode(mode.Normal) {
		return fault.NotAvailableInCurrentMode
	}

	a.Log.Infof("Admin.Ban: caller: %s  accounts: %v", arguments.Caller, arguments.Accounts)

	if err := a.Ledger.Ban(arguments.Caller, arguments.Accounts); nil != err {
		return err
	}
	reply.Banned = len(arguments.Accounts)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/mode"
	"github.com/bitmark-inc/sbtregistry/rpc/ratelimit"
	"github.com/bitmark-inc/sbtregistry/token"
)

const (
	rateLimitRegistry = 100
	rateBurstRegistry = 50
)

// Ledger - the mutations served by this service
type Ledger interface {
	Mint(account.Account, []ledger.MintItem, uint64) ([]token.Id, uint64, error)
	Revoke(account.Account, []token.Id, bool) error
	RevokeByOwner(account.Account, account.Account, bool) error
	Recover(account.Account, account.Account, account.Account) (uint32, bool, error)
	Renew(account.Account, []token.Id, uint64) error
}

// Registry - type for the RPC
type Registry struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Ledger       Ledger
	IsNormalMode func(mode.Mode) bool
}

// New - create the registry service
func New(log *logger.L, l Ledger, isNormalMode func(mode.Mode) bool) *Registry {
	return &Registry{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Ledger:       l,
		IsNormalMode: isNormalMode,
	}
}

func (r *Registry) check() error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if !r.IsNormalMode(mode.Normal) {
		return fault.NotAvailableInCurrentMode
	}
	return nil
}

// Mint
// ----

// MintArguments - arguments for RPC
type MintArguments struct {
	Caller    account.Account   `json:"caller"`
	TokenSpec []ledger.MintItem `json:"token_spec"`
	Deposit   uint64            `json:"deposit,string"`
}

// MintReply - result of mint RPC
type MintReply struct {
	Tokens []token.Id `json:"tokens"`
	Refund uint64     `json:"refund,string"`
}

// Mint - create tokens for the caller
func (r *Registry) Mint(arguments *MintArguments, reply *MintReply) error {
	if nil == arguments || 0 == len(arguments.TokenSpec) {
		return fault.MissingParameters
	}
	if err := r.check(); nil != err {
		return err
	}

	r.Log.Infof("Registry.Mint: caller: %s  owners: %d", arguments.Caller, len(arguments.TokenSpec))

	ids, refund, err := r.Ledger.Mint(arguments.Caller, arguments.TokenSpec, arguments.Deposit)
	reply.Refund = refund
	if nil != err {
		return err
	}
	reply.Tokens = ids
	return nil
}

// Revoke
// ------

// RevokeArguments - arguments for RPC
type RevokeArguments struct {
	Caller account.Account `json:"caller"`
	Tokens []token.Id      `json:"tokens"`
	Burn   bool            `json:"burn"`
}

// RevokeByOwnerArguments - arguments for RPC
type RevokeByOwnerArguments struct {
	Caller account.Account `json:"caller"`
	Owner  account.Account `json:"owner"`
	Burn   bool            `json:"burn"`
}

// StatusReply - result of RPCs without data
type StatusReply struct {
	Status string `json:"status"`
}

const ok = "ok"

// Revoke - burn or expire tokens of the caller
func (r *Registry) Revoke(arguments *RevokeArguments, reply *StatusReply) error {
	if nil == arguments || 0 == len(arguments.Tokens) {
		return fault.MissingParameters
	}
	if err := r.check(); nil != err {
		return err
	}

	r.Log.Infof("Registry.Revoke: caller: %s  tokens: %v  burn: %t", arguments.Caller, arguments.Tokens, arguments.Burn)

	if err := r.Ledger.Revoke(arguments.Caller, arguments.Tokens, arguments.Burn); nil != err {
		return err
	}
	reply.Status = ok
	return nil
}

// RevokeByOwner - burn or expire every token of the caller held by an owner
func (r *Registry) RevokeByOwner(arguments *RevokeByOwnerArguments, reply *StatusReply) error {
	if nil == arguments || "" == arguments.Owner {
		return fault.MissingParameters
	}
	if err := r.check(); nil != err {
		return err
	}

	r.Log.Infof("Registry.RevokeByOwner: caller: %s  owner: %s  burn: %t", arguments.Caller, arguments.Owner, arguments.Burn)

	if err := r.Ledger.RevokeByOwner(arguments.Caller, arguments.Owner, arguments.Burn); nil != err {
		return err
	}
	reply.Status = ok
	return nil
}

// Recover
// -------

// RecoverArguments - arguments for RPC
type RecoverArguments struct {
	Caller account.Account `json:"caller"`
	From   account.Account `json:"from"`
	To     account.Account `json:"to"`
}

// RecoverReply - result of recover RPC
type RecoverReply struct {
	Moved uint32 `json:"moved"`
	Done  bool   `json:"done"`
}

// Recover - move one batch of the caller's tokens to a new owner
func (r *Registry) Recover(arguments *RecoverArguments, reply *RecoverReply) error {
	if nil == arguments || "" == arguments.From || "" == arguments.To {
		return fault.MissingParameters
	}
	if err := r.check(); nil != err {
		return err
	}

	r.Log.Infof("Registry.Recover: caller: %s  from: %s  to: %s", arguments.Caller, arguments.From, arguments.To)

	moved, done, err := r.Ledger.Recover(arguments.Caller, arguments.From, arguments.To)
	if nil != err {
		return err
	}
	reply.Moved = moved
	reply.Done = done
	return nil
}

// Renew
// -----

// RenewArguments - arguments for RPC
type RenewArguments struct {
	Caller    account.Account `json:"caller"`
	Tokens    []token.Id      `json:"tokens"`
	ExpiresAt uint64          `json:"expires_at"`
}

// Renew - set a new expiry on tokens of the caller
func (r *Registry) Renew(arguments *RenewArguments, reply *StatusReply) error {
	if nil == arguments || 0 == len(arguments.Tokens) {
		return fault.MissingParameters
	}
	if err := r.check(); nil != err {
		return err
	}

	r.Log.Infof("Registry.Renew: caller: %s  tokens: %v  expires: %d", arguments.Caller, arguments.Tokens, arguments.ExpiresAt)

	if err := r.Ledger.Renew(arguments.Caller, arguments.Tokens, arguments.ExpiresAt); nil != err {
		return err
	}
	reply.Status = ok
	return nil
}

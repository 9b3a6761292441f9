// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package human

import (
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/humancheck"
	"github.com/bitmark-inc/sbtregistry/mode"
	"github.com/bitmark-inc/sbtregistry/rpc/ratelimit"
)

const (
	rateLimitHuman = 100
	rateBurstHuman = 100
)

// Checker - proof lookup and call forwarding
type Checker interface {
	IsHuman(account.Account) ([]humancheck.ProofEntry, error)
	Call(account.Account, humancheck.Target, string, json.RawMessage, uint64) error
}

// Targets - named call targets
type Targets interface {
	Get(account.Account) (humancheck.Target, bool)
}

// Human - type for the RPC
type Human struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Checker      Checker
	Targets      Targets
	IsNormalMode func(mode.Mode) bool
}

// New - create the human check service
func New(log *logger.L, checker Checker, targets Targets, isNormalMode func(mode.Mode) bool) *Human {
	return &Human{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitHuman, rateBurstHuman),
		Checker:      checker,
		Targets:      targets,
		IsNormalMode: isNormalMode,
	}
}

// IsHumanArguments - arguments for RPC
type IsHumanArguments struct {
	Account account.Account `json:"account"`
}

// IsHumanReply - result of RPC
type IsHumanReply struct {
	Proof []humancheck.ProofEntry `json:"proof"`
}

// IsHuman - proof of personhood, empty when not verified
func (h *Human) IsHuman(arguments *IsHumanArguments, reply *IsHumanReply) error {
	if nil == arguments || "" == arguments.Account {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}

	proof, err := h.Checker.IsHuman(arguments.Account)
	if nil != err {
		return err
	}
	reply.Proof = proof
	return nil
}

// CallArguments - arguments for RPC
type CallArguments struct {
	Caller   account.Account `json:"caller"`
	Target   account.Account `json:"ctr"`
	Function string          `json:"function"`
	Payload  json.RawMessage `json:"payload"`
	Deposit  uint64          `json:"deposit,string"`
}

// CallReply - result of RPC
type CallReply struct {
	Status string `json:"status"`
}

// Call - forward a call with the caller's proof attached
func (h *Human) Call(arguments *CallArguments, reply *CallReply) error {
	if nil == arguments || "" == arguments.Target || "" == arguments.Function {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}
	if !h.IsNormalMode(mode.Normal) {
		return fault.NotAvailableInCurrentMode
	}

	target, ok := h.Targets.Get(arguments.Target)
	if !ok {
		return fault.InvalidIssuerTarget
	}

	h.Log.Infof("Human.Call: caller: %s  target: %s  function: %s", arguments.Caller, arguments.Target, arguments.Function)

	err := h.Checker.Call(arguments.Caller, target, arguments.Function, arguments.Payload, arguments.Deposit)
	if nil != err {
		return err
	}
	reply.Status = "ok"
	return nil
}

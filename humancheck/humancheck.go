// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package humancheck - forward calls from verified humans
//
// the caller's proof of personhood is attached to the call so the
// target can trust it without asking the registry again
package humancheck

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/token"
)

// Prover - source of proof of personhood
type Prover interface {
	IsHuman(account.Account) ([]ledger.IssuerTokens, error)
}

// Target - receiver of a forwarded call
type Target interface {
	Call(function string, arguments []byte, deposit uint64) error
}

// Refunder - returns a deposit to an account
type Refunder interface {
	Refund(to account.Account, amount uint64) error
}

// ProofEntry - one [issuer, [token ids]] pair of a proof
type ProofEntry struct {
	Issuer account.Account
	Tokens []token.Id
}

// MarshalJSON - as an [issuer, [tokens]] pair
func (p ProofEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.Issuer, p.Tokens})
}

// UnmarshalJSON - from an [issuer, [tokens]] pair
func (p *ProofEntry) UnmarshalJSON(data []byte) error {
	pair := []json.RawMessage{}
	err := json.Unmarshal(data, &pair)
	if nil != err {
		return err
	}
	if 2 != len(pair) {
		return fault.InvalidProof
	}
	err = json.Unmarshal(pair[0], &p.Issuer)
	if nil != err {
		return err
	}
	return json.Unmarshal(pair[1], &p.Tokens)
}

// Arguments - the body delivered to a target
type Arguments struct {
	Caller   account.Account `json:"caller"`
	IahProof []ProofEntry    `json:"iah_proof"`
	Payload  json.RawMessage `json:"payload"`
}

// Checker - proof lookup and call forwarding
type Checker struct {
	log      *logger.L
	prover   Prover
	refunder Refunder
}

// New - create a checker
func New(log *logger.L, prover Prover, refunder Refunder) *Checker {
	return &Checker{
		log:      log,
		prover:   prover,
		refunder: refunder,
	}
}

// IsHuman - proof for an account, empty when not verified
func (c *Checker) IsHuman(a account.Account) ([]ProofEntry, error) {
	groups, err := c.prover.IsHuman(a)
	if nil != err {
		return nil, err
	}
	proof := make([]ProofEntry, 0, len(groups))
	for _, g := range groups {
		entry := ProofEntry{Issuer: g.Issuer}
		for _, t := range g.Tokens {
			entry.Tokens = append(entry.Tokens, t.Token)
		}
		proof = append(proof, entry)
	}
	return proof, nil
}

// Call - forward a call from a verified human
//
// any failure returns the deposit to the caller; the ledger is never
// modified
func (c *Checker) Call(caller account.Account, target Target, function string, payload json.RawMessage, deposit uint64) error {
	if nil == target || "" == function {
		return fault.InvalidIssuerTarget
	}

	err := c.call(caller, target, function, payload, deposit)
	if nil == err {
		return nil
	}

	c.log.Debugf("call: %s  from: %s  error: %s", function, caller, err)
	if deposit > 0 {
		if rerr := c.refunder.Refund(caller, deposit); nil != rerr {
			c.log.Errorf("refund: %d to: %s  error: %s", deposit, caller, rerr)
		}
	}
	return err
}

func (c *Checker) call(caller account.Account, target Target, function string, payload json.RawMessage, deposit uint64) error {
	proof, err := c.IsHuman(caller)
	if nil != err {
		return err
	}
	if 0 == len(proof) {
		return fault.NotHuman
	}

	if 0 == len(payload) {
		payload = json.RawMessage("null")
	}
	arguments, err := json.Marshal(Arguments{
		Caller:   caller,
		IahProof: proof,
		Payload:  payload,
	})
	if nil != err {
		return err
	}

	err = target.Call(function, arguments, deposit)
	if nil != err {
		c.log.Warnf("target: %s  error: %s", function, err)
		return fault.HandshakeFailed
	}
	c.log.Debugf("call: %s  from: %s  deposit: %d", function, caller, deposit)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/rpc/registry"
	"github.com/bitmark-inc/sbtregistry/token"
)

// MintData - tokens to mint by a single issuer
type MintData struct {
	Caller  account.Account
	Spec    []ledger.MintItem
	Deposit uint64
}

// Mint - issue tokens, returns the new ids and any refund
func (client *Client) Mint(data *MintData) (*registry.MintReply, error) {
	args := registry.MintArguments{
		Caller:    data.Caller,
		TokenSpec: data.Spec,
		Deposit:   data.Deposit,
	}
	reply := &registry.MintReply{}
	if err := client.call("Mint", "Registry.Mint", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Revoke - revoke or burn tokens by id
func (client *Client) Revoke(caller account.Account, tokens []token.Id, burn bool) (*registry.StatusReply, error) {
	args := registry.RevokeArguments{
		Caller: caller,
		Tokens: tokens,
		Burn:   burn,
	}
	reply := &registry.StatusReply{}
	if err := client.call("Revoke", "Registry.Revoke", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// RevokeByOwner - revoke or burn all tokens of one owner
func (client *Client) RevokeByOwner(caller account.Account, owner account.Account, burn bool) (*registry.StatusReply, error) {
	args := registry.RevokeByOwnerArguments{
		Caller: caller,
		Owner:  owner,
		Burn:   burn,
	}
	reply := &registry.StatusReply{}
	if err := client.call("Revoke By Owner", "Registry.RevokeByOwner", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Recover - move one batch of tokens between accounts
func (client *Client) Recover(caller account.Account, from account.Account, to account.Account) (*registry.RecoverReply, error) {
	args := registry.RecoverArguments{
		Caller: caller,
		From:   from,
		To:     to,
	}
	reply := &registry.RecoverReply{}
	if err := client.call("Recover", "Registry.Recover", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// RecoverAll - repeat recover until all tokens are moved, returns
// the total number moved
func (client *Client) RecoverAll(caller account.Account, from account.Account, to account.Account) (uint64, error) {
	total := uint64(0)
	for {
		reply, err := client.Recover(caller, from, to)
		if nil != err {
			return total, err
		}
		total += uint64(reply.Moved)
		if reply.Done {
			return total, nil
		}
	}
}

// Renew - set a new expiry on tokens
func (client *Client) Renew(caller account.Account, tokens []token.Id, expiresAt uint64) (*registry.StatusReply, error) {
	args := registry.RenewArguments{
		Caller:    caller,
		Tokens:    tokens,
		ExpiresAt: expiresAt,
	}
	reply := &registry.StatusReply{}
	if err := client.call("Renew", "Registry.Renew", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

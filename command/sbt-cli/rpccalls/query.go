// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/rpc/query"
	"github.com/bitmark-inc/sbtregistry/token"
)

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner       account.Account
	Issuer      *account.Account
	FromClass   *token.ClassId
	Limit       *int
	WithExpired bool
}

// GetOwned - tokens held by an account grouped by issuer
func (client *Client) GetOwned(data *OwnedData) (*query.TokensByOwnerReply, error) {
	args := query.TokensByOwnerArguments{
		Account:     data.Owner,
		Issuer:      data.Issuer,
		FromClass:   data.FromClass,
		Limit:       data.Limit,
		WithExpired: data.WithExpired,
	}
	reply := &query.TokensByOwnerReply{}
	if err := client.call("Owned", "Query.TokensByOwner", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// IssuedData - data for an issuer listing
type IssuedData struct {
	Issuer      account.Account
	FromToken   *token.Id
	Limit       *int
	WithExpired bool
}

// GetIssued - tokens of an issuer in id order
func (client *Client) GetIssued(data *IssuedData) (*query.TokensReply, error) {
	args := query.TokensByIssuerArguments{
		Issuer:      data.Issuer,
		FromToken:   data.FromToken,
		Limit:       data.Limit,
		WithExpired: data.WithExpired,
	}
	reply := &query.TokensReply{}
	if err := client.call("Issued", "Query.TokensByIssuer", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetTokens - individual tokens, missing ones are null
func (client *Client) GetTokens(issuer account.Account, tokens []token.Id) (*query.TokensOrNullReply, error) {
	args := query.TokensArguments{
		Issuer: issuer,
		Tokens: tokens,
	}
	reply := &query.TokensOrNullReply{}
	if err := client.call("Tokens", "Query.Tokens", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetClasses - class of each token, missing ones are null
func (client *Client) GetClasses(issuer account.Account, tokens []token.Id) (*query.ClassesReply, error) {
	args := query.TokensArguments{
		Issuer: issuer,
		Tokens: tokens,
	}
	reply := &query.ClassesReply{}
	if err := client.call("Classes", "Query.Classes", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetSupply - token count for an issuer, optionally narrowed by
// owner and class
func (client *Client) GetSupply(issuer account.Account, owner *account.Account, class *token.ClassId) (*query.SupplyReply, error) {
	args := query.SupplyArguments{
		Issuer: issuer,
		Owner:  owner,
		Class:  class,
	}
	reply := &query.SupplyReply{}
	if err := client.call("Supply", "Query.Supply", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// IsBanned - check the banlist
func (client *Client) IsBanned(a account.Account) (*query.IsBannedReply, error) {
	args := query.IsBannedArguments{
		Account: a,
	}
	reply := &query.IsBannedReply{}
	if err := client.call("Is Banned", "Query.IsBanned", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

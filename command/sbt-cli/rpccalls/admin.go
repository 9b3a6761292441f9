// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/rpc/admin"
)

// AddIssuer - register a new issuer
func (client *Client) AddIssuer(caller account.Account, issuer account.Account) (*admin.AddIssuerReply, error) {
	args := admin.AddIssuerArguments{
		Caller: caller,
		Issuer: issuer,
	}
	reply := &admin.AddIssuerReply{}
	if err := client.call("Add Issuer", "Admin.AddIssuer", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Ban - add accounts to the banlist
func (client *Client) Ban(caller account.Account, accounts []account.Account) (*admin.BanReply, error) {
	args := admin.BanArguments{
		Caller:   caller,
		Accounts: accounts,
	}
	reply := &admin.BanReply{}
	if err := client.call("Ban", "Admin.Ban", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/rpc/human"
)

// IsHuman - proof of personhood for an account
func (client *Client) IsHuman(a account.Account) (*human.IsHumanReply, error) {
	args := human.IsHumanArguments{
		Account: a,
	}
	reply := &human.IsHumanReply{}
	if err := client.call("Is Human", "Human.IsHuman", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// CallData - a call forwarded with proof attached
type CallData struct {
	Caller   account.Account
	Target   account.Account
	Function string
	Payload  json.RawMessage
	Deposit  uint64
}

// Call - forward a call to a target contract
func (client *Client) Call(data *CallData) (*human.CallReply, error) {
	args := human.CallArguments{
		Caller:   data.Caller,
		Target:   data.Target,
		Function: data.Function,
		Payload:  data.Payload,
		Deposit:  data.Deposit,
	}
	reply := &human.CallReply{}
	if err := client.call("Call", "Human.Call", args, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

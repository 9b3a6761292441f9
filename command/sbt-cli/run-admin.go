// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/command/sbt-cli/rpccalls"
	"github.com/bitmark-inc/sbtregistry/fault"
)

func runAddIssuer(c *cli.Context) error {

	issuer, err := checkAccount(c.Args().First())
	if nil != err {
		return err
	}

	m, client, caller, err := connectAsCaller(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddIssuer(caller, issuer)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBan(c *cli.Context) error {

	if 0 == c.NArg() {
		return fault.MissingParameters
	}
	accounts := make([]account.Account, 0, c.NArg())
	for _, s := range c.Args() {
		a, err := checkAccount(s)
		if nil != err {
			return err
		}
		accounts = append(accounts, a)
	}

	m, client, caller, err := connectAsCaller(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Ban(caller, accounts)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runIsHuman(c *cli.Context) error {

	a, err := checkAccount(c.Args().First())
	if nil != err {
		return err
	}

	m, client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IsHuman(a)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCall(c *cli.Context) error {

	target, err := checkAccount(c.String("target"))
	if nil != err {
		return err
	}
	function := c.String("function")
	if "" == function {
		return fault.MissingParameters
	}
	payload := json.RawMessage(c.String("payload"))
	if !json.Valid(payload) {
		return ErrInvalidPayload
	}

	m, client, caller, err := connectAsCaller(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Call(&rpccalls.CallData{
		Caller:   caller,
		Target:   target,
		Function: function,
		Payload:  payload,
		Deposit:  c.Uint64("deposit"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runInfo(c *cli.Context) error {

	m, client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, map[string]interface{}{
		"_connection": m.connect,
		"mode":        response.Mode,
		"rpcs":        response.RPCs,
		"version":     response.Version,
		"uptime":      response.Uptime,
	})
	return nil
}

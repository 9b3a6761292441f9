// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/command/sbt-cli/rpccalls"
	"github.com/bitmark-inc/sbtregistry/ledger"
)

// connect and resolve the global caller
func connect(c *cli.Context) (*metadata, *rpccalls.Client, account.Account, error) {
	m := c.App.Metadata["config"].(*metadata)

	caller := account.Account("")
	if "" != m.caller {
		a, err := checkAccount(m.caller)
		if nil != err {
			return nil, nil, "", err
		}
		caller = a
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, "", err
	}
	return m, client, caller, nil
}

// as connect, but a caller is mandatory
func connectAsCaller(c *cli.Context) (*metadata, *rpccalls.Client, account.Account, error) {
	m := c.App.Metadata["config"].(*metadata)
	if "" == m.caller {
		return nil, nil, "", ErrMissingCaller
	}
	return connect(c)
}

func runMint(c *cli.Context) error {

	var spec []ledger.MintItem
	if file := c.String("spec"); "" != file {
		s, err := readMintSpec(file)
		if nil != err {
			return err
		}
		spec = s
	} else {
		if "" == c.String("owner") {
			return ErrMissingOwner
		}
		owner, err := checkAccount(c.String("owner"))
		if nil != err {
			return err
		}
		item, err := buildMintItem(owner, c.String("classes"), c.Uint64("expires"), c.String("reference"))
		if nil != err {
			return err
		}
		spec = []ledger.MintItem{item}
	}

	m, client, caller, err := connectAsCaller(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(&rpccalls.MintData{
		Caller:  caller,
		Spec:    spec,
		Deposit: c.Uint64("deposit"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRevoke(c *cli.Context) error {

	tokens, err := parseTokenIds(c.String("tokens"))
	if nil != err {
		return err
	}

	m, client, caller, err := connectAsCaller(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Revoke(caller, tokens, c.Bool("burn"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRevokeByOwner(c *cli.Context) error {

	owner, err := checkAccount(c.String("owner"))
	if nil != err {
		return err
	}

	m, client, caller, err := connectAsCaller(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RevokeByOwner(caller, owner, c.Bool("burn"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRecover(c *cli.Context) error {

	from, err := checkAccount(c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkAccount(c.String("to"))
	if nil != err {
		return err
	}

	m, client, caller, err := connectAsCaller(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if c.Bool("all") {
		total, err := client.RecoverAll(caller, from, to)
		if nil != err {
			return err
		}
		printJson(m.w, map[string]interface{}{
			"moved": total,
			"done":  true,
		})
		return nil
	}

	response, err := client.Recover(caller, from, to)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRenew(c *cli.Context) error {

	tokens, err := parseTokenIds(c.String("tokens"))
	if nil != err {
		return err
	}
	expiresAt := c.Uint64("expires")
	if 0 == expiresAt {
		return ErrMissingExpiry
	}

	m, client, caller, err := connectAsCaller(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Renew(caller, tokens, expiresAt)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

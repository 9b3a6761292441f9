// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/sbtregistry/command/sbt-cli/rpccalls"
)

// zero means server default
func optionalLimit(c *cli.Context) *int {
	if !c.IsSet("limit") {
		return nil
	}
	limit := c.Int("limit")
	return &limit
}

func runOwned(c *cli.Context) error {

	owner, err := checkAccount(c.String("owner"))
	if nil != err {
		return err
	}
	issuer, err := checkOptionalAccount(c.String("issuer"))
	if nil != err {
		return err
	}
	fromClass, err := parseOptionalClass(c.String("from-class"))
	if nil != err {
		return err
	}

	m, client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetOwned(&rpccalls.OwnedData{
		Owner:       owner,
		Issuer:      issuer,
		FromClass:   fromClass,
		Limit:       optionalLimit(c),
		WithExpired: c.Bool("expired"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runIssued(c *cli.Context) error {

	issuer, err := checkAccount(c.String("issuer"))
	if nil != err {
		return err
	}
	fromToken, err := parseOptionalToken(c.String("from-token"))
	if nil != err {
		return err
	}

	m, client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetIssued(&rpccalls.IssuedData{
		Issuer:      issuer,
		FromToken:   fromToken,
		Limit:       optionalLimit(c),
		WithExpired: c.Bool("expired"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTokens(c *cli.Context) error {

	issuer, err := checkAccount(c.String("issuer"))
	if nil != err {
		return err
	}
	tokens, err := parseTokenIds(c.String("tokens"))
	if nil != err {
		return err
	}

	m, client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if c.Bool("classes") {
		response, err := client.GetClasses(issuer, tokens)
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	response, err := client.GetTokens(issuer, tokens)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSupply(c *cli.Context) error {

	issuer, err := checkAccount(c.String("issuer"))
	if nil != err {
		return err
	}
	owner, err := checkOptionalAccount(c.String("owner"))
	if nil != err {
		return err
	}
	class, err := parseOptionalClass(c.String("class"))
	if nil != err {
		return err
	}

	m, client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetSupply(issuer, owner, class)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runIsBanned(c *cli.Context) error {

	a, err := checkAccount(c.Args().First())
	if nil != err {
		return err
	}

	m, client, _, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IsBanned(a)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "sbt-cli"
	app.Usage = "client for the soulbound token registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " registryd host/IP and port, `HOST:PORT`",
			EnvVar: "SBT_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			Usage:  " account making the call `ACCOUNT`",
			EnvVar: "SBT_CALLER",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "mint",
			Usage:     "mint tokens to one owner, or a full token spec from a file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "+receiving account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "classes, k",
					Value: "",
					Usage: " comma separated class numbers, one token each `CLASSES`",
				},
				cli.Uint64Flag{
					Name:  "expires, x",
					Usage: " expiry time in milliseconds `MS`",
				},
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: " off-chain reference `STRING`",
				},
				cli.StringFlag{
					Name:  "spec, s",
					Value: "",
					Usage: "+JSON token spec `FILE`",
				},
				cli.Uint64Flag{
					Name:  "deposit, d",
					Usage: " attached storage deposit `AMOUNT`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "revoke",
			Usage:     "revoke or burn tokens by id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokens, t",
					Value: "",
					Usage: "*comma separated token ids `IDS`",
				},
				cli.BoolFlag{
					Name:  "burn, b",
					Usage: " delete instead of expire",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "revoke-owner",
			Usage:     "revoke or burn all tokens of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "burn, b",
					Usage: " delete instead of expire",
				},
			},
			Action: runRevokeByOwner,
		},
		{
			Name:      "recover",
			Usage:     "move tokens from a lost account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*old account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*new account `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "all",
					Usage: " repeat until every token is moved",
				},
			},
			Action: runRecover,
		},
		{
			Name:      "renew",
			Usage:     "set a new expiry on tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokens, t",
					Value: "",
					Usage: "*comma separated token ids `IDS`",
				},
				cli.Uint64Flag{
					Name:  "expires, x",
					Usage: "*expiry time in milliseconds `MS`",
				},
			},
			Action: runRenew,
		},
		{
			Name:      "owned",
			Usage:     "list tokens held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "issuer, i",
					Value: "",
					Usage: " only this issuer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "from-class, k",
					Value: "",
					Usage: " start from class, needs issuer `CLASS`",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Usage: " maximum tokens `COUNT`",
				},
				cli.BoolFlag{
					Name:  "expired, e",
					Usage: " include expired tokens",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "issued",
			Usage:     "list tokens of an issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Value: "",
					Usage: "*issuer account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "from-token, f",
					Value: "",
					Usage: " start from token `ID`",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Usage: " maximum tokens `COUNT`",
				},
				cli.BoolFlag{
					Name:  "expired, e",
					Usage: " include expired tokens",
				},
			},
			Action: runIssued,
		},
		{
			Name:      "tokens",
			Usage:     "display individual tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Value: "",
					Usage: "*issuer account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "tokens, t",
					Value: "",
					Usage: "*comma separated token ids `IDS`",
				},
				cli.BoolFlag{
					Name:  "classes",
					Usage: " only display the class of each token",
				},
			},
			Action: runTokens,
		},
		{
			Name:      "supply",
			Usage:     "token counts of an issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Value: "",
					Usage: "*issuer account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " only held by `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "class, k",
					Value: "",
					Usage: " only of `CLASS`",
				},
			},
			Action: runSupply,
		},
		{
			Name:      "is-banned",
			Usage:     "check the banlist",
			ArgsUsage: "ACCOUNT",
			Action:    runIsBanned,
		},
		{
			Name:      "add-issuer",
			Usage:     "register an issuer (authority only)",
			ArgsUsage: "ACCOUNT",
			Action:    runAddIssuer,
		},
		{
			Name:      "ban",
			Usage:     "add accounts to the banlist (authority only)",
			ArgsUsage: "ACCOUNT...",
			Action:    runBan,
		},
		{
			Name:      "is-human",
			Usage:     "display the proof of personhood of an account",
			ArgsUsage: "ACCOUNT",
			Action:    runIsHuman,
		},
		{
			Name:      "call",
			Usage:     "forward a call to a contract with proof attached",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*contract account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "function, f",
					Value: "",
					Usage: "*function name `NAME`",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "{}",
					Usage: " JSON payload `JSON`",
				},
				cli.Uint64Flag{
					Name:  "deposit, d",
					Usage: " attached deposit `AMOUNT`",
				},
			},
			Action: runCall,
		},
		{
			Name:   "info",
			Usage:  "display registryd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display sbt-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			caller:  c.GlobalString("caller"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

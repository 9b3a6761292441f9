// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/rpc/ratelimit"
	"github.com/bitmark-inc/sbtregistry/token"
)

const (
	rateLimitQuery = 200
	rateBurstQuery = 1000
)

// Ledger - the reads served by this service
type Ledger interface {
	TokensByOwner(ledger.OwnerQuery) ([]ledger.IssuerTokens, error)
	TokensByIssuer(ledger.IssuerQuery) ([]token.Token, error)
	Tokens(account.Account, []token.Id) ([]*token.Token, error)
	Classes(account.Account, []token.Id) ([]*token.ClassId, error)
	Supply(account.Account) uint64
	SupplyByClass(account.Account, token.ClassId) uint64
	SupplyByOwner(account.Account, account.Account, *token.ClassId) uint64
	IsBanned(account.Account) bool
}

// Query - type for the RPC
type Query struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the query service
func New(log *logger.L, l Ledger) *Query {
	return &Query{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitQuery, rateBurstQuery),
		Ledger:  l,
	}
}

// limit by the number of results asked for
func (q *Query) limit(limit *int) error {
	if nil == limit {
		return ratelimit.Limit(q.Limiter)
	}
	if *limit <= 0 {
		return fault.InvalidLimit
	}
	n := *limit
	if n > ledger.MaximumQueryLimit {
		n = ledger.MaximumQueryLimit
	}
	return ratelimit.LimitN(q.Limiter, n, ledger.MaximumQueryLimit)
}

// tokens by owner
// ---------------

// TokensByOwnerArguments - arguments for RPC
type TokensByOwnerArguments struct {
	Account     account.Account  `json:"account"`
	Issuer      *account.Account `json:"issuer,omitempty"`
	FromClass   *token.ClassId   `json:"from_class,omitempty"`
	Limit       *int             `json:"limit,omitempty"`
	WithExpired bool             `json:"with_expired"`
}

// TokensByOwnerReply - result of RPC
type TokensByOwnerReply struct {
	Tokens []ledger.IssuerTokens `json:"tokens"`
}

// TokensByOwner - tokens held by an account grouped by issuer
func (q *Query) TokensByOwner(arguments *TokensByOwnerArguments, reply *TokensByOwnerReply) error {
	if nil == arguments || "" == arguments.Account {
		return fault.MissingParameters
	}
	if err := q.limit(arguments.Limit); nil != err {
		return err
	}

	q.Log.Debugf("Query.TokensByOwner: %+v", arguments)

	tokens, err := q.Ledger.TokensByOwner(ledger.OwnerQuery{
		Account:     arguments.Account,
		Issuer:      arguments.Issuer,
		FromClass:   arguments.FromClass,
		Limit:       arguments.Limit,
		WithExpired: arguments.WithExpired,
	})
	if nil != err {
		return err
	}
	reply.Tokens = tokens
	return nil
}

// tokens by issuer
// ----------------

// TokensByIssuerArguments - arguments for RPC
type TokensByIssuerArguments struct {
	Issuer      account.Account `json:"issuer"`
	FromToken   *token.Id       `json:"from_token,omitempty"`
	Limit       *int            `json:"limit,omitempty"`
	WithExpired bool            `json:"with_expired"`
}

// TokensReply - a list of tokens
type TokensReply struct {
	Tokens []token.Token `json:"tokens"`
}

// TokensByIssuer - tokens of an issuer in id order
func (q *Query) TokensByIssuer(arguments *TokensByIssuerArguments, reply *TokensReply) error {
	if nil == arguments || "" == arguments.Issuer {
		return fault.MissingParameters
	}
	if err := q.limit(arguments.Limit); nil != err {
		return err
	}

	q.Log.Debugf("Query.TokensByIssuer: %+v", arguments)

	tokens, err := q.Ledger.TokensByIssuer(ledger.IssuerQuery{
		Issuer:      arguments.Issuer,
		FromToken:   arguments.FromToken,
		Limit:       arguments.Limit,
		WithExpired: arguments.WithExpired,
	})
	if nil != err {
		return err
	}
	reply.Tokens = tokens
	return nil
}

// point queries
// -------------

// TokensArguments - arguments for RPC
type TokensArguments struct {
	Issuer account.Account `json:"issuer"`
	Tokens []token.Id      `json:"tokens"`
}

// TokensOrNullReply - one entry per requested token, null when absent
type TokensOrNullReply struct {
	Tokens []*token.Token `json:"tokens"`
}

// Tokens - fetch tokens by id
func (q *Query) Tokens(arguments *TokensArguments, reply *TokensOrNullReply) error {
	if nil == arguments || "" == arguments.Issuer {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(q.Limiter, len(arguments.Tokens), ledger.MaximumQueryLimit); nil != err {
		return err
	}

	tokens, err := q.Ledger.Tokens(arguments.Issuer, arguments.Tokens)
	if nil != err {
		return err
	}
	reply.Tokens = tokens
	return nil
}

// ClassesReply - one class per requested token, null when absent
type ClassesReply struct {
	Classes []*token.ClassId `json:"classes"`
}

// Classes - fetch the class of tokens by id
func (q *Query) Classes(arguments *TokensArguments, reply *ClassesReply) error {
	if nil == arguments || "" == arguments.Issuer {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(q.Limiter, len(arguments.Tokens), ledger.MaximumQueryLimit); nil != err {
		return err
	}

	classes, err := q.Ledger.Classes(arguments.Issuer, arguments.Tokens)
	if nil != err {
		return err
	}
	reply.Classes = classes
	return nil
}

// supply
// ------

// SupplyArguments - arguments for RPC
//
// Owner selects supply by owner, Class without Owner selects supply
// by class, neither selects the issuer total
type SupplyArguments struct {
	Issuer account.Account  `json:"issuer"`
	Owner  *account.Account `json:"owner,omitempty"`
	Class  *token.ClassId   `json:"class,omitempty"`
}

// SupplyReply - result of RPC
type SupplyReply struct {
	Supply uint64 `json:"supply"`
}

// Supply - count of live tokens
func (q *Query) Supply(arguments *SupplyArguments, reply *SupplyReply) error {
	if nil == arguments || "" == arguments.Issuer {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}

	switch {
	case nil != arguments.Owner:
		reply.Supply = q.Ledger.SupplyByOwner(*arguments.Owner, arguments.Issuer, arguments.Class)
	case nil != arguments.Class:
		reply.Supply = q.Ledger.SupplyByClass(arguments.Issuer, *arguments.Class)
	default:
		reply.Supply = q.Ledger.Supply(arguments.Issuer)
	}
	return nil
}

// banlist
// -------

// IsBannedArguments - arguments for RPC
type IsBannedArguments struct {
	Account account.Account `json:"account"`
}

// IsBannedReply - result of RPC
type IsBannedReply struct {
	Banned bool `json:"banned"`
}

// IsBanned - check the banlist
func (q *Query) IsBanned(arguments *IsBannedArguments, reply *IsBannedReply) error {
	if nil == arguments || "" == arguments.Account {
		return fault.MissingParameters
	}
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}
	reply.Banned = q.Ledger.IsBanned(arguments.Account)
	return nil
}

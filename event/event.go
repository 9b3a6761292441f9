// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - NEP-393 audit records for ledger changes
//
// each event is rendered as a single line:
//
//   EVENT_JSON:{"standard":"nep393","version":"1.0.0","event":"mint","data":{...}}
package event

import (
	"encoding/json"

	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/messagebus"
	"github.com/bitmark-inc/sbtregistry/token"
)

// fixed header values
const (
	Prefix   = "EVENT_JSON:"
	Standard = "nep393"
	Version  = "1.0.0"
)

// event names
const (
	MintName    = "mint"
	RecoverName = "recover"
	RenewName   = "renew"
	RevokeName  = "revoke"
	BurnName    = "burn"
	BanName     = "ban"
)

// Event - one audit record
type Event struct {
	Standard string      `json:"standard"`
	Version  string      `json:"version"`
	Event    string      `json:"event"`
	Data     interface{} `json:"data"`
}

// OwnerTokens - tokens minted to one owner
type OwnerTokens struct {
	Owner  account.Account
	Tokens []token.Id
}

// MarshalJSON - as an [owner, [tokens]] pair
func (o OwnerTokens) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{o.Owner, o.Tokens})
}

// MintData - payload of a mint event
type MintData struct {
	Issuer account.Account `json:"issuer"`
	Tokens []OwnerTokens   `json:"tokens"`
}

// TokensData - payload of renew, revoke and burn events
type TokensData struct {
	Issuer account.Account `json:"issuer"`
	Tokens []token.Id      `json:"tokens"`
}

// RecoverData - payload of a recover event
type RecoverData struct {
	Issuer   account.Account `json:"issuer"`
	OldOwner account.Account `json:"old_owner"`
	NewOwner account.Account `json:"new_owner"`
}

func newEvent(name string, data interface{}) Event {
	return Event{
		Standard: Standard,
		Version:  Version,
		Event:    name,
		Data:     data,
	}
}

// Mint - tokens created for one or more owners
func Mint(issuer account.Account, tokens []OwnerTokens) Event {
	return newEvent(MintName, MintData{Issuer: issuer, Tokens: tokens})
}

// Recover - all tokens of an issuer moved to a new owner
func Recover(issuer account.Account, oldOwner account.Account, newOwner account.Account) Event {
	return newEvent(RecoverName, RecoverData{Issuer: issuer, OldOwner: oldOwner, NewOwner: newOwner})
}

// Renew - expiry changed
func Renew(issuer account.Account, tokens []token.Id) Event {
	return newEvent(RenewName, TokensData{Issuer: issuer, Tokens: tokens})
}

// Revoke - tokens revoked, either expired or burned
func Revoke(issuer account.Account, tokens []token.Id) Event {
	return newEvent(RevokeName, TokensData{Issuer: issuer, Tokens: tokens})
}

// Burn - tokens removed
func Burn(issuer account.Account, tokens []token.Id) Event {
	return newEvent(BurnName, TokensData{Issuer: issuer, Tokens: tokens})
}

// Ban - accounts added to the banlist
func Ban(accounts []account.Account) Event {
	return newEvent(BanName, accounts)
}

// String - the EVENT_JSON line
func (e Event) String() string {
	buffer, err := json.Marshal(e)
	if nil != err {
		return Prefix + `{"error":` + `"` + err.Error() + `"}`
	}
	return Prefix + string(buffer)
}

// List - events produced by one ledger operation
type List []Event

// Send - queue every event for the event log, call only after commit
func (l List) Send() {
	for _, e := range l {
		messagebus.Bus.Events.Send(e.Event, []byte(e.String()))
	}
}

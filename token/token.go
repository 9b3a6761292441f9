// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - soulbound token records
package token

import (
	"github.com/bitmark-inc/sbtregistry/account"
)

// Id - per issuer token number, the first token is 1
type Id uint64

// ClassId - token class, never zero
type ClassId uint64

// Metadata - attributes set by the issuer
//
// times are unix milliseconds
type Metadata struct {
	Class         ClassId `json:"class"`
	IssuedAt      uint64  `json:"issued_at,omitempty"`
	ExpiresAt     *uint64 `json:"expires_at,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	ReferenceHash []byte  `json:"reference_hash,omitempty"`
}

// Token - a token as stored for an issuer
type Token struct {
	Token    Id              `json:"token"`
	Owner    account.Account `json:"owner"`
	Metadata Metadata        `json:"metadata"`
}

// OwnedToken - a token as seen from its owner
type OwnedToken struct {
	Token    Id       `json:"token"`
	Metadata Metadata `json:"metadata"`
}

// Record - stored value of a token, the id is part of the key
type Record struct {
	Owner    account.Account
	Metadata Metadata
}

// IsExpired - true if an expiry is set and it is not after now
func (m *Metadata) IsExpired(now uint64) bool {
	return nil != m.ExpiresAt && *m.ExpiresAt <= now
}

// SetExpiry - replace the expiry time
func (m *Metadata) SetExpiry(at uint64) {
	m.ExpiresAt = &at
}

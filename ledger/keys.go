// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/issuer"
	"github.com/bitmark-inc/sbtregistry/token"
)

const (
	separator   = 0x00
	classLength = 8
	tokenLength = 8
)

// account ++ 0x00
func ownerPrefix(owner account.Account) []byte {
	key := make([]byte, 0, len(owner)+1+issuer.IdLength+classLength)
	key = append(key, owner.Bytes()...)
	return append(key, separator)
}

// account ++ 0x00 ++ issuer id
func ownerIssuerKey(owner account.Account, id issuer.Id) []byte {
	return append(ownerPrefix(owner), id.Bytes()...)
}

// account ++ 0x00 ++ issuer id ++ class id
func balanceKey(owner account.Account, id issuer.Id, class token.ClassId) []byte {
	return appendUint64(ownerIssuerKey(owner, id), uint64(class))
}

// issuer id ++ token id
func tokenKey(id issuer.Id, t token.Id) []byte {
	return appendUint64(id.Bytes(), uint64(t))
}

// issuer id ++ class id
func classKey(id issuer.Id, class token.ClassId) []byte {
	return appendUint64(id.Bytes(), uint64(class))
}

func appendUint64(buffer []byte, value uint64) []byte {
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, value)
	return append(buffer, n...)
}

// split the tail of a balance key that starts with prefix
func splitBalanceKey(prefix []byte, key []byte) (issuer.Id, token.ClassId, bool) {
	if !bytes.HasPrefix(key, prefix) {
		return 0, 0, false
	}
	rest := key[len(prefix):]
	if issuer.IdLength+classLength != len(rest) {
		return 0, 0, false
	}
	id := issuer.IdFromBytes(rest)
	class := token.ClassId(binary.BigEndian.Uint64(rest[issuer.IdLength:]))
	return id, class, true
}

// split a token store key that starts with an issuer id
func splitTokenKey(id issuer.Id, key []byte) (token.Id, bool) {
	prefix := id.Bytes()
	if !bytes.HasPrefix(key, prefix) || issuer.IdLength+tokenLength != len(key) {
		return 0, false
	}
	return token.Id(binary.BigEndian.Uint64(key[issuer.IdLength:])), true
}

// recover guard value: issuer id ++ last moved token id
func guardValue(id issuer.Id, last token.Id) []byte {
	return appendUint64(id.Bytes(), uint64(last))
}

func guardIssuer(value []byte) (issuer.Id, bool) {
	if len(value) < issuer.IdLength {
		return 0, false
	}
	return issuer.IdFromBytes(value), true
}

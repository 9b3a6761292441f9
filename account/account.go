// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - registry account names
//
// an account is a lower case name of 2 to 64 characters from a-z 0-9
// and the separators '-' '_' '.', a separator may not start or end the
// name or follow another separator, e.g. "alice.near", "iah-issuer"
package account

import (
	"github.com/bitmark-inc/sbtregistry/fault"
)

// limits on name length
const (
	MinimumLength = 2
	MaximumLength = 64
)

// Account - a validated account name
type Account string

// New - validate a string as an account
func New(s string) (Account, error) {
	a := Account(s)
	if !a.Valid() {
		return "", fault.InvalidAccount
	}
	return a, nil
}

// Valid - check the naming rules
func (a Account) Valid() bool {
	n := len(a)
	if n < MinimumLength || n > MaximumLength {
		return false
	}
	separator := true // disallow a leading separator
	for i := 0; i < n; i += 1 {
		c := a[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			separator = false
		case '-' == c, '_' == c, '.' == c:
			if separator {
				return false
			}
			separator = true
		default:
			return false
		}
	}
	return !separator
}

// Bytes - key bytes for storage
func (a Account) Bytes() []byte {
	return []byte(a)
}

// String - the account name
func (a Account) String() string {
	return string(a)
}

// MarshalText - convert account to text
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText - convert text into an account, rejecting invalid names
func (a *Account) UnmarshalText(s []byte) error {
	acc, err := New(string(s))
	if nil != err {
		return err
	}
	*a = acc
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/token"
	"github.com/bitmark-inc/sbtregistry/util"
)

var settingsKey = []byte("settings")

const settingsTag = 0x02

// Settings - the persisted registry settings record
type Settings struct {
	Authority  account.Account
	IahIssuer  account.Account
	IahClasses []token.ClassId
}

// pack: tag ++ authority ++ iah issuer ++ class count ++ classes
func (s *Settings) pack() ([]byte, error) {
	if !s.Authority.Valid() {
		return nil, fault.ConfigurationError
	}
	if "" != s.IahIssuer && !s.IahIssuer.Valid() {
		return nil, fault.ConfigurationError
	}

	buffer := util.ToVarint64(settingsTag)
	buffer = appendString(buffer, s.Authority.String())
	buffer = appendString(buffer, s.IahIssuer.String())
	buffer = append(buffer, util.ToVarint64(uint64(len(s.IahClasses)))...)
	for _, c := range s.IahClasses {
		if 0 == c {
			return nil, fault.ZeroClass
		}
		buffer = append(buffer, util.ToVarint64(uint64(c))...)
	}
	return buffer, nil
}

func appendString(buffer []byte, s string) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

func unpackSettings(buffer []byte) (*Settings, error) {
	tag, n := util.FromVarint64(buffer)
	if 0 == n || settingsTag != tag {
		return nil, fault.ConfigurationError
	}

	names := make([]string, 2)
	for i := range names {
		length, count := util.ClippedVarint64(buffer[n:], 0, account.MaximumLength)
		if 0 == count || n+count+length > len(buffer) {
			return nil, fault.ConfigurationError
		}
		n += count
		names[i] = string(buffer[n : n+length])
		n += length
	}

	classes, count := util.FromVarint64(buffer[n:])
	if 0 == count {
		return nil, fault.ConfigurationError
	}
	n += count

	s := &Settings{
		Authority: account.Account(names[0]),
		IahIssuer: account.Account(names[1]),
	}
	for i := uint64(0); i < classes; i += 1 {
		c, count := util.FromVarint64(buffer[n:])
		if 0 == count {
			return nil, fault.ConfigurationError
		}
		n += count
		s.IahClasses = append(s.IahClasses, token.ClassId(c))
	}
	if n != len(buffer) {
		return nil, fault.ConfigurationError
	}
	return s, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/util"
)

// Unpack - turn a byte slice into a record
func (packed Packed) Unpack() (*Record, error) {
	tag, n := util.FromVarint64(packed)
	if 0 == n || recordTag != tag {
		return nil, fault.InvalidPackedToken
	}

	owner, n, err := unpackBytes(packed, n)
	if nil != err {
		return nil, err
	}
	record := &Record{
		Owner: account.Account(owner),
	}
	if !record.Owner.Valid() {
		return nil, fault.InvalidPackedToken
	}

	m := &record.Metadata
	class, n, err := unpackUint64(packed, n)
	if nil != err {
		return nil, err
	}
	m.Class = ClassId(class)

	m.IssuedAt, n, err = unpackUint64(packed, n)
	if nil != err {
		return nil, err
	}

	if n >= len(packed) {
		return nil, fault.InvalidPackedToken
	}
	flags := packed[n]
	n += 1

	if 0 != flags&hasExpiry {
		expires := uint64(0)
		expires, n, err = unpackUint64(packed, n)
		if nil != err {
			return nil, err
		}
		m.ExpiresAt = &expires
	}
	if 0 != flags&hasReference {
		reference := []byte(nil)
		reference, n, err = unpackBytes(packed, n)
		if nil != err {
			return nil, err
		}
		s := string(reference)
		m.Reference = &s
	}
	if 0 != flags&hasReferenceHash {
		m.ReferenceHash, n, err = unpackBytes(packed, n)
		if nil != err {
			return nil, err
		}
	}

	if n != len(packed) {
		return nil, fault.InvalidPackedToken
	}
	return record, nil
}

func unpackUint64(packed Packed, n int) (uint64, int, error) {
	value, count := util.FromVarint64(packed[n:])
	if 0 == count {
		return 0, n, fault.InvalidPackedToken
	}
	return value, n + count, nil
}

func unpackBytes(packed Packed, n int) ([]byte, int, error) {
	length, count := util.ClippedVarint64(packed[n:], 0, 8192)
	if 0 == count {
		return nil, n, fault.InvalidPackedToken
	}
	n += count
	if n+length > len(packed) {
		return nil, n, fault.InvalidPackedToken
	}
	data := make([]byte, length)
	copy(data, packed[n:n+length])
	return data, n + length, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/util"
)

// Packed - packed record bytes
type Packed []byte

// record format tag
const recordTag = 0x01

// optional field flags
const (
	hasExpiry        = 0x01
	hasReference     = 0x02
	hasReferenceHash = 0x04
)

// field limits
const (
	maxReferenceLength     = 2048
	maxReferenceHashLength = 64
)

// Pack - Varint64(tag) followed by owner, class, issued at, a flags
// byte and then each optional field that is present
func (record *Record) Pack() (Packed, error) {
	if !record.Owner.Valid() {
		return nil, fault.InvalidAccount
	}
	m := &record.Metadata
	if 0 == m.Class {
		return nil, fault.ZeroClass
	}

	flags := byte(0)
	if nil != m.ExpiresAt {
		flags |= hasExpiry
	}
	if nil != m.Reference {
		if len(*m.Reference) > maxReferenceLength {
			return nil, fault.ReferenceTooLong
		}
		flags |= hasReference
	}
	if nil != m.ReferenceHash {
		if len(m.ReferenceHash) > maxReferenceHashLength {
			return nil, fault.ReferenceTooLong
		}
		flags |= hasReferenceHash
	}

	message := util.ToVarint64(recordTag)
	message = appendBytes(message, record.Owner.Bytes())
	message = appendUint64(message, uint64(m.Class))
	message = appendUint64(message, m.IssuedAt)
	message = append(message, flags)
	if nil != m.ExpiresAt {
		message = appendUint64(message, *m.ExpiresAt)
	}
	if nil != m.Reference {
		message = appendBytes(message, []byte(*m.Reference))
	}
	if nil != m.ReferenceHash {
		message = appendBytes(message, m.ReferenceHash)
	}
	return message, nil
}

// append a single field to a buffer
func appendBytes(buffer []byte, data []byte) []byte {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToVarint64(value)...)
}

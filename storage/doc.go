// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. issuer id    = big endian uint32 (4 bytes)
// 4. token id     = big endian uint64 (8 bytes)
// 5. class id     = big endian uint64 (8 bytes)
// 6. count        = big endian uint64 (8 bytes)
// 7. account      = account name bytes, never containing 0x00
// 8. *others*     = byte values of various length
//
// Issuers:
//
//   I ++ account               - issuer directory
//                                data: issuer id
//   J ++ issuer id             - reverse issuer directory
//                                data: account
//   R ++ name                  - registry singletons
//                                "next-issuer": issuer id
//                                "settings":    packed registry settings
//
// Tokens:
//
//   T ++ issuer id ++ token id - token store
//                                data: packed token (owner ++ metadata)
//   N ++ issuer id             - last assigned token id
//                                data: token id
//   B ++ account ++ 0x00 ++ issuer id ++ class id
//                              - balance index
//                                data: token id
//
// Supply:
//
//   O ++ account ++ 0x00 ++ issuer id
//                              - supply by owner
//                                data: count
//   C ++ issuer id ++ class id - supply by class
//                                data: count
//   S ++ issuer id             - supply by issuer
//                                data: count
//
// Accounts:
//
//   G ++ account               - recover in progress
//                                data: issuer id ++ token id
//   X ++ account               - banned account
//                                data: empty
//
// Testing:
//   Z ++ key                   - testing data
package storage

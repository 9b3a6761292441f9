// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - soulbound token registry operations
//
// every mutation resolves the calling issuer, then updates the token
// store, the balance index and the supply counters inside a single
// storage transaction. Events are queued only after the commit.
//
// queries read committed data; any owner with an active recover guard
// appears to hold nothing.
package ledger

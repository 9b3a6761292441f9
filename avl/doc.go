// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with ordered iteration from an
// arbitrary starting key
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// An insert with an existing key overwrites the value.  An iterator
// is only valid until the next Insert or Delete on its tree.
package avl

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners for the JSON RPC and HTTPS servers
package listeners

// Listener - a configured server that can start accepting
type Listener interface {
	Serve() error
}

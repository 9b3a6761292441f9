// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/counter"
	"github.com/bitmark-inc/sbtregistry/mode"
	"github.com/bitmark-inc/sbtregistry/rpc/admin"
	"github.com/bitmark-inc/sbtregistry/rpc/human"
	"github.com/bitmark-inc/sbtregistry/rpc/node"
	"github.com/bitmark-inc/sbtregistry/rpc/query"
	"github.com/bitmark-inc/sbtregistry/rpc/registry"
)

// Ledger - every ledger operation reachable over RPC
type Ledger interface {
	registry.Ledger
	query.Ledger
	admin.Ledger
}

// Services - the back ends of the RPC services
type Services struct {
	Ledger  Ledger
	Checker human.Checker
	Targets human.Targets
}

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(registry.New(log, services.Ledger, mode.Is))
	_ = server.Register(query.New(log, services.Ledger))
	_ = server.Register(admin.New(log, services.Ledger, mode.Is))
	_ = server.Register(human.New(log, services.Checker, services.Targets, mode.Is))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}

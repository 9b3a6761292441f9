// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sbt",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "ledger mutations by operation and result",
		},
		[]string{"operation", "result"},
	)
	tokensMinted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sbt",
			Subsystem: "ledger",
			Name:      "tokens_minted_total",
			Help:      "tokens created",
		},
	)
	tokensBurned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sbt",
			Subsystem: "ledger",
			Name:      "tokens_burned_total",
			Help:      "tokens removed",
		},
	)
)

// Collectors - metrics to register with a prometheus registry
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{operations, tokensMinted, tokensBurned}
}

func observe(operation string, err error) {
	result := "ok"
	if nil != err {
		result = "error"
	}
	operations.WithLabelValues(operation, result).Inc()
}

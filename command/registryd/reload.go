// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/sbtregistry/configuration"
	"github.com/bitmark-inc/sbtregistry/ledger"
)

type limitSetter interface {
	SetLimits(ledger.Limits)
}

// background process applying the reloadable parts of the
// configuration, anything else needs a restart
type reloader struct {
	log      *logger.L
	fileName string
	watcher  *configuration.Watcher
	ledger   limitSetter
}

func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.watcher.Removed():
			r.log.Warn("configuration file removed, reload disabled")
			<-shutdown
			break loop
		case <-r.watcher.Changes():
			r.reload()
		}
	}
	r.log.Info("stopped")
}

func (r *reloader) reload() {
	conf, err := configuration.Get(r.fileName)
	if nil != err {
		r.log.Errorf("failed to read configuration from: %q  error: %s", r.fileName, err)
		return
	}

	logger.LoadLevels(conf.Logging.Levels)

	limits := conf.Ledger.Limits()
	r.ledger.SetLimits(limits)
	r.log.Infof("limits: %+v", limits)
}

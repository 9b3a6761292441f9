// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/storage"
)

// Migrate - upgrade the database from an older version
//
// only the settings record is added, all other entries are untouched
func Migrate(log *logger.L, conf Configuration, version int) error {
	if version >= storage.CurrentVersion {
		return nil
	}
	if version < storage.VersionSettings {
		log.Infof("migrate: version: %d  add settings record", version)

		if nil == storage.Pool.Registry.Get(settingsKey) {
			settings, err := conf.Settings()
			if nil != err {
				return err
			}
			packed, err := settings.pack()
			if nil != err {
				return err
			}
			trx, err := storage.NewDBTransaction()
			if nil != err {
				return err
			}
			trx.Put(storage.Pool.Registry, settingsKey, packed)
			err = trx.Commit()
			if nil != err {
				return err
			}
		}
		version = storage.VersionSettings
	}

	log.Infof("migrate: database now at version: %d", version)
	return storage.UpdateVersion(version)
}

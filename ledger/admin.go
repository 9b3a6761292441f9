// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/event"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/storage"
)

// AddIssuer - register an issuer, false if it was already registered
func (l *Ledger) AddIssuer(caller account.Account, name account.Account) (bool, error) {
	l.Lock()
	defer l.Unlock()

	if caller != l.settings.Authority {
		l.log.Warnf("add issuer: %s  rejected caller: %s", name, caller)
		observe("add_issuer", fault.NotAuthorised)
		return false, fault.NotAuthorised
	}

	added := false
	err := l.update(func(trx storage.Transaction) error {
		_, ok, err := l.issuers.Register(trx, name)
		added = ok
		return err
	})
	observe("add_issuer", err)
	return added, err
}

// Ban - add accounts to the banlist
func (l *Ledger) Ban(caller account.Account, accounts []account.Account) error {
	l.Lock()
	err := l.ban(caller, accounts)
	l.Unlock()

	observe("ban", err)
	if nil != err {
		return err
	}
	l.log.Infof("banned: %v", accounts)
	event.List{event.Ban(accounts)}.Send()
	return nil
}

func (l *Ledger) ban(caller account.Account, accounts []account.Account) error {
	if caller != l.settings.Authority {
		l.log.Warnf("ban: %v  rejected caller: %s", accounts, caller)
		return fault.NotAuthorised
	}
	for _, a := range accounts {
		if !a.Valid() {
			return fault.InvalidAccount
		}
	}

	return l.update(func(trx storage.Transaction) error {
		for _, a := range accounts {
			trx.Put(l.pools.Banlist, a.Bytes(), []byte{})
		}
		return nil
	})
}

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
	"github.com/bitmark-inc/sbtregistry/token"
)

// Renew - set a new expiry on tokens of the calling issuer
func (l *Ledger) Renew(caller account.Account, ids []token.Id, expiresAt uint64) error {
	l.Lock()
	err := l.renew(caller, ids, expiresAt)
	l.Unlock()

	observe("renew", err)
	if nil != err {
		l.log.Debugf("renew: issuer: %s  error: %s", caller, err)
		return err
	}

	event.List{event.Renew(caller, ids)}.Send()
	return nil
}

func (l *Ledger) renew(caller account.Account, ids []token.Id, expiresAt uint64) error {
	issuerId, err := l.issuers.Resolve(caller)
	if nil != err {
		return err
	}
	if len(ids) > l.CurrentLimits().MaxTokensPerCall {
		return fault.TooManyTokens
	}
	return l.update(func(trx storage.Transaction) error {
		return l.setExpiry(trx, issuerId, ids, expiresAt)
	})
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
)

func TestValidNames(t *testing.T) {
	valid := []string{
		"ab",
		"alice.near",
		"iah-issuer.testnet",
		"a_b-c.d",
		"0123456789",
		"abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijkl",
	}
	for i, s := range valid {
		a, err := account.New(s)
		assert.Nil(t, err, "%d: %q rejected", i, s)
		assert.Equal(t, s, a.String(), "%d: wrong string", i)
	}
}

func TestInvalidNames(t *testing.T) {
	invalid := []string{
		"",
		"a",
		"Alice",
		".alice",
		"alice.",
		"alice..near",
		"alice-.near",
		"alice near",
		"alice\x00bob",
		"abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijklm",
	}
	for i, s := range invalid {
		_, err := account.New(s)
		assert.Equal(t, fault.InvalidAccount, err, "%d: %q accepted", i, s)
	}
}

func TestJSON(t *testing.T) {
	var holder struct {
		Owner account.Account `json:"owner"`
	}
	err := json.Unmarshal([]byte(`{"owner":"bob.near"}`), &holder)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, account.Account("bob.near"), holder.Owner, "wrong owner")

	err = json.Unmarshal([]byte(`{"owner":"Bob"}`), &holder)
	assert.NotNil(t, err, "invalid owner accepted")

	buffer, err := json.Marshal(holder)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"owner":"bob.near"}`, string(buffer), "wrong json")
}

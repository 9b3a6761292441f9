// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sbtregistry/configuration"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/ledger"
)

const sample = `
local M = {}

M.data_directory = "."
M.pidfile = "registryd.pid"

M.database = {
    directory = "db",
    name = "test.leveldb",
}

M.ledger = {
    authority = "registry-dao.near",
    max_tokens_per_call = 50,
    iah_issuer = "fractal.near",
    iah_classes = { 1, 2 },
}

M.humancheck = {
    timeout = 5,
    targets = {
        ["market.near"] = "https://127.0.0.1:8443/market",
    },
}

M.client_rpc = {
    maximum_connections = 20,
    listen = { "127.0.0.1:2130" },
}

M.https_rpc = {
    listen = { "127.0.0.1:2131" },
    allow = {
        details = { "127.0.0.1/32" },
    },
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        ledger = "debug",
    },
}

-- variables from the program
M.logging.file = "from-" .. (config_directory ~= "" and "lua" or "none") .. ".log"

return M
`

func writeFile(t *testing.T, text string) string {
	dir := t.TempDir()
	name := filepath.Join(dir, "registryd.conf")
	if err := os.WriteFile(name, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return name
}

func TestGet(t *testing.T) {
	name := writeFile(t, sample)
	dir := filepath.Dir(name)

	c, err := configuration.Get(name)
	assert.Nil(t, err, "wrong error")

	assert.Equal(t, filepath.Clean(dir)+string(filepath.Separator), c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "registryd.pid"), c.PidFile, "pid file")
	assert.Equal(t, filepath.Join(dir, "db"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "db", "test.leveldb"), c.Database.Name, "database name")

	assert.Equal(t, "registry-dao.near", c.Ledger.Authority, "authority")
	assert.Equal(t, 50, c.Ledger.MaxTokensPerCall, "max tokens")
	assert.Equal(t, ledger.DefaultRecoverBatch, c.Ledger.RecoverBatch, "recover batch default")
	assert.Equal(t, uint64(ledger.DefaultByteCost), c.Ledger.ByteCost, "byte cost default")
	assert.Equal(t, []uint64{1, 2}, c.Ledger.IahClasses, "iah classes")

	assert.Equal(t, 5, c.HumanCheck.Timeout, "timeout")
	assert.Equal(t, "https://127.0.0.1:8443/market", c.HumanCheck.Targets["market.near"], "target")

	assert.Equal(t, uint64(20), c.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.ClientRPC.Listen, "rpc listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "rpc certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), c.HttpsRPC.PrivateKey, "https key")
	assert.Equal(t, []string{"127.0.0.1/32"}, c.HttpsRPC.Allow["details"], "https allow")

	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "from-lua.log", c.Logging.File, "log file")
	assert.Equal(t, "debug", c.Logging.Levels["ledger"], "log level")

	info, err := os.Stat(c.Database.Directory)
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database directory not a directory")
}

func TestGetInvalid(t *testing.T) {
	items := []struct {
		name string
		text string
	}{
		{"missing data directory", `return {}`},
		{"not a directory", `return { data_directory = "/no/such/dir" }`},
		{"path as database name", `return { data_directory = ".", database = { name = "a/b.leveldb" } }`},
		{"lua error", `return {`},
	}

	for _, item := range items {
		_, err := configuration.Get(writeFile(t, item.text))
		assert.NotNil(t, err, item.name)
	}
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	var c configuration.Configuration
	err := configuration.ParseConfigurationFile(writeFile(t, `return 1`), &c, nil)
	assert.Equal(t, fault.ConfigurationError, err, "wrong error")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/configuration"
	"github.com/bitmark-inc/sbtregistry/fixtures"
)

const waitTime = 2 * time.Second

func TestWatcher(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	name := writeFile(t, `return {}`)

	w, err := configuration.NewWatcher(logger.New(fixtures.LogCategory), name)
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	defer w.Close()

	err = w.Start()
	assert.Nil(t, err, "wrong start")

	// other files in the directory are ignored
	err = os.WriteFile(filepath.Join(filepath.Dir(name), "other"), []byte("x"), 0600)
	assert.Nil(t, err, "write other")

	select {
	case <-w.Changes():
		t.Fatal("change signalled for another file")
	case <-time.After(100 * time.Millisecond):
	}

	err = os.WriteFile(name, []byte(`return { pidfile = "x" }`), 0600)
	assert.Nil(t, err, "rewrite")

	select {
	case <-w.Changes():
	case <-time.After(waitTime):
		t.Fatal("no change signalled")
	}

	err = os.Remove(name)
	assert.Nil(t, err, "remove")

	select {
	case <-w.Removed():
	case <-time.After(waitTime):
		t.Fatal("no removal signalled")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := configuration.NewWatcher(logger.New(fixtures.LogCategory), filepath.Join(t.TempDir(), "none"))
	assert.NotNil(t, err, "missing file accepted")
}

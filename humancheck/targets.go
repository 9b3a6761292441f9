// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package humancheck

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/account"
)

// TargetConfiguration - humancheck section of the configuration file
type TargetConfiguration struct {
	Targets map[string]string `gluamapper:"targets" json:"targets"`
	Timeout int               `gluamapper:"timeout" json:"timeout"` // seconds
}

// Targets - named call targets
type Targets struct {
	sync.RWMutex
	targets map[account.Account]Target
}

// NewTargets - HTTP targets from a configuration
func NewTargets(conf TargetConfiguration) (*Targets, error) {
	timeout := time.Duration(conf.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	t := &Targets{
		targets: make(map[account.Account]Target),
	}
	for name, url := range conf.Targets {
		a, err := account.New(name)
		if nil != err {
			return nil, err
		}
		t.Add(a, &HTTPTarget{URL: url, Client: client})
	}
	return t, nil
}

// Add - register or replace a target
func (t *Targets) Add(name account.Account, target Target) {
	t.Lock()
	t.targets[name] = target
	t.Unlock()
}

// Get - a target by name
func (t *Targets) Get(name account.Account) (Target, bool) {
	t.RLock()
	defer t.RUnlock()
	target, ok := t.targets[name]
	return target, ok
}

// HTTPTarget - forward calls as an HTTP POST to URL/function
type HTTPTarget struct {
	URL    string
	Client *http.Client
}

// Call - post the arguments, any non 2xx status is an error
func (h *HTTPTarget) Call(function string, arguments []byte, deposit uint64) error {
	url := strings.TrimRight(h.URL, "/") + "/" + function
	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(arguments))
	if nil != err {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Attached-Deposit", strconv.FormatUint(deposit, 10))

	response, err := h.Client.Do(request)
	if nil != err {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("target: %s  status: %s", url, response.Status)
	}
	return nil
}

// LogRefunder - record refunds on a log channel
type LogRefunder struct {
	Log *logger.L
}

// Refund - log the amount due back to an account
func (r LogRefunder) Refund(to account.Account, amount uint64) error {
	r.Log.Infof("refund: %d  to: %s", amount, to)
	return nil
}

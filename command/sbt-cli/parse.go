// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/sbtregistry/account"
	"github.com/bitmark-inc/sbtregistry/fault"
	"github.com/bitmark-inc/sbtregistry/ledger"
	"github.com/bitmark-inc/sbtregistry/token"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidPayload = fault.InvalidError("payload is not valid JSON")
	ErrMissingCaller  = fault.InvalidError("caller account is required")
	ErrMissingClasses = fault.InvalidError("token classes are required")
	ErrMissingExpiry  = fault.InvalidError("expiry time is required")
	ErrMissingOwner   = fault.InvalidError("owner or token spec is required")
	ErrMissingTokens  = fault.InvalidError("token ids are required")
)

func checkAccount(s string) (account.Account, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return "", fault.MissingParameters
	}
	a, err := account.New(s)
	if nil != err {
		return "", err
	}
	return a, nil
}

func checkOptionalAccount(s string) (*account.Account, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}
	a, err := checkAccount(s)
	if nil != err {
		return nil, err
	}
	return &a, nil
}

func parseNumbers(s string) ([]uint64, error) {
	numbers := []uint64{}
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if "" == f {
			continue
		}
		n, err := strconv.ParseUint(f, 10, 64)
		if nil != err {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func parseTokenIds(s string) ([]token.Id, error) {
	numbers, err := parseNumbers(s)
	if nil != err {
		return nil, err
	}
	if 0 == len(numbers) {
		return nil, ErrMissingTokens
	}
	ids := make([]token.Id, len(numbers))
	for i, n := range numbers {
		ids[i] = token.Id(n)
	}
	return ids, nil
}

func parseOptionalClass(s string) (*token.ClassId, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if nil != err {
		return nil, err
	}
	class := token.ClassId(n)
	return &class, nil
}

func parseOptionalToken(s string) (*token.Id, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if nil != err {
		return nil, err
	}
	id := token.Id(n)
	return &id, nil
}

// one token per class for a single owner
func buildMintItem(owner account.Account, classes string, expiresAt uint64, reference string) (ledger.MintItem, error) {
	numbers, err := parseNumbers(classes)
	if nil != err {
		return ledger.MintItem{}, err
	}
	if 0 == len(numbers) {
		return ledger.MintItem{}, ErrMissingClasses
	}

	item := ledger.MintItem{
		Owner:    owner,
		Metadata: make([]token.Metadata, len(numbers)),
	}
	for i, n := range numbers {
		m := token.Metadata{
			Class: token.ClassId(n),
		}
		if 0 != expiresAt {
			at := expiresAt
			m.ExpiresAt = &at
		}
		if "" != reference {
			r := reference
			m.Reference = &r
		}
		item.Metadata[i] = m
	}
	return item, nil
}

// token spec file: [{"owner": "...", "metadata": [{...}]}]
func readMintSpec(fileName string) ([]ledger.MintItem, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	var spec []ledger.MintItem
	if err := json.Unmarshal(data, &spec); nil != err {
		return nil, err
	}
	if 0 == len(spec) {
		return nil, ErrMissingOwner
	}
	return spec, nil
}

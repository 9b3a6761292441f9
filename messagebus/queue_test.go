// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/sbtregistry/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: [][]byte{[]byte("p1")},
		},
		{
			Command:    "c2",
			Parameters: nil,
		},
		{
			Command:    "c3",
			Parameters: [][]byte{[]byte("p3a"), []byte("p3b")},
		},
	}

	for _, item := range items {
		messagebus.Bus.TestQueue.Send(item.Command, item.Parameters...)
	}
	assert.Equal(t, len(items), messagebus.Bus.TestQueue.Len(), "wrong queue length")

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item, received, "wrong message")
	}
}

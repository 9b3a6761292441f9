// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - a queued item
type Message struct {
	Command    string // event name
	Parameters [][]byte
}

// Queue - a buffered single consumer queue
type Queue struct {
	c chan Message
}

// the set of queues
type busses struct {
	Events    *Queue // committed ledger events
	TestQueue *Queue
}

// Bus - all available queues
var Bus = busses{
	Events:    newQueue(queueSize),
	TestQueue: newQueue(queueSize),
}

func newQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, blocks while the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Len - number of messages waiting
func (queue *Queue) Len() int {
	return len(queue.c)
}

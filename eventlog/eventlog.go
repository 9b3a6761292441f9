// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eventlog - write committed ledger events to a log channel
package eventlog

import (
	"github.com/bitmark-inc/sbtregistry/counter"
	"github.com/bitmark-inc/sbtregistry/messagebus"
)

// Writer - destination of event lines, satisfied by *logger.L
type Writer interface {
	Infof(format string, arguments ...interface{})
}

// Process - background event writer
type Process struct {
	log     Writer
	queue   <-chan messagebus.Message
	written counter.Counter
}

// New - writer reading the event bus
func New(log Writer) *Process {
	return NewFromQueue(log, messagebus.Bus.Events)
}

// NewFromQueue - writer reading a specific queue
func NewFromQueue(log Writer, queue *messagebus.Queue) *Process {
	return &Process{
		log:   log,
		queue: queue.Chan(),
	}
}

// Written - number of events written so far
func (p *Process) Written() uint64 {
	return p.written.Uint64()
}

// Run - background loop, anything still queued at shutdown is written
func (p *Process) Run(args interface{}, shutdown <-chan struct{}) {
	p.log.Infof("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-p.queue:
			p.write(item)
		}
	}

drain:
	for {
		select {
		case item := <-p.queue:
			p.write(item)
		default:
			break drain
		}
	}
	p.log.Infof("shutting down…  written: %d", p.Written())
}

func (p *Process) write(item messagebus.Message) {
	for _, line := range item.Parameters {
		p.log.Infof("%s", line)
	}
	p.written.Increment()
}

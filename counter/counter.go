// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - goroutine safe counters for connection limits
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned counter that wraps on underflow
type Counter struct {
	n atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Decrement - subtract 1 from a counter, returns new value
func (c *Counter) Decrement() uint64 {
	return c.n.Add(^uint64(0))
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}

// IncrementBelow - increment only if the result would not exceed
// limit, returns false and leaves the counter alone otherwise
func (c *Counter) IncrementBelow(limit uint64) bool {
	for {
		n := c.n.Load()
		if n >= limit {
			return false
		}
		if c.n.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Check - verify ordering, heights and balance of every node
func (tree *Tree) Check() bool {
	n, ok := check(tree.root, nil, nil)
	if ok && n != tree.count {
		fmt.Printf("count mismatch: actual: %d  expected: %d\n", n, tree.count)
		return false
	}
	return ok
}

// internal: consistency checker, returns node count of the sub-tree
func check(p *Node, low Item, high Item) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil != low && p.key.Compare(low) <= 0 {
		fmt.Printf("fail at node: %v  not above: %v\n", p.key, low)
		return 0, false
	}
	if nil != high && p.key.Compare(high) >= 0 {
		fmt.Printf("fail at node: %v  not below: %v\n", p.key, high)
		return 0, false
	}
	l, ok := check(p.left, low, p.key)
	if !ok {
		return 0, false
	}
	r, ok := check(p.right, p.key, high)
	if !ok {
		return 0, false
	}
	hl := height(p.left)
	hr := height(p.right)
	if hl-hr > 1 || hr-hl > 1 {
		fmt.Printf("unbalanced node: %v  left: %d  right: %d\n", p.key, hl, hr)
		return 0, false
	}
	h := hl
	if hr > h {
		h = hr
	}
	if p.height != h+1 {
		fmt.Printf("bad height at node: %v  actual: %d  expected: %d\n", p.key, p.height, h+1)
		return 0, false
	}
	return l + r + 1, true
}

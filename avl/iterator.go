// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - ascending traversal of a tree
type Iterator struct {
	stack   []*Node
	current *Node
}

// Seek - iterator positioned before the first node whose key is >= key
// a nil key starts from the lowest node
func (tree *Tree) Seek(key Item) *Iterator {
	it := &Iterator{
		stack: make([]*Node, 0, height(tree.root)),
	}
	p := tree.root
	for nil != p {
		if nil == key || p.key.Compare(key) >= 0 {
			it.stack = append(it.stack, p)
			p = p.left
		} else {
			p = p.right
		}
	}
	return it
}

// Next - advance to the next node, false when exhausted
func (it *Iterator) Next() bool {
	n := len(it.stack)
	if 0 == n {
		it.current = nil
		return false
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	for q := p.right; nil != q; q = q.left {
		it.stack = append(it.stack, q)
	}
	it.current = p
	return true
}

// Node - the current node or nil
func (it *Iterator) Node() *Node {
	return it.current
}

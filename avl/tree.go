// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // height of this sub-tree, leaf = 1
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	p := tree.root
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Insert - insert a new node or overwrite the value of an existing one
// returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	added := false
	tree.root, added = insert(tree.root, key, value)
	if added {
		tree.count += 1
	}
	return added
}

// Delete - removes a specific item from the tree and returns its value
func (tree *Tree) Delete(key Item) interface{} {
	root, value, removed := remove(tree.root, key)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return value
}

func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

func (p *Node) fix() {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = l + 1
	} else {
		p.height = r + 1
	}
}

func rotateRight(p *Node) *Node {
	q := p.left
	p.left = q.right
	q.right = p
	p.fix()
	q.fix()
	return q
}

func rotateLeft(p *Node) *Node {
	q := p.right
	p.right = q.left
	q.left = p
	p.fix()
	q.fix()
	return q
}

// restore the balance of a sub-tree whose children differ in height
// by at most two
func rebalance(p *Node) *Node {
	p.fix()
	bf := height(p.left) - height(p.right)
	switch {
	case bf > 1: // left heavy
		if height(p.left.left) < height(p.left.right) {
			p.left = rotateLeft(p.left) // LR case
		}
		return rotateRight(p)
	case bf < -1: // right heavy
		if height(p.right.right) < height(p.right.left) {
			p.right = rotateRight(p.right) // RL case
		}
		return rotateLeft(p)
	}
	return p
}

func insert(p *Node, key Item, value interface{}) (*Node, bool) {
	if nil == p {
		return &Node{
			key:    key,
			value:  value,
			height: 1,
		}, true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(p.left, key, value)
	case -1: // p.key < key
		p.right, added = insert(p.right, key, value)
	default:
		p.value = value
		return p, false
	}
	return rebalance(p), added
}

func remove(p *Node, key Item) (*Node, interface{}, bool) {
	if nil == p {
		return nil, nil, false
	}
	value := interface{}(nil)
	removed := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, value, removed = remove(p.left, key)
	case -1: // p.key < key
		p.right, value, removed = remove(p.right, key)
	default:
		value = p.value
		if nil == p.left {
			return p.right, value, true
		}
		if nil == p.right {
			return p.left, value, true
		}
		// replace by in-order successor
		s := p.right.first()
		s.right = removeFirst(p.right)
		s.left = p.left
		return rebalance(s), value, true
	}
	if !removed {
		return p, nil, false
	}
	return rebalance(p), value, true
}

// detach the lowest node of a sub-tree, returning the new sub-tree root
func removeFirst(p *Node) *Node {
	if nil == p.left {
		return p.right
	}
	p.left = removeFirst(p.left)
	return rebalance(p)
}

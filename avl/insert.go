// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add an item to the tree
//
// an item whose key is already present is appended to the end of that
// key's duplicate chain; the only error is from the create hooks and
// in that case the tree is not changed
func (tree *Tree[K, V]) Insert(key K, value V) error {
	n, err := tree.newNode(key, value)
	if nil != err {
		return err
	}

	if nil == tree.root {
		tree.root = n
		tree.count = 1
		return nil
	}

	// find the insertion point
	p := tree.root
	for {
		c := tree.handler.Compare(p.key, n.key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				p.left = n
				n.up = p
				linkBefore(n, p)
				tree.count += 1
				tree.retrace(p)
				return nil
			}
			p = p.left

		case c < 0: // p.key < key
			if nil == p.right {
				p.right = n
				n.up = p
				linkAfter(n, p.tail)
				tree.count += 1
				tree.retrace(p)
				return nil
			}
			p = p.right

		default: // duplicate key
			linkAfter(n, p.tail)
			p.tail = n
			n.tail = nil
			n.height = 0
			n.nodes = 0
			tree.count += 1
			return nil
		}
	}
}

// internal: put n into the ordered list just before p
func linkBefore[K, V any](n *Node[K, V], p *Node[K, V]) {
	n.next = p
	n.prev = p.prev
	if nil != p.prev {
		p.prev.next = n
	}
	p.prev = n
}

// internal: put n into the ordered list just after p
func linkAfter[K, V any](n *Node[K, V], p *Node[K, V]) {
	n.prev = p
	n.next = p.next
	if nil != p.next {
		p.next.prev = n
	}
	p.next = n
}

// internal: take n out of the ordered list
func unlink[K, V any](n *Node[K, V]) {
	if nil != n.prev {
		n.prev.next = n.next
	}
	if nil != n.next {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

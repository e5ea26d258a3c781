// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes one item with the given key from the tree
//
// if the key has duplicates the newest duplicate is removed and the
// tree structure is not touched; returns false if the key is absent
func (tree *Tree[K, V]) Delete(key K) bool {
	p := tree.search(tree.root, key)
	if nil == p { // key not in tree
		return false
	}

	if p.tail != p {
		q := p.tail
		p.tail = q.prev
		unlink(q)
		tree.count -= 1
		tree.freeNode(q) // return deleted node to pool
		return true
	}

	switch {
	case nil == p.left && nil == p.right:
		tree.deleteLeaf(p)
	case nil != p.left && nil != p.right:
		tree.deleteSplit(p)
	default:
		tree.deleteOneChild(p)
	}

	unlink(p)
	tree.count -= 1
	tree.freeNode(p) // return deleted node to pool
	return true
}

// internal: remove a head that has no children
func (tree *Tree[K, V]) deleteLeaf(p *Node[K, V]) {
	up := p.up
	tree.replaceChild(p, nil)
	p.up = nil
	tree.retrace(up)
}

// internal: remove a head with exactly one child by lifting the child
func (tree *Tree[K, V]) deleteOneChild(p *Node[K, V]) {
	child := p.left
	if nil == child {
		child = p.right
	}
	up := p.up
	tree.replaceChild(p, child)
	child.up = up
	p.up = nil
	p.left = nil
	p.right = nil
	tree.retrace(up)
}

// internal: remove a head with two children by moving its successor
// head into its place
//
// the successor has no left child; the tree lost height where the
// successor was taken from, so retracing starts at its old parent
func (tree *Tree[K, V]) deleteSplit(p *Node[K, V]) {
	s := p.right.minimum()
	start := s.up
	if start == p {
		start = s
	} else {
		// detach s, its right sub-tree takes its place
		start.left = s.right
		if nil != s.right {
			s.right.up = start
		}
		s.right = p.right
		s.right.up = s
	}

	s.left = p.left
	s.left.up = s

	tree.replaceChild(p, s)
	s.up = p.up
	s.height = p.height
	s.nodes = p.nodes

	p.up = nil
	p.left = nil
	p.right = nil

	tree.retrace(start)
}

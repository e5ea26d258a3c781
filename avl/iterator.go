// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Minimum - return the chain head with the lowest key
func (tree *Tree[K, V]) Minimum() *Node[K, V] {
	return tree.root.minimum()
}

// Maximum - return the chain head with the highest key
func (tree *Tree[K, V]) Maximum() *Node[K, V] {
	return tree.root.maximum()
}

// First - return the first item in key order
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.minimum()
}

// Last - return the last item in key order, this is the end of the
// highest key's duplicate chain
func (tree *Tree[K, V]) Last() *Node[K, V] {
	p := tree.root.maximum()
	if nil == p {
		return nil
	}
	return p.tail
}

// internal: lowest node in a sub-tree
func (tree *Node[K, V]) minimum() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// internal: highest node in a sub-tree
func (tree *Node[K, V]) maximum() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - the following item in key order, duplicates included, or
// nil if no more items
func (tree *Node[K, V]) Next() *Node[K, V] {
	return tree.next
}

// Prev - the preceding item in key order, duplicates included, or
// nil if no more items
func (tree *Node[K, V]) Prev() *Node[K, V] {
	return tree.prev
}

// Successor - given a chain head, return the chain head with the
// next highest key or nil if no more nodes
func (tree *Node[K, V]) Successor() *Node[K, V] {
	if tree.right != nil {
		return tree.right.minimum()
	}
	for {
		up := tree.up
		if up == nil {
			return nil
		}
		if up.left == tree { // up.key > tree.key
			return up
		}
		tree = up
	}
}

// Predecessor - given a chain head, return the chain head with the
// next lowest key or nil if no more nodes
func (tree *Node[K, V]) Predecessor() *Node[K, V] {
	if tree.left != nil {
		return tree.left.maximum()
	}
	for {
		up := tree.up
		if up == nil {
			return nil
		}
		if up.right == tree { // up.key < tree.key
			return up
		}
		tree = up
	}
}

// Walk - visit every item in ascending order until fn returns false
func (tree *Tree[K, V]) Walk(fn func(*Node[K, V]) bool) {
	for p := tree.First(); nil != p; p = p.next {
		if !fn(p) {
			return
		}
	}
}

// WalkReverse - visit every item in descending order until fn returns
// false, duplicates come out newest first
func (tree *Tree[K, V]) WalkReverse(fn func(*Node[K, V]) bool) {
	for p := tree.Last(); nil != p; p = p.prev {
		if !fn(p) {
			return
		}
	}
}

// InOrder - recursive walk over the chain heads, each head is followed
// by its duplicates, stops when fn returns false
func (tree *Tree[K, V]) InOrder(fn func(*Node[K, V]) bool) {
	inOrder(tree.root, fn)
}

func inOrder[K, V any](p *Node[K, V], fn func(*Node[K, V]) bool) bool {
	if nil == p {
		return true
	}
	if !inOrder(p.left, fn) {
		return false
	}
	end := p.tail.next
	for q := p; q != end; q = q.next {
		if !fn(q) {
			return false
		}
	}
	return inOrder(p.right, fn)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - one item in the tree
//
// only chain heads use up/left/right/tail/height/nodes, a duplicate
// is reachable only through prev/next
type Node[K, V any] struct {
	up     *Node[K, V] // points to parent node
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	prev   *Node[K, V] // previous item in key order
	next   *Node[K, V] // next item in key order
	tail   *Node[K, V] // last item of the duplicate chain, nil for duplicates
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 for a leaf
	nodes  int         // chain heads in this sub-tree
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a chain head
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - left child of a chain head
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - right child of a chain head
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// IsHead - true if the node is part of the tree structure
func (p *Node[K, V]) IsHead() bool {
	return nil != p.tail
}

// Tail - last item in the duplicate chain of a head, the head itself
// if there are no duplicates
func (p *Node[K, V]) Tail() *Node[K, V] {
	return p.tail
}

// ChainLength - number of items sharing the key of a chain head
func (p *Node[K, V]) ChainLength() int {
	if nil == p.tail {
		return 0
	}
	n := 1
	for q := p; q != p.tail; q = q.next {
		n += 1
	}
	return n
}

// Height - height of the sub-tree rooted at a chain head
func (p *Node[K, V]) Height() int {
	return p.treeHeight()
}

// Balance - left height minus right height
func (p *Node[K, V]) Balance() int {
	return p.balanceFactor()
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all chain heads at a specific depth
// below this one
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// internal: height treating an absent node as zero
func (p *Node[K, V]) treeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: chain heads in a sub-tree treating an absent node as zero
func (p *Node[K, V]) size() int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: recompute height and head count from the children
func (p *Node[K, V]) update() {
	hl := p.left.treeHeight()
	hr := p.right.treeHeight()
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.nodes = 1 + p.left.size() + p.right.size()
}

// internal: left height minus right height, zero for an absent node
func (p *Node[K, V]) balanceFactor() int {
	if nil == p {
		return 0
	}
	return p.left.treeHeight() - p.right.treeHeight()
}

// internal: make q take the place of p below p's parent
//
// only the downward link is changed, the caller sets q.up
func (tree *Tree[K, V]) replaceChild(p *Node[K, V], q *Node[K, V]) {
	up := p.up
	switch {
	case nil == up:
		tree.root = q
	case up.left == p:
		up.left = q
	default:
		up.right = q
	}
}

// internal: single left rotation around x, returns the new sub-tree root
//
//	  x                 p
//	 / \               / \
//	a   p     →       x   c
//	   / \           / \
//	  b   c         a   b
func (tree *Tree[K, V]) rotateLeft(x *Node[K, V]) *Node[K, V] {
	p := x.right
	b := p.left

	x.right = b
	if nil != b {
		b.up = x
	}

	tree.replaceChild(x, p)
	p.up = x.up

	p.left = x
	x.up = p

	x.update()
	p.update()
	return p
}

// internal: single right rotation around y, returns the new sub-tree root
//
//	    y             p
//	   / \           / \
//	  p   c    →    a   y
//	 / \               / \
//	a   b             b   c
func (tree *Tree[K, V]) rotateRight(y *Node[K, V]) *Node[K, V] {
	p := y.left
	b := p.right

	y.left = b
	if nil != b {
		b.up = y
	}

	tree.replaceChild(y, p)
	p.up = y.up

	p.right = y
	y.up = p

	y.update()
	p.update()
	return p
}

// internal: restore balance at y whose balance factor is outside ±1,
// returns the new root of y's sub-tree
func (tree *Tree[K, V]) fixUp(y *Node[K, V], balance int) *Node[K, V] {
	switch {
	case balance > 1 && y.left.balanceFactor() >= 0: // left-left
		return tree.rotateRight(y)
	case balance < -1 && y.right.balanceFactor() <= 0: // right-right
		return tree.rotateLeft(y)
	case balance < -1: // right-left
		tree.rotateRight(y.right)
		return tree.rotateLeft(y)
	case balance > 1: // left-right
		tree.rotateLeft(y.left)
		return tree.rotateRight(y)
	}
	return y
}

// internal: recompute heights from p up to the root
func (tree *Tree[K, V]) refreshHeights(p *Node[K, V]) {
	for ; nil != p; p = p.up {
		p.update()
	}
}

// internal: after a structural change below p bring heights up to
// date and rotate every unbalanced ancestor
//
// an insertion finds at most one unbalanced ancestor, a deletion can
// shorten the tree at each rotation so the walk goes on to the root
func (tree *Tree[K, V]) retrace(p *Node[K, V]) {
	tree.refreshHeights(p)
	for ; nil != p; p = p.up {
		if b := p.balanceFactor(); b > 1 || b < -1 {
			p = tree.fixUp(p, b)
			tree.refreshHeights(p.up)
		}
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/wordtree/fault"
)

// per-tree allocator data, a tree is single threaded so no lock
type allocator[K, V any] struct {
	pool       *Node[K, V] // linked list of reclaimed nodes
	totalNodes int         // total nodes created
	freeNodes  int         // number of nodes in the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
//
// the key and value hooks run first so that a failure leaves nothing
// to undo in the tree
func (tree *Tree[K, V]) newNode(key K, value V) (*Node[K, V], error) {
	k, err := tree.handler.CreateKey(key)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrKeyConstruction, err)
	}
	v, err := tree.handler.CreateValue(value)
	if nil != err {
		tree.handler.DestroyKey(k)
		return nil, fmt.Errorf("%w: %s", fault.ErrValueConstruction, err)
	}

	a := &tree.alloc
	p := a.pool
	if nil == p {
		if 0 != a.freeNodes {
			panic("avl: pool corrupt")
		}
		a.totalNodes += 1
		p = &Node[K, V]{}
	} else {
		a.pool = p.up
		a.freeNodes -= 1
		p.up = nil // ensure freelist pointer is cleared
	}
	p.key = k
	p.value = v
	p.tail = p
	p.height = 1
	p.nodes = 1
	return p, nil
}

// destroy the data of a node and keep the node in the pool
func (tree *Tree[K, V]) freeNode(p *Node[K, V]) {
	tree.handler.DestroyKey(p.key)
	tree.handler.DestroyValue(p.value)

	a := &tree.alloc
	*p = Node[K, V]{}
	p.up = a.pool // use as free list pointer
	a.pool = p
	a.freeNodes += 1
}

// forget all pooled nodes
func (a *allocator[K, V]) reset() {
	a.pool = nil
	a.totalNodes = 0
	a.freeNodes = 0
}

// Allocated - nodes created by this tree and nodes waiting for reuse
func (tree *Tree[K, V]) Allocated() (total int, free int) {
	return tree.alloc.totalNodes, tree.alloc.freeNodes
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Handler - ordering and life-cycle hooks for the keys and values of a tree
//
// CreateKey/CreateValue are called once for each inserted item and
// the results are what the tree stores; DestroyKey/DestroyValue are
// called exactly once for each item leaving the tree.
type Handler[K, V any] interface {
	Compare(a K, b K) int // <0: a < b, 0: a == b, >0: a > b
	CreateKey(K) (K, error)
	DestroyKey(K)
	CreateValue(V) (V, error)
	DestroyValue(V)
}

// Funcs - a Handler built from functions, a nil hook is the identity
// (for create) or does nothing (for destroy); Compare is required
type Funcs[K, V any] struct {
	CompareKeys func(a K, b K) int
	NewKey      func(K) (K, error)
	FreeKey     func(K)
	NewValue    func(V) (V, error)
	FreeValue   func(V)
}

func (f Funcs[K, V]) Compare(a K, b K) int {
	return f.CompareKeys(a, b)
}

func (f Funcs[K, V]) CreateKey(key K) (K, error) {
	if nil == f.NewKey {
		return key, nil
	}
	return f.NewKey(key)
}

func (f Funcs[K, V]) DestroyKey(key K) {
	if nil != f.FreeKey {
		f.FreeKey(key)
	}
}

func (f Funcs[K, V]) CreateValue(value V) (V, error) {
	if nil == f.NewValue {
		return value, nil
	}
	return f.NewValue(value)
}

func (f Funcs[K, V]) DestroyValue(value V) {
	if nil != f.FreeValue {
		f.FreeValue(value)
	}
}

// Ordered - a Handler for keys with a natural order that stores
// keys and values as given
type Ordered[K cmp.Ordered, V any] struct{}

func (Ordered[K, V]) Compare(a K, b K) int {
	return cmp.Compare(a, b)
}

func (Ordered[K, V]) CreateKey(key K) (K, error) {
	return key, nil
}

func (Ordered[K, V]) DestroyKey(K) {
}

func (Ordered[K, V]) CreateValue(value V) (V, error) {
	return value, nil
}

func (Ordered[K, V]) DestroyValue(V) {
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *Node[K, V]
	count   int // all items: heads and duplicates
	handler Handler[K, V]
	alloc   allocator[K, V]
}

// New - create an initially empty tree using the given hooks
func New[K, V any](handler Handler[K, V]) *Tree[K, V] {
	if nil == handler {
		panic("avl: nil handler")
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		handler: handler,
	}
}

// NewFuncs - create an initially empty tree from hook functions
func NewFuncs[K, V any](f Funcs[K, V]) *Tree[K, V] {
	if nil == f.CompareKeys {
		panic("avl: nil compare function")
	}
	return New[K, V](f)
}

// NewOrdered - create an initially empty tree of naturally ordered keys
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](Ordered[K, V]{})
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of items currently in the tree including duplicates
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Distinct - number of distinct keys, i.e. chain heads
func (tree *Tree[K, V]) Distinct() int {
	return tree.root.size()
}

// Height - height of the tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return tree.root.treeHeight()
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Destroy - release every item through the destroy hooks and leave
// the tree empty
//
// the items are visited along the ordered list so each one is
// destroyed exactly once
func (tree *Tree[K, V]) Destroy() {
	p := tree.First()
	for nil != p {
		q := p.next
		tree.handler.DestroyKey(p.key)
		tree.handler.DestroyValue(p.value)
		*p = Node[K, V]{}
		p = q
	}
	tree.root = nil
	tree.count = 0
	tree.alloc.reset()
}

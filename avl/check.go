// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/wordtree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return nil == checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K, V any](p *Node[K, V], up *Node[K, V]) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fmt.Errorf("%w: at node: %v", fault.ErrBadParent, p.key)
	}
	if err := checkup(p.left, p); nil != err {
		return err
	}
	return checkup(p.right, p)
}

// Check - verify the structure of the whole tree
//
// parent links, key order, heights, balance, duplicate chains, the
// ordered list and the item count are all checked; the first problem
// found is returned
func (tree *Tree[K, V]) Check() error {
	if err := checkup(tree.root, nil); nil != err {
		return err
	}
	if _, err := tree.checkNode(tree.root, nil, nil); nil != err {
		return err
	}
	return tree.checkList()
}

// internal: recursive check of a sub-tree with optional key bounds,
// returns the sub-tree height
func (tree *Tree[K, V]) checkNode(p *Node[K, V], low *Node[K, V], high *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && tree.handler.Compare(low.key, p.key) >= 0 {
		return 0, fmt.Errorf("%w: %v not above %v", fault.ErrNotOrdered, p.key, low.key)
	}
	if nil != high && tree.handler.Compare(high.key, p.key) <= 0 {
		return 0, fmt.Errorf("%w: %v not below %v", fault.ErrNotOrdered, p.key, high.key)
	}

	hl, err := tree.checkNode(p.left, low, p)
	if nil != err {
		return 0, err
	}
	hr, err := tree.checkNode(p.right, p, high)
	if nil != err {
		return 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, fmt.Errorf("%w: at node: %v  stored: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}
	if d := hl - hr; d > 1 || d < -1 {
		return 0, fmt.Errorf("%w: at node: %v  balance: %d", fault.ErrNotBalanced, p.key, d)
	}
	if n := 1 + p.left.size() + p.right.size(); n != p.nodes {
		return 0, fmt.Errorf("%w: at node: %v  heads: %d  actual: %d", fault.ErrCountMismatch, p.key, p.nodes, n)
	}

	// duplicates: equal keys, no structure, end at the tail
	if nil == p.tail {
		return 0, fmt.Errorf("%w: head: %v has no tail", fault.ErrBrokenChain, p.key)
	}
	for q := p; q != p.tail; {
		q = q.next
		if nil == q {
			return 0, fmt.Errorf("%w: head: %v tail not reachable", fault.ErrBrokenChain, p.key)
		}
		if 0 != tree.handler.Compare(p.key, q.key) {
			return 0, fmt.Errorf("%w: head: %v contains: %v", fault.ErrBrokenChain, p.key, q.key)
		}
		if nil != q.tail || nil != q.up || nil != q.left || nil != q.right {
			return 0, fmt.Errorf("%w: duplicate of: %v has tree links", fault.ErrBrokenChain, p.key)
		}
	}
	if t := p.tail.next; nil != t && tree.handler.Compare(p.key, t.key) >= 0 {
		return 0, fmt.Errorf("%w: head: %v followed by: %v", fault.ErrBrokenChain, p.key, t.key)
	}
	return h, nil
}

// internal: the ordered list covers every item in both directions
func (tree *Tree[K, V]) checkList() error {
	n := 0
	var last *Node[K, V]
	for p := tree.First(); nil != p; p = p.next {
		if p.prev != last {
			return fmt.Errorf("%w: bad back link at: %v", fault.ErrBrokenOrder, p.key)
		}
		if nil != last && tree.handler.Compare(last.key, p.key) > 0 {
			return fmt.Errorf("%w: %v before %v", fault.ErrBrokenOrder, last.key, p.key)
		}
		last = p
		n += 1
	}
	if last != tree.Last() {
		return fmt.Errorf("%w: list does not end at the last item", fault.ErrBrokenOrder)
	}
	if n != tree.count {
		return fmt.Errorf("%w: count: %d  items: %d", fault.ErrCountMismatch, tree.count, n)
	}
	return nil
}

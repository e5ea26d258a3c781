// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the chain head for a key and its index among the
// distinct keys, nil and -1 if the key is not present
func (tree *Tree[K, V]) Search(key K) (*Node[K, V], int) {
	index := 0
	p := tree.root
	for nil != p {
		switch c := tree.handler.Compare(p.key, key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			index += p.left.size() + 1
			p = p.right
		default:
			return p, index + p.left.size()
		}
	}
	return nil, -1
}

// internal: exact search starting below a given node
func (tree *Tree[K, V]) search(p *Node[K, V], key K) *Node[K, V] {
	for nil != p {
		c := tree.handler.Compare(p.key, key)
		if 0 == c {
			return p
		}
		if c > 0 {
			p = p.left
		} else {
			p = p.right
		}
	}
	return nil
}

// Ceiling - the chain head with the lowest key that is not below key
func (tree *Tree[K, V]) Ceiling(key K) *Node[K, V] {
	var found *Node[K, V]
	p := tree.root
	for nil != p {
		c := tree.handler.Compare(p.key, key)
		if 0 == c {
			return p
		}
		if c > 0 {
			found = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return found
}

// Floor - the chain head with the highest key that is not above key
func (tree *Tree[K, V]) Floor(key K) *Node[K, V] {
	var found *Node[K, V]
	p := tree.root
	for nil != p {
		c := tree.handler.Compare(p.key, key)
		if 0 == c {
			return p
		}
		if c < 0 {
			found = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return found
}

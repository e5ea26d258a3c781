// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - index to a specific chain head, duplicates are not counted
func (tree *Tree[K, V]) Get(index int) *Node[K, V] {
	if index < 0 || index >= tree.Distinct() {
		return nil
	}
	return get(index, tree.root)
}

func get[K, V any](index int, tree *Node[K, V]) *Node[K, V] {
	for nil != tree {
		nl := tree.left.size()

		if index < nl {
			tree = tree.left
		} else if index > nl {
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			tree = tree.right
		} else {
			return tree
		}
	}
	return nil
}

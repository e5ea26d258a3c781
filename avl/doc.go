// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers that also
// holds multiple items with the same key
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex to restrict access to
//       the whole tree.
//
// The first item inserted for a key is a chain head and is the only
// item that takes part in the tree structure.  Later items with an
// equal key are appended to the head's duplicate chain.  Every item,
// head or duplicate, is also on one doubly linked list in ascending
// key order, so Next/Prev visit all items while Successor/Predecessor
// only visit chain heads.
//
// Keys and values are passed through a Handler when they enter the
// tree and when they leave it, so a tree can own copies of its data.
package avl

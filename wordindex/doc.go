// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wordindex - index the words of a text source by a fixed
// length key prefix and answer prefix and range queries
//
// every word is stored under its first keyLength bytes with the byte
// offset of the word in the source as the value; repeated keys keep
// their offsets in source order
//
// an Index is safe for concurrent use
package wordindex

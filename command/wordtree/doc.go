// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Word index program
//
// This program indexes the words of a text file by their first few
// letters and answers prefix and range queries, printing each match
// with its byte offset in the file.
//
//   wordtree --file=text.txt prefix --query=v
//   wordtree --file=text.txt range --low=j --high=pr
//   wordtree --config=wordtree.conf watch --query=th
package main

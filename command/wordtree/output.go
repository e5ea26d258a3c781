// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/wordtree/tokenizer"
	"github.com/bitmark-inc/wordtree/wordindex"
)

// print each result as: N. word:offset
//
// the full word is read back from the source, if the source changed
// since it was indexed the key is shown instead
func printResults(w io.Writer, source io.ReaderAt, entries []wordindex.Entry) {
	for i, e := range entries {
		word, err := tokenizer.WordAt(source, e.Offset)
		if nil != err {
			word = e.Key
		}
		fmt.Fprintf(w, "%d. %s:%d\n", i+1, word, e.Offset)
	}
	fmt.Fprintf(w, "\n")
}

// print results with words taken from the named file
func printResultsFromFile(w io.Writer, fileName string, entries []wordindex.Entry) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	printResults(w, f, entries)
	return nil
}

// print all entries in key order as: offset:key
func printEntries(w io.Writer, entries []wordindex.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%d:%s  ", e.Offset, e.Key)
	}
	fmt.Fprintf(w, "\n")
}

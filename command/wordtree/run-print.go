// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entries := m.index.Entries()
	printEntries(m.w, entries)

	if m.verbose {
		fmt.Fprintf(m.e, "entries: %d\n", len(entries))
	}
	return nil
}

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	depth := m.index.Dump(m.w)

	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/wordtree/fault"
	"github.com/bitmark-inc/wordtree/wordindex"
)

// a prefix query or a range query
type query struct {
	prefix string
	low    string
	high   string
}

// returns nil for no query
func newQuery(prefix string, low string, high string) (*query, error) {
	switch {
	case "" == prefix && "" == low && "" == high:
		return nil, nil
	case "" != prefix && "" == low && "" == high:
		return &query{prefix: prefix}, nil
	case "" == prefix && "" != low && "" != high:
		return &query{low: low, high: high}, nil
	case "" != prefix:
		return nil, fault.ErrMissingQuery
	default:
		return nil, fault.ErrInvalidRange
	}
}

func (q *query) String() string {
	if "" != q.prefix {
		return fmt.Sprintf("prefix: %q", q.prefix)
	}
	return fmt.Sprintf("range: %q to %q", q.low, q.high)
}

func (q *query) run(index *wordindex.Index) ([]wordindex.Entry, error) {
	if "" != q.prefix {
		return index.Prefix(q.prefix)
	}
	return index.Range(q.low, q.high)
}

func runPrefix(c *cli.Context) error {
	prefix := c.String("query")
	if "" == prefix {
		return fault.ErrMissingQuery
	}
	return runQuery(c, &query{prefix: prefix})
}

func runRange(c *cli.Context) error {
	low := c.String("low")
	high := c.String("high")
	if "" == low || "" == high {
		return fault.ErrInvalidRange
	}
	return runQuery(c, &query{low: low, high: high})
}

func runQuery(c *cli.Context, q *query) error {

	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "%s\n", q)
	}

	entries, err := q.run(m.index)
	if nil != err {
		return err
	}

	m.log.Infof("%s  results: %d", q, len(entries))
	return printResultsFromFile(m.w, m.config.Source, entries)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wordtree/wordindex"
)

// prefix of the metrics exported by the index
const metricsPrefix = "wordindex_"

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	stats := m.index.Stats()
	out := struct {
		Source string          `json:"source"`
		Stats  wordindex.Stats `json:"stats"`
		Check  string          `json:"check"`
	}{
		Source: m.config.Source,
		Stats:  stats,
		Check:  "ok",
	}
	if err := m.index.Check(); nil != err {
		out.Check = err.Error()
	}
	if err := printJson(m.w, out); nil != err {
		return err
	}

	if c.Bool("metrics") {
		return writeMetrics(m.w, prometheus.DefaultGatherer)
	}
	return nil
}

// write the index metrics in the prometheus text format
func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if nil != err {
		return err
	}

	encoder := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), metricsPrefix) {
			continue
		}
		if err := encoder.Encode(family); nil != err {
			return err
		}
	}
	return nil
}

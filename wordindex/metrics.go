// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordindex

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// query kinds for the queries counter
const (
	kindPrefix = "prefix"
	kindRange  = "range"
)

var queries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wordindex_queries_total",
	Help: "Number of queries by kind",
}, []string{"kind"})

var cacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "wordindex_cache_hits_total",
	Help: "Number of queries answered from the cache",
})

var rebuilds = promauto.NewCounter(prometheus.CounterOpts{
	Name: "wordindex_rebuilds_total",
	Help: "Number of times an index was loaded from its source",
})

var entriesGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "wordindex_entries",
	Help: "Number of words in the most recently changed index",
})

var distinctGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "wordindex_distinct_keys",
	Help: "Number of distinct keys in the most recently changed index",
})

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/wordtree/fault"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	q, err := newQuery(c.String("query"), c.String("low"), c.String("high"))
	if nil != err {
		return err
	}

	if "" != m.config.MetricsListen {
		server := startMetrics(m.config.MetricsListen, m.log)
		defer server.Close()
	}

	channels := newWatcherChannel()
	watcher, err := newFileWatcher(m.config.Source, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)
	go func() {
		select {
		case sig := <-ch:
			m.log.Infof("received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if m.verbose {
		fmt.Fprintf(m.e, "watching: %s\n", m.config.Source)
	}

	limiter := rate.NewLimiter(rate.Limit(m.config.RebuildRate), m.config.RebuildBurst)

	r := &rebuilder{
		m:       m,
		query:   q,
		limiter: limiter,
		reload: func() (bool, error) {
			return m.index.LoadFile(m.config.Source)
		},
	}
	r.report(true)
	return r.loop(ctx, channels)
}

// rebuilds the index on file changes and repeats the query
type rebuilder struct {
	m       *metadata
	query   *query
	limiter *rate.Limiter
	reload  func() (bool, error)
}

func (r *rebuilder) loop(ctx context.Context, channels WatcherChannel) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-channels.remove:
			r.m.log.Errorf("source: %q removed", r.m.config.Source)
			return fault.ErrSourceNotFound

		case <-channels.change:

			// changes arriving while waiting are merged into this rebuild
			if err := r.limiter.Wait(ctx); nil != err {
				return nil
			}
			changed, err := r.reload()
			if nil != err {
				r.m.log.Errorf("rebuild: %q  error: %s", r.m.config.Source, err)
				continue
			}
			r.report(changed)
		}
	}
}

// show the query result, or the entry count if there is no query
func (r *rebuilder) report(changed bool) {
	if !changed {
		return
	}
	if nil == r.query {
		stats := r.m.index.Stats()
		fmt.Fprintf(r.m.w, "entries: %d  keys: %d  fingerprint: %s\n", stats.Count, stats.Distinct, stats.Fingerprint)
		return
	}

	entries, err := r.query.run(r.m.index)
	if nil != err {
		r.m.log.Errorf("%s  error: %s", r.query, err)
		return
	}
	r.m.log.Infof("%s  results: %d", r.query, len(entries))
	if err := printResultsFromFile(r.m.w, r.m.config.Source, entries); nil != err {
		r.m.log.Errorf("print results error: %s", err)
	}
}

// serve the prometheus metrics until the server is closed
func startMetrics(listen string, log *logger.L) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    listen,
		Handler: mux,
	}
	go func() {
		log.Infof("metrics listening on: %s", listen)
		if err := server.ListenAndServe(); nil != err && http.ErrServerClosed != err {
			log.Errorf("metrics server error: %s", err)
		}
	}()
	return server
}

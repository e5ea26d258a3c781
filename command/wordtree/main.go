// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wordtree/configuration"
	"github.com/bitmark-inc/wordtree/fault"
	"github.com/bitmark-inc/wordtree/wordindex"
)

type metadata struct {
	config  *configuration.Configuration
	index   *wordindex.Index
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp()
	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "wordtree"
	app.Usage = "index the words of a text file and query them by prefix or range"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " text `FILE` to index (overrides configuration)",
		},
		cli.IntFlag{
			Name:  "key-length, k",
			Value: 0,
			Usage: " number of leading letters in a key `COUNT` (overrides configuration)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "print",
			Usage:  "print all entries as offset:key in key order",
			Action: runPrint,
		},
		{
			Name:      "prefix",
			Usage:     "list words whose key starts with a prefix",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "query, q",
					Value: "",
					Usage: "*prefix to search for `STRING`",
				},
			},
			Action: runPrefix,
		},
		{
			Name:      "range",
			Usage:     "list words whose key is between two bounds",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "low, l",
					Value: "",
					Usage: "*lower bound `STRING`",
				},
				cli.StringFlag{
					Name:  "high, u",
					Value: "",
					Usage: "*upper bound `STRING`",
				},
			},
			Action: runRange,
		},
		{
			Name:   "dump",
			Usage:  "draw the index tree",
			Action: runDump,
		},
		{
			Name:  "stats",
			Usage: "show index statistics as JSON",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "metrics, m",
					Usage: " also print the index metrics",
				},
			},
			Action: runStats,
		},
		{
			Name:      "watch",
			Usage:     "rebuild the index when the file changes and repeat a query",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "query, q",
					Value: "",
					Usage: "+prefix to search for `STRING`",
				},
				cli.StringFlag{
					Name:  "low, l",
					Value: "",
					Usage: "+lower bound `STRING`",
				},
				cli.StringFlag{
					Name:  "high, u",
					Value: "",
					Usage: "+upper bound `STRING`",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display wordtree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and build the index
	app.Before = func(c *cli.Context) error {

		// to suppress reading the source for certain commands
		switch c.Args().Get(0) {
		case "", "version", "help", "h":
			return nil
		}

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		config, err := readConfiguration(c.GlobalString("config"), c.GlobalString("file"), c.GlobalInt("key-length"))
		if nil != err {
			return err
		}
		if "" == config.Source {
			return fault.ErrMissingSource
		}

		if verbose {
			fmt.Fprintf(e, "source: %s\n", config.Source)
			fmt.Fprintf(e, "key length: %d\n", config.KeyLength)
			fmt.Fprintf(e, "log: %s\n", config.Logging.Directory)
		}

		// start logging
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}
		log := logger.New("main")
		log.Info("starting…")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", config)

		index, err := wordindex.New(config.KeyLength, config.Expiry())
		if nil != err {
			finalise()
			return err
		}
		if _, err := index.LoadFile(config.Source); nil != err {
			fault.Criticalf("load: %q  error: %s", config.Source, err)
			finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:  config,
			index:   index,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.index.Close()
		m.log.Info("shutting down…")
		finalise()
		return nil
	}

	return app
}

func finalise() {
	fault.Finalise()
	logger.Finalise()
}

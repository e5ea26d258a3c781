// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/wordtree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultKeyLength    = 3
	defaultCacheExpiry  = 120 // seconds
	defaultRebuildRate  = 1.0 // rebuilds per second
	defaultRebuildBurst = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "wordtree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"wordindex":       "info",
		"watcher":         "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings of the wordtree program
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Source        string               `gluamapper:"source" json:"source"`
	KeyLength     int                  `gluamapper:"key_length" json:"key_length"`
	CacheExpiry   int                  `gluamapper:"cache_expiry" json:"cache_expiry"`
	RebuildRate   float64              `gluamapper:"rebuild_rate" json:"rebuild_rate"`
	RebuildBurst  int                  `gluamapper:"rebuild_burst" json:"rebuild_burst"`
	MetricsListen string               `gluamapper:"metrics_listen" json:"metrics_listen"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
//
// relative paths are taken from dataDirectory
func Default(dataDirectory string) (*Configuration, error) {
	dataDirectory, err := filepath.Abs(filepath.Clean(dataDirectory))
	if nil != err {
		return nil, err
	}

	options := defaults()
	options.DataDirectory = dataDirectory
	if err := options.finalise(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.finalise(dataDirectory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

func defaults() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Source:        "", // must come from file or command line
		KeyLength:     defaultKeyLength,
		CacheExpiry:   defaultCacheExpiry,
		RebuildRate:   defaultRebuildRate,
		RebuildBurst:  defaultRebuildBurst,
		MetricsListen: "", // no metrics server by default

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// check values and expand all paths
func (options *Configuration) finalise(dataDirectory string) error {

	if options.KeyLength < 1 {
		return fault.ErrInvalidKeyLength
	}
	if options.CacheExpiry <= 0 {
		options.CacheExpiry = defaultCacheExpiry
	}
	if options.RebuildRate < 0 {
		return fault.ErrInvalidRebuildRate
	}
	if 0 == options.RebuildRate {
		options.RebuildRate = defaultRebuildRate
	}
	if options.RebuildBurst < 1 {
		options.RebuildBurst = defaultRebuildBurst
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("%w: %q", fault.ErrInvalidDataDirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", fault.ErrInvalidDataDirectory, options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.Source {
		options.Source = ensureAbsolute(options.DataDirectory, options.Source)
	}

	// must be a simple file name, the log directory is prepended by the logger
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidPlainName, options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}

// Expiry - lifetime of cached query results
func (options *Configuration) Expiry() time.Duration {
	return time.Duration(options.CacheExpiry) * time.Second
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

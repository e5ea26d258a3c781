// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/wordtree/configuration"
	"github.com/bitmark-inc/wordtree/fault"
)

// read the configuration file if one is given and apply the
// command line overrides
//
// without a configuration file the log is kept in the system
// temporary directory
func readConfiguration(configurationFile string, sourceFile string, keyLength int) (*configuration.Configuration, error) {

	var config *configuration.Configuration
	var err error
	if "" != configurationFile {
		config, err = configuration.GetConfiguration(configurationFile)
	} else {
		config, err = configuration.Default(os.TempDir())
	}
	if nil != err {
		return nil, err
	}

	if "" != sourceFile {
		config.Source, err = filepath.Abs(filepath.Clean(sourceFile))
		if nil != err {
			return nil, err
		}
	}

	switch {
	case keyLength > 0:
		config.KeyLength = keyLength
	case keyLength < 0:
		return nil, fault.ErrInvalidKeyLength
	}

	return config, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashchain/configuration"
	"github.com/bitmark-inc/hashchain/evaluator"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "results.leveldb"
	defaultIncomingDirectory = "incoming"
	defaultDoneDirectory     = "done"

	defaultLogDirectory = "log"
	defaultLogFile      = "hashchaind.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"watcher":         "info",
		"processor":       "info",
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	DataDirectory     string                  `gluamapper:"data_directory" json:"data_directory"`
	PidFile           string                  `gluamapper:"pidfile" json:"pidfile"`
	Database          string                  `gluamapper:"database" json:"database"`
	IncomingDirectory string                  `gluamapper:"incoming_directory" json:"incoming_directory"`
	DoneDirectory     string                  `gluamapper:"done_directory" json:"done_directory"`
	Evaluator         evaluator.Configuration `gluamapper:"evaluator" json:"evaluator"`
	Logging           logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:     defaultDataDirectory,
		PidFile:           "", // no PidFile by default
		Database:          defaultDatabaseDirectory,
		IncomingDirectory: defaultIncomingDirectory,
		DoneDirectory:     defaultDoneDirectory,

		Evaluator: evaluator.Configuration{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths cannot be forced to absolute
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]interface{}{
		{options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filename := f[0].(type) {
		case string:
			if filepath.Base(filename) != filename {
				return nil, errors.New(fmt.Sprintf("Files: %q is not plain name", filename))
			}
		default:
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.IncomingDirectory,
		&options.DoneDirectory,
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

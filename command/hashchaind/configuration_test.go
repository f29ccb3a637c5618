// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConfiguration = `
local M = {}

M.data_directory = "."
M.database = "results.leveldb"
M.incoming_directory = "incoming"
M.done_directory = "done"

M.evaluator = {
    listen = {
        "tcp://127.0.0.1:3130",
    },
    maximum_request_rate = 50,
}

M.logging = {
    size = 1048576,
    count = 10,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func TestGetConfiguration(t *testing.T) {

	dir, err := ioutil.TempDir("", "hashchaind-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "hashchaind.conf")
	err = ioutil.WriteFile(fileName, []byte(testConfiguration), 0600)
	assert.Nil(t, err, "write configuration")

	config, err := getConfiguration(fileName)
	assert.Nil(t, err, "get configuration")

	// "." resolves to the configuration file directory
	assert.Equal(t, filepath.Clean(dir), config.DataDirectory, "data directory")

	// relative paths become absolute under the data directory
	assert.Equal(t, filepath.Join(dir, "results.leveldb"), config.Database, "database")
	assert.Equal(t, filepath.Join(dir, "incoming"), config.IncomingDirectory, "incoming directory")
	assert.Equal(t, filepath.Join(dir, "done"), config.DoneDirectory, "done directory")

	// directories are created
	for _, d := range []string{config.IncomingDirectory, config.DoneDirectory, config.Logging.Directory} {
		fileInfo, err := os.Stat(d)
		assert.Nil(t, err, "stat: %s", d)
		assert.True(t, fileInfo.IsDir(), "not a directory: %s", d)
	}

	assert.Equal(t, []string{"tcp://127.0.0.1:3130"}, config.Evaluator.Listen, "listen")
	assert.Equal(t, 50.0, config.Evaluator.MaximumRequestRate, "request rate")

	assert.Equal(t, "hashchaind.log", config.Logging.File, "log file")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration("/nonexistent/hashchaind.conf")
	assert.NotNil(t, err, "missing file must fail")
}

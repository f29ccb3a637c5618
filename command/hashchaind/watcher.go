// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	watcherLoggerPrefix = "watcher"

	// only files with this suffix are treated as input records
	inputFileSuffix = ".bin"
)

type directoryWatcher struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	directory string
	jobs      chan<- string
}

// create a watcher for the incoming directory
//
// existing files are queued first so blobs dropped while the daemon
// was down are not lost
func newDirectoryWatcher(directory string, jobs chan<- string) (*directoryWatcher, error) {

	log := logger.New(watcherLoggerPrefix)

	directory, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		return nil, err
	}

	if fileInfo, err := os.Stat(directory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, os.ErrInvalid
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &directoryWatcher{
		log:       log,
		watcher:   watcher,
		directory: directory,
		jobs:      jobs,
	}, nil
}

// Run - queue existing files then forward created ones
func (w *directoryWatcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log

	log.Info("starting…")

	err := w.watcher.Add(w.directory)
	if nil != err {
		log.Errorf("watcher add error: %s, abort", err)
		return
	}

	// pick up blobs that arrived while not running
	entries, err := filepath.Glob(filepath.Join(w.directory, "*"+inputFileSuffix))
	if nil != err {
		log.Errorf("scan error: %s", err)
	} else {
		for _, name := range entries {
			log.Infof("queue existing file: %s", name)
			w.jobs <- name
		}
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event := <-w.watcher.Events:
			log.Debugf("file event: %v", event)

			if !isInputFile(event.Name) {
				continue loop
			}

			// a rename into the directory shows up as Create;
			// a direct write is complete once Write stops, the
			// processor rechecks the size before decoding
			if 0 != event.Op&fsnotify.Create {
				log.Infof("queue new file: %s", event.Name)
				w.jobs <- event.Name
			}

		case err := <-w.watcher.Errors:
			log.Errorf("watcher error: %s", err)
		}
	}

	log.Info("shutting down…")
	w.watcher.Close()
	close(w.jobs)
}

func isInputFile(name string) bool {
	return strings.HasSuffix(name, inputFileSuffix)
}

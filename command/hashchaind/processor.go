// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashchain/chain"
	"github.com/bitmark-inc/hashchain/inputrecord"
	"github.com/bitmark-inc/hashchain/resultpool"
)

const (
	processorLoggerPrefix = "processor"
)

type blobProcessor struct {
	log           *logger.L
	doneDirectory string
	jobs          <-chan string
}

func newBlobProcessor(doneDirectory string, jobs <-chan string) *blobProcessor {
	return &blobProcessor{
		log:           logger.New(processorLoggerPrefix),
		doneDirectory: doneDirectory,
		jobs:          jobs,
	}
}

// Run - evaluate each queued blob
func (p *blobProcessor) Run(args interface{}, shutdown <-chan struct{}) {

	log := p.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case name, ok := <-p.jobs:
			if !ok {
				break loop
			}
			p.process(name)
		}
	}

	log.Info("shutting down…")
}

// evaluate one blob file
//
// a malformed blob is logged and left in place for inspection; a
// valid one has its words logged, its result stored and the file
// moved to the done directory
func (p *blobProcessor) process(name string) {
	log := p.log

	data, err := ioutil.ReadFile(name)
	if nil != err {
		log.Errorf("read: %s error: %s", name, err)
		return
	}

	packed := inputrecord.PackedInput(data)
	result, err := chain.EvaluatePacked(packed)
	if nil != err {
		log.Errorf("decode: %s error: %s", name, err)
		return
	}

	log.Infof("file: %s  count: %d  digest: %s", name, result.Count, result.Digest)
	chain.Emit(result.Digest, &chain.LogSink{Log: log})

	// key on the canonical fixed size form, not the raw file
	// contents, so trailing bytes do not create duplicate entries
	in, _ := packed.Unpack()
	resultpool.Pool.Results.Put(in.Pack(), result.Digest)

	done := filepath.Join(p.doneDirectory, filepath.Base(name))
	err = os.Rename(name, done)
	if nil != err {
		log.Errorf("move: %s to: %s error: %s", name, done, err)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashchain/chaindigest"
)

// OutputSink - ordered write capability for the public output words
//
// index is always in 0..7 and indexes are delivered in ascending
// order, one call per word
type OutputSink interface {
	SetOutput(index int, value uint32)
}

// Emit - deliver the words of a digest to a sink in index order
func Emit(digest chaindigest.Digest, sink OutputSink) {
	for i, value := range digest.Words() {
		sink.SetOutput(i, value)
	}
}

// WordSink - collect the delivered words, mainly for tests
type WordSink struct {
	Words [chaindigest.WordCount]uint32
}

func (w *WordSink) SetOutput(index int, value uint32) {
	w.Words[index] = value
}

// LogSink - write each word as an info line on a logger channel
//
// produces the textual form: public <i>: 0x<8 hex digits>
type LogSink struct {
	Log *logger.L
}

func (l *LogSink) SetOutput(index int, value uint32) {
	l.Log.Infof("public %d: 0x%08x", index, value)
}

// WriterSink - print each word to an io.Writer
//
// same line format as LogSink for plain stdout use
type WriterSink struct {
	Writer io.Writer
}

func (w *WriterSink) SetOutput(index int, value uint32) {
	fmt.Fprintf(w.Writer, "public %d: 0x%08x\n", index, value)
}

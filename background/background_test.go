// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/hashchain/background"
)

type counter struct {
	name    string
	ticks   int
	stopped bool
}

func (state *counter) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.ticks += 1
		time.Sleep(time.Millisecond)
	}

	t.Logf("%s: %d ticks", state.name, state.ticks)
	state.stopped = true
}

func TestBackground(t *testing.T) {

	proc1 := &counter{name: "first"}
	proc2 := &counter{name: "second"}

	// list of background processes to start
	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	if !proc1.stopped {
		t.Fatalf("stop failed: %s did not finish", proc1.name)
	}
	if !proc2.stopped {
		t.Fatalf("stop failed: %s did not finish", proc2.name)
	}
	if 0 == proc1.ticks || 0 == proc2.ticks {
		t.Fatalf("processes did not run: ticks: %d and %d", proc1.ticks, proc2.ticks)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resultpool_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/hashchain/chain"
	"github.com/bitmark-inc/hashchain/fault"
	"github.com/bitmark-inc/hashchain/inputrecord"
	"github.com/bitmark-inc/hashchain/resultpool"
)

const databaseFileName = "testing/results.leveldb"

func setup(t *testing.T) {
	removeFiles()
	err := resultpool.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("initialise error: %v", err)
	}
}

func teardown(t *testing.T) {
	resultpool.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll("testing")
}

func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := resultpool.Pool.Results

	in := &inputrecord.InputRecord{Count: 5}
	for i := range in.Seed {
		in.Seed[i] = 0xff
	}
	key := in.Pack()

	if p.Has(key) {
		t.Fatalf("pool was not empty")
	}
	_, err := p.Get(key)
	if fault.ErrNotFoundResult != err {
		t.Fatalf("get error: %v  expected: %v", err, fault.ErrNotFoundResult)
	}

	digest := chain.Evaluate(in.Count, in.Seed)
	p.Put(key, digest)

	if !p.Has(key) {
		t.Fatalf("stored result not found")
	}

	back, err := p.Get(key)
	if nil != err {
		t.Fatalf("get error: %v", err)
	}
	if back != digest {
		t.Fatalf("digest: %s  expected: %s", back, digest)
	}

	// overwrite with the same value is allowed
	p.Put(key, digest)

	p.Delete(key)
	if p.Has(key) {
		t.Fatalf("deleted result still present")
	}
}

// check that restarting the database keeps data
func TestPoolRestart(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := resultpool.Pool.Results

	in := &inputrecord.InputRecord{Count: 3}
	key := in.Pack()
	digest := chain.Evaluate(in.Count, in.Seed)
	p.Put(key, digest)

	resultpool.Finalise()
	err := resultpool.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("reinitialise error: %v", err)
	}

	back, err := resultpool.Pool.Results.Get(key)
	if nil != err {
		t.Fatalf("get error: %v", err)
	}
	if back != digest {
		t.Fatalf("digest: %s  expected: %s", back, digest)
	}
}

// a second initialise must be rejected
func TestPoolDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := resultpool.Initialise(databaseFileName)
	if fault.ErrAlreadyInitialised != err {
		t.Fatalf("initialise error: %v  expected: %v", err, fault.ErrAlreadyInitialised)
	}
}

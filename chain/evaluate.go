// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/hashchain/chaindigest"
	"github.com/bitmark-inc/hashchain/inputrecord"
)

// Result - the outcome of one complete evaluation
type Result struct {
	Count  uint64                        `json:"count,string"`
	Digest chaindigest.Digest            `json:"digest"`
	Words  [chaindigest.WordCount]uint32 `json:"words"`
}

// Evaluate - iterate the hash primitive count times starting from seed
//
// the 32 byte state is rebound in place on every round; there is no
// per iteration allocation, no early exit and no failure mode.  A
// zero count returns the seed unchanged.  A very large count is a
// cost concern for the caller, not an error here.
func Evaluate(count uint64, seed chaindigest.Digest) chaindigest.Digest {
	state := seed
	for i := uint64(0); i < count; i += 1 {
		state = chaindigest.NewDigest(state[:])
	}
	return state
}

// EvaluatePacked - decode a packed input record and evaluate it
//
// the single pass of the whole core: decode, iterate, encode.  The
// only reachable error is a malformed input record, detected before
// any hashing occurs.
func EvaluatePacked(packed inputrecord.PackedInput) (*Result, error) {
	in, err := packed.Unpack()
	if nil != err {
		return nil, err
	}

	digest := Evaluate(in.Count, in.Seed)

	return &Result{
		Count:  in.Count,
		Digest: digest,
		Words:  digest.Words(),
	}, nil
}

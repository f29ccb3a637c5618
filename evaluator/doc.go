// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package evaluator - ZeroMQ submission service
//
// Accepts JSON evaluation requests over a REP socket, runs the hash
// chain for each submitted input record and replies with the final
// digest and its eight public words.  Completed evaluations are
// memoised: the computation is pure so a cached result is always
// identical to a fresh one.
package evaluator

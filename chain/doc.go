// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the iterated hash evaluator
//
// Feeds a 32 byte state through the hash primitive a fixed number of
// times and exposes the final digest as eight big endian public
// words.  Each step depends on the previous output so the loop is
// strictly sequential; the same count and seed always produce the
// same digest, which is what lets the surrounding system treat the
// result as a verifiable commitment.
package chain

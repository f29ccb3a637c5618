// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaindigest - the 256 bit hash used by the chain evaluator
//
// The digest is stored in natural byte order: byte 0 of the hash
// output is byte 0 of the digest.  The public output words are big
// endian views of consecutive 4 byte groups of this array, so the hex
// form of a digest and the concatenated hex forms of its words are
// identical.
package chaindigest

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package inputrecord - fixed layout binary input for the chain evaluator
//
// An input record is assembled by an external collaborator (a file, a
// host supplied buffer or the preprocess command) and carries one
// public and one private field:
//
//	bytes [0, 8)   little endian uint64  iteration count (public)
//	bytes [8, 40)  raw 32 bytes          seed (private)
//
// The count is little endian while the public output words produced
// after evaluation are big endian; the asymmetry is part of the wire
// format and must not be changed.
package inputrecord

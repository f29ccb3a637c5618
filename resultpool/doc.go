// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package resultpool - persisted evaluation results
//
// A small LevelDB database holding the final digest for every input
// record the daemon has evaluated.  The evaluation is pure so a
// stored result never becomes stale; the key is the packed input
// record itself.
package resultpool

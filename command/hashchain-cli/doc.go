// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// hashchain-cli - client tool for the hash chain evaluator
//
// assembles packed input records from JSON, runs evaluations locally
// and submits jobs to a running hashchaind
package main

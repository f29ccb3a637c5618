// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// hashchaind - hash chain evaluation daemon
//
// Watches an incoming directory for packed input records, evaluates
// each one and logs its public words, and answers evaluation requests
// submitted over ZeroMQ.  Every completed evaluation is persisted so
// repeated submissions of the same input are answered from storage.
package main

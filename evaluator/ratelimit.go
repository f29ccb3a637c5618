// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluator

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/hashchain/fault"
)

const (
	defaultRequestRate  = 100 // requests per second
	defaultRequestBurst = 100
)

// limiting for a single request
func rateLimit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

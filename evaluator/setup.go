// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluator

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/hashchain/background"
	"github.com/bitmark-inc/hashchain/fault"
)

// a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Listen             []string `gluamapper:"listen" json:"listen"`
	MaximumRequestRate float64  `gluamapper:"maximum_request_rate" json:"maximum_request_rate"`
}

// globals for background process
type evaluatorData struct {
	sync.RWMutex // to allow locking

	// logger
	log *logger.L

	// for submission
	sub submission

	// memoised results
	memo *memoCache

	// request throttling
	limiter *rate.Limiter

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData evaluatorData

// Initialise - start the evaluator background processes
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("evaluator")
	globalData.log.Info("starting…")

	globalData.memo = newMemoCache()

	r := configuration.MaximumRequestRate
	if r <= 0 {
		r = defaultRequestRate
	}
	globalData.limiter = rate.NewLimiter(rate.Limit(r), defaultRequestBurst)

	if err := globalData.sub.initialise(configuration); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.sub,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

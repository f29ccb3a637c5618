// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluator

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/hashchain/chaindigest"
)

// results never become stale, the expiry only bounds memory use
const (
	defaultExpiration = 1 * time.Hour
	cleanupInterval   = 10 * time.Minute
)

// memoised digests keyed by the packed input record
type memoCache struct {
	cache *cache.Cache
}

func newMemoCache() *memoCache {
	return &memoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (m *memoCache) get(key string) (chaindigest.Digest, bool) {
	obj, found := m.cache.Get(key)
	if !found {
		return chaindigest.Digest{}, false
	}
	return obj.(chaindigest.Digest), true
}

func (m *memoCache) set(key string, digest chaindigest.Digest) {
	m.cache.Set(key, digest, defaultExpiration)
}

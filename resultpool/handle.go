// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resultpool

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/hashchain/chaindigest"
	"github.com/bitmark-inc/hashchain/fault"
	"github.com/bitmark-inc/logger"
)

// PoolHandle - a prefixed view onto the results database
type PoolHandle struct {
	prefix   byte
	database *leveldb.DB
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store the final digest for a packed input record
func (p *PoolHandle) Put(key []byte, digest chaindigest.Digest) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		logger.Panic("resultpool.Put nil database")
		return
	}
	err := p.database.Put(p.prefixKey(key), digest[:], nil)
	logger.PanicIfError("resultpool.Put", err)
}

// Get - read back a stored digest
//
// returns fault.ErrNotFoundResult if the input was never evaluated
func (p *PoolHandle) Get(key []byte) (chaindigest.Digest, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	digest := chaindigest.Digest{}

	if nil == p.database {
		return digest, fault.ErrNotInitialised
	}

	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return digest, fault.ErrNotFoundResult
	}
	if nil != err {
		return digest, err
	}

	err = chaindigest.DigestFromBytes(&digest, value)
	return digest, err
}

// Has - check if a result is already stored
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return false
	}
	ok, err := p.database.Has(p.prefixKey(key), nil)
	if nil != err {
		return false
	}
	return ok
}

// Delete - remove a stored result
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return
	}
	err := p.database.Delete(p.prefixKey(key), nil)
	logger.PanicIfError("resultpool.Delete", err)
}

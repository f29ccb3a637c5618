// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inputrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/hashchain/chaindigest"
	"github.com/bitmark-inc/hashchain/fault"
)

// packed records are just a byte slice
type PackedInput []byte

// byte sizes for the fields
const (
	CountSize = 8                  // 64-bit iteration count
	SeedSize  = chaindigest.Length // 256-bit initial chain state
)

// offsets of the fields
const (
	countOffset = 0
	seedOffset  = countOffset + CountSize

	// minimum bytes in a valid record
	totalInputSize = seedOffset + SeedSize
)

// TotalInputSize - minimum number of bytes in a packed input record
const TotalInputSize = totalInputSize

// the unpacked record structure
type InputRecord struct {
	Count uint64             `json:"count,string"`
	Seed  chaindigest.Digest `json:"seed"`
}

// Unpack - decode a packed input record
//
// the buffer must contain at least TotalInputSize bytes; the length is
// checked before any field extraction so a short buffer produces an
// error rather than a slice panic.  No other validation is performed:
// a zero count and any 32 byte seed pattern are acceptable.  Trailing
// bytes beyond the fixed fields are ignored.
func (record PackedInput) Unpack() (*InputRecord, error) {
	if len(record) < totalInputSize {
		return nil, fault.ErrInvalidInputRecordSize
	}

	in := &InputRecord{}

	in.Count = binary.LittleEndian.Uint64(record[countOffset:])

	err := chaindigest.DigestFromBytes(&in.Seed, record[seedOffset:totalInputSize])
	if nil != err {
		return nil, err
	}

	return in, nil
}

// Pack - turn a record into an array of bytes
func (in *InputRecord) Pack() PackedInput {
	buffer := make([]byte, totalInputSize)

	binary.LittleEndian.PutUint64(buffer[countOffset:], in.Count)
	copy(buffer[seedOffset:], in.Seed[:])

	return buffer
}

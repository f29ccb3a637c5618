// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindigest

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/hashchain/fault"
)

// number of bytes in the digest
const Length = 32

// number of 32 bit words in the public output form of a digest
const WordCount = 8

// type for a digest
// stored as a fixed byte array in natural (big endian) order
// represented as hex value for print
// represented as hex text for JSON encoding
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
//
// one application of the fixed hash primitive (SHA-256)
func NewDigest(record []byte) Digest {
	return sha256.Sum256(record)
}

// Words - split a digest into its eight public output words
//
// word i is the big endian interpretation of bytes [4i, 4i+4)
// note: this is intentionally not the same byte order as the little
// endian count field of an input record
func (digest Digest) Words() [WordCount]uint32 {
	words := [WordCount]uint32{}
	for i := 0; i < WordCount; i += 1 {
		words[i] = binary.BigEndian.Uint32(digest[4*i:])
	}
	return words
}

// FromWords - reassemble a digest from its eight public output words
func FromWords(words [WordCount]uint32) Digest {
	digest := Digest{}
	for i := 0; i < WordCount; i += 1 {
		binary.BigEndian.PutUint32(digest[4*i:], words[i])
	}
	return digest
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA256:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if Length != hex.DecodedLen(len(token)) {
		return fault.ErrInvalidDigestLength
	}

	buffer := make([]byte, Length)
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidDigestLength
	}
	buffer := make([]byte, Length)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

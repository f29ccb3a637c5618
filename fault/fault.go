// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidDigestLength    = InvalidError("digest length is invalid")
	ErrInvalidInputRecordSize = InvalidError("input record size is invalid")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidOutputIndex     = InvalidError("output index is out of range")
	ErrJobRequestFail         = ProcessError("send job request failed")
	ErrJsonParseFail          = ProcessError("parse to json failed")
	ErrNotFoundResult         = NotFoundError("result is not found")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrRateLimiting           = ProcessError("rate limiting in progress")
	ErrRequiredConfigFile     = InvalidError("config file is required")
	ErrRequiredInputFile      = InvalidError("input file is required")
	ErrWrongEndpointString    = InvalidError("wrong endpoint string")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

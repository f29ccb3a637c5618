// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/hashchain/fault"
)

// test that the classification predicates only match their own class
func TestClassification(t *testing.T) {

	if !fault.IsErrInvalid(fault.ErrInvalidInputRecordSize) {
		t.Errorf("invalid error is not classified as invalid")
	}

	if fault.IsErrNotFound(fault.ErrInvalidInputRecordSize) {
		t.Errorf("invalid error is classified as not found")
	}

	if !fault.IsErrNotFound(fault.ErrNotFoundResult) {
		t.Errorf("not found error is not classified as not found")
	}

	if !fault.IsErrProcess(fault.ErrRateLimiting) {
		t.Errorf("process error is not classified as process")
	}

	if !fault.IsErrExists(fault.ErrAlreadyInitialised) {
		t.Errorf("exists error is not classified as exists")
	}
}

// error text must be stable as some clients compare strings
func TestMessageText(t *testing.T) {
	expected := "input record size is invalid"
	actual := fault.ErrInvalidInputRecordSize.Error()
	if expected != actual {
		t.Errorf("error text: %q  expected: %q", actual, expected)
	}
}

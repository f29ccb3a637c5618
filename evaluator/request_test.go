// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluator

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/hashchain/fault"
	"github.com/bitmark-inc/hashchain/inputrecord"
)

const testingDirName = "testing"

func setupTest(t *testing.T) *logger.L {
	removeTestFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "evaluator.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	err := logger.Initialise(logging)
	assert.Nil(t, err, "logger initialise")

	globalData.memo = newMemoCache()
	globalData.limiter = rate.NewLimiter(defaultRequestRate, defaultRequestBurst)

	return logger.New("test")
}

func teardownTest() {
	globalData.memo = nil
	globalData.limiter = nil
	logger.Finalise()
	removeTestFiles()
}

func removeTestFiles() {
	_ = os.RemoveAll(testingDirName)
}

func sampleRequest(job string, count uint64, fill byte) []byte {
	in := &inputrecord.InputRecord{Count: count}
	for i := range in.Seed {
		in.Seed[i] = fill
	}
	request := JobRequest{
		Job:   job,
		Input: hex.EncodeToString(in.Pack()),
	}
	data, _ := json.Marshal(request)
	return data
}

func TestProcessRequest(t *testing.T) {
	log := setupTest(t)
	defer teardownTest()

	data := processRequest(sampleRequest("job-1", 5, 0xff), log)

	var reply JobReply
	err := json.Unmarshal(data, &reply)
	assert.Nil(t, err, "reply unmarshal")

	assert.Equal(t, "job-1", reply.Job, "wrong job")
	assert.Empty(t, reply.Error, "unexpected error")
	assert.False(t, reply.Cached, "first evaluation cannot be cached")

	// computed with a reference SHA-256 implementation
	expected := "3817268b5b74de214be81d91bdba023984a76e0b6c9d54cd01343467a2e90ac6"
	assert.Equal(t, expected, reply.Digest, "wrong digest")

	expectedWords := [8]uint32{
		0x3817268b, 0x5b74de21, 0x4be81d91, 0xbdba0239,
		0x84a76e0b, 0x6c9d54cd, 0x01343467, 0xa2e90ac6,
	}
	assert.Equal(t, expectedWords, reply.Words, "wrong words")
}

func TestProcessRequestMemoised(t *testing.T) {
	log := setupTest(t)
	defer teardownTest()

	first := processRequest(sampleRequest("job-a", 10, 0x5a), log)
	second := processRequest(sampleRequest("job-b", 10, 0x5a), log)

	var replyA, replyB JobReply
	assert.Nil(t, json.Unmarshal(first, &replyA), "reply unmarshal")
	assert.Nil(t, json.Unmarshal(second, &replyB), "reply unmarshal")

	assert.False(t, replyA.Cached, "first evaluation cannot be cached")
	assert.True(t, replyB.Cached, "repeat evaluation must be cached")
	assert.Equal(t, replyA.Digest, replyB.Digest, "determinism")
	assert.Equal(t, replyA.Words, replyB.Words, "determinism")
}

func TestProcessRequestBadJSON(t *testing.T) {
	log := setupTest(t)
	defer teardownTest()

	data := processRequest([]byte("not json at all"), log)

	var reply JobReply
	assert.Nil(t, json.Unmarshal(data, &reply), "reply unmarshal")
	assert.Equal(t, fault.ErrJsonParseFail.Error(), reply.Error, "wrong error")
}

func TestProcessRequestShortInput(t *testing.T) {
	log := setupTest(t)
	defer teardownTest()

	short := make([]byte, inputrecord.TotalInputSize-1)
	request, _ := json.Marshal(JobRequest{
		Job:   "short",
		Input: hex.EncodeToString(short),
	})

	data := processRequest(request, log)

	var reply JobReply
	assert.Nil(t, json.Unmarshal(data, &reply), "reply unmarshal")
	assert.Equal(t, "short", reply.Job, "wrong job")
	assert.Equal(t, fault.ErrInvalidInputRecordSize.Error(), reply.Error, "wrong error")
}

func TestProcessRequestBadHex(t *testing.T) {
	log := setupTest(t)
	defer teardownTest()

	request := []byte(fmt.Sprintf("{%q:%q,%q:%q}", "job", "hex", "input", "zz not hex"))

	data := processRequest(request, log)

	var reply JobReply
	assert.Nil(t, json.Unmarshal(data, &reply), "reply unmarshal")
	assert.NotEmpty(t, reply.Error, "bad hex must produce an error")
}

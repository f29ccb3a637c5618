// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluator

import (
	"encoding/hex"
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashchain/chain"
	"github.com/bitmark-inc/hashchain/chaindigest"
	"github.com/bitmark-inc/hashchain/fault"
	"github.com/bitmark-inc/hashchain/inputrecord"
)

// JobRequest - one submitted evaluation
//
// Input is the hex form of a packed input record
type JobRequest struct {
	Job   string `json:"job"`
	Input string `json:"input"`
}

// JobReply - the answer for a completed evaluation
//
// Error is empty on success; on failure only Job and Error are set
type JobReply struct {
	Job    string                        `json:"job"`
	Digest string                        `json:"digest,omitempty"`
	Words  [chaindigest.WordCount]uint32 `json:"words"`
	Cached bool                          `json:"cached,omitempty"`
	Error  string                        `json:"error,omitempty"`
}

// process a raw request and produce the raw reply
//
// never returns an invalid JSON blob: all failures are folded into
// the Error field of the reply
func processRequest(data []byte, log *logger.L) []byte {

	var request JobRequest
	err := json.Unmarshal(data, &request)
	if nil != err {
		log.Errorf("JSON decode error: %s", err)
		return marshalReply(&JobReply{
			Error: fault.ErrJsonParseFail.Error(),
		})
	}

	packed, err := hex.DecodeString(request.Input)
	if nil != err {
		log.Errorf("job: %q  input hex error: %s", request.Job, err)
		return marshalReply(&JobReply{
			Job:   request.Job,
			Error: fault.ErrInvalidInputRecordSize.Error(),
		})
	}

	digest, cached, err := evaluate(inputrecord.PackedInput(packed))
	if nil != err {
		log.Errorf("job: %q  evaluate error: %s", request.Job, err)
		return marshalReply(&JobReply{
			Job:   request.Job,
			Error: err.Error(),
		})
	}

	log.Infof("job: %q  digest: %s  cached: %v", request.Job, digest, cached)

	return marshalReply(&JobReply{
		Job:    request.Job,
		Digest: digest.String(),
		Words:  digest.Words(),
		Cached: cached,
	})
}

// evaluate a packed input, consulting the memo cache first
//
// second return is true if the result came from the cache
func evaluate(packed inputrecord.PackedInput) (chaindigest.Digest, bool, error) {

	in, err := packed.Unpack()
	if nil != err {
		return chaindigest.Digest{}, false, err
	}

	key := string(in.Pack())
	if digest, ok := globalData.memo.get(key); ok {
		return digest, true, nil
	}

	digest := chain.Evaluate(in.Count, in.Seed)
	globalData.memo.set(key, digest)

	return digest, false, nil
}

// a reply structure always marshals
func marshalReply(reply *JobReply) []byte {
	data, err := json.Marshal(reply)
	logger.PanicIfError("evaluator.marshalReply", err)
	return data
}

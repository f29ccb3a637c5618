// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashchain/evaluator"
	"github.com/bitmark-inc/hashchain/fault"
)

// submit a packed input record to a running daemon
func runSubmit(c *cli.Context, globals globalFlags) error {

	connect := c.String("connect")
	if "" == connect {
		return fault.ErrWrongEndpointString
	}

	fileName := c.String("file")
	job := c.String("job")
	if "" == job {
		job = filepath.Base(fileName)
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	request, err := json.Marshal(evaluator.JobRequest{
		Job:   job,
		Input: hex.EncodeToString(data),
	})
	if nil != err {
		return err
	}

	socket, err := zmq.NewSocket(zmq.REQ)
	if nil != err {
		return err
	}
	defer socket.Close()

	socket.SetLinger(0)
	err = socket.Connect(connect)
	if nil != err {
		return err
	}

	_, err = socket.SendBytes(request, 0)
	if nil != err {
		return fault.ErrJobRequestFail
	}

	replyData, err := socket.RecvBytes(0)
	if nil != err {
		return fault.ErrJobRequestFail
	}

	var reply evaluator.JobReply
	err = json.Unmarshal(replyData, &reply)
	if nil != err {
		return fault.ErrJsonParseFail
	}

	if "" != reply.Error {
		return errors.New(reply.Error)
	}

	if globals.verbose {
		fmt.Printf("job: %s\n", reply.Job)
		fmt.Printf("digest: %s\n", reply.Digest)
		fmt.Printf("cached: %v\n", reply.Cached)
	}

	for i, value := range reply.Words {
		fmt.Printf("public %d: 0x%08x\n", i, value)
	}

	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashchain/inputrecord"
)

// the JSON source of an input record
//
// the secret string is padded with zero bytes or truncated to the
// fixed seed size
type jsonPublic struct {
	N uint64 `json:"n"`
}

type jsonPrivate struct {
	Secret string `json:"secret"`
}

type jsonInput struct {
	Public  jsonPublic  `json:"public"`
	Private jsonPrivate `json:"private"`
}

// assemble input.bin and public.json from input.json
func runPreprocess(c *cli.Context, globals globalFlags) error {

	inputFileName := c.String("input")
	outputFileName := c.String("output")
	publicFileName := c.String("public")

	contents, err := ioutil.ReadFile(inputFileName)
	if nil != err {
		return err
	}

	var input jsonInput
	err = json.Unmarshal(contents, &input)
	if nil != err {
		return err
	}

	record := &inputrecord.InputRecord{
		Count: input.Public.N,
	}
	// pad or truncate the secret to the seed size
	copy(record.Seed[:], input.Private.Secret)

	err = ioutil.WriteFile(outputFileName, record.Pack(), 0600)
	if nil != err {
		return err
	}

	// only the public fields are disclosed
	publicJSON, err := json.MarshalIndent(input.Public, "", "  ")
	if nil != err {
		return err
	}
	err = ioutil.WriteFile(publicFileName, publicJSON, 0644)
	if nil != err {
		return err
	}

	if globals.verbose {
		fmt.Printf("n: %d\n", record.Count)
		fmt.Printf("wrote: %s (%d bytes)\n", outputFileName, inputrecord.TotalInputSize)
		fmt.Printf("wrote: %s\n", publicFileName)
	}

	return nil
}

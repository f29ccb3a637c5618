// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashchain/chain"
	"github.com/bitmark-inc/hashchain/inputrecord"
)

// evaluate a packed input record and print the public words
func runEvaluate(c *cli.Context, globals globalFlags) error {

	fileName := c.String("file")

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	result, err := chain.EvaluatePacked(inputrecord.PackedInput(data))
	if nil != err {
		return err
	}

	if globals.verbose {
		fmt.Printf("n: %d\n", result.Count)
		fmt.Printf("digest: %s\n", result.Digest)
	}

	chain.Emit(result.Digest, &chain.WriterSink{Writer: os.Stdout})

	return nil
}

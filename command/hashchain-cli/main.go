// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type globalFlags struct {
	verbose bool
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "hashchain-cli"
	app.Usage = "hash chain evaluator client"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "preprocess",
			Usage:     "assemble a packed input record from JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "input, i",
					Value: "input.json",
					Usage: " JSON input file",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "input.bin",
					Usage: " packed binary output file",
				},
				cli.StringFlag{
					Name:  "public, p",
					Value: "public.json",
					Usage: " public fields output file",
				},
			},
			Action: func(c *cli.Context) error {
				return runPreprocess(c, globals)
			},
		},
		{
			Name:      "run",
			Usage:     "evaluate a packed input record locally",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "input.bin",
					Usage: " packed binary input file",
				},
			},
			Action: func(c *cli.Context) error {
				return runEvaluate(c, globals)
			},
		},
		{
			Name:      "submit",
			Usage:     "submit a packed input record to a running hashchaind",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, x",
					Value: "",
					Usage: "*hashchaind submit endpoint, e.g. tcp://127.0.0.1:3130",
				},
				cli.StringFlag{
					Name:  "job, j",
					Value: "",
					Usage: " job identifier [file name]",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "input.bin",
					Usage: " packed binary input file",
				},
			},
			Action: func(c *cli.Context) error {
				return runSubmit(c, globals)
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

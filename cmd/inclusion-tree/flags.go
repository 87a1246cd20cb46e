/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package main

import "github.com/urfave/cli/v2"

const (
	flagConfig      = "config"
	flagInput       = "input"
	flagSorted      = "sorted"
	flagNoHeader    = "no-header"
	flagWorkers     = "workers"
	flagLogLevel    = "log-level"
	flagMetricsFile = "metrics-file"

	flagID    = "id"
	flagIndex = "index"
	flagOut   = "out"
	flagProof = "proof"
	flagRoot  = "root"
)

func getFlags() map[string]cli.Flag {
	return map[string]cli.Flag{
		flagConfig: &cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			EnvVars: []string{"TREE_CONFIG"},
			Usage:   "path to YAML configuration",
		},
		flagInput: &cli.StringFlag{
			Name:    flagInput,
			Aliases: []string{"i"},
			EnvVars: []string{"TREE_INPUT"},
			Usage:   "path to CSV with identifiers, will override value from config file",
		},
		flagSorted: &cli.BoolFlag{
			Name:  flagSorted,
			Usage: "sort identifiers before building the tree",
		},
		flagNoHeader: &cli.BoolFlag{
			Name:  flagNoHeader,
			Usage: "treat the first CSV row as data",
		},
		flagWorkers: &cli.IntFlag{
			Name:    flagWorkers,
			Aliases: []string{"w"},
			EnvVars: []string{"TREE_WORKERS"},
			Usage:   "number of hashing workers, 0 means GOMAXPROCS",
		},
		flagLogLevel: &cli.StringFlag{
			Name:    flagLogLevel,
			Aliases: []string{"l"},
			Usage:   "log level: trace, debug, info, warn, error",
		},
		flagMetricsFile: &cli.StringFlag{
			Name:  flagMetricsFile,
			Usage: "write prometheus metrics to this file on exit",
		},
		flagID: &cli.StringFlag{
			Name:  flagID,
			Usage: "identifier of the record to prove",
		},
		flagIndex: &cli.IntFlag{
			Name:  flagIndex,
			Usage: "leaf index of the record to prove",
		},
		flagOut: &cli.StringFlag{
			Name:    flagOut,
			Aliases: []string{"o"},
			Usage:   "write proof JSON to file instead of stdout",
		},
		flagProof: &cli.StringFlag{
			Name:     flagProof,
			Aliases:  []string{"p"},
			Usage:    "path to proof JSON",
			Required: true,
		},
		flagRoot: &cli.StringFlag{
			Name:    flagRoot,
			Aliases: []string{"r"},
			Usage:   "hex-encoded published root; defaults to the root inside the proof",
		},
	}
}

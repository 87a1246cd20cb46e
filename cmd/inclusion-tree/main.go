/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/Subhasish-Behera/enclave-inclusion/config"
	"github.com/Subhasish-Behera/enclave-inclusion/corelog"
	"github.com/Subhasish-Behera/enclave-inclusion/metrics"
	"github.com/Subhasish-Behera/enclave-inclusion/storage"
	"github.com/Subhasish-Behera/enclave-inclusion/types/merkletree"
)

func main() {
	app := NewApp(os.Stdout)
	if err := app.CLI().Run(os.Args); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type App struct {
	config  config.Config
	log     zerolog.Logger
	logs    *corelog.Backend
	metrics *metrics.TreeMetrics
	out     io.Writer
}

func NewApp(out io.Writer) *App {
	return &App{
		config:  config.Default(),
		log:     corelog.Disabled,
		metrics: metrics.NewTreeMetrics(),
		out:     out,
	}
}

func (app *App) CLI() *cli.App {
	flags := getFlags()
	return &cli.App{
		Name:   "inclusion-tree",
		Usage:  "build Merkle commitment trees and prove record inclusion",
		Writer: app.out,
		Flags: []cli.Flag{
			flags[flagConfig],
			flags[flagInput],
			flags[flagSorted],
			flags[flagNoHeader],
			flags[flagWorkers],
			flags[flagLogLevel],
			flags[flagMetricsFile],
		},
		Before: app.InitCfg,
		After:  app.Flush,
		Commands: []*cli.Command{
			{
				Name:   "root",
				Usage:  "build the tree and print its root",
				Action: app.RootCmd,
			},
			{
				Name:   "layers",
				Usage:  "print every layer of the tree",
				Action: app.LayersCmd,
			},
			{
				Name:   "prove",
				Usage:  "generate an inclusion proof by identifier or index",
				Flags:  []cli.Flag{flags[flagID], flags[flagIndex], flags[flagOut]},
				Action: app.ProveCmd,
			},
			{
				Name:   "verify",
				Usage:  "verify an inclusion proof",
				Flags:  []cli.Flag{flags[flagProof], flags[flagRoot]},
				Action: app.VerifyCmd,
			},
			{
				Name:   "dump",
				Usage:  "print the decoded structure of a proof",
				Flags:  []cli.Flag{flags[flagProof]},
				Action: app.DumpCmd,
			},
		},
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	if path := c.String(flagConfig); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		app.config = cfg
	}

	if c.IsSet(flagInput) {
		app.config.Input = c.String(flagInput)
	}
	if c.IsSet(flagSorted) {
		app.config.Sorted = c.Bool(flagSorted)
	}
	if c.IsSet(flagNoHeader) {
		app.config.HasHeader = !c.Bool(flagNoHeader)
	}
	if c.IsSet(flagWorkers) {
		app.config.Workers = c.Int(flagWorkers)
	}
	if c.IsSet(flagLogLevel) {
		app.config.LogLevel = c.String(flagLogLevel)
	}
	if c.IsSet(flagMetricsFile) {
		app.config.MetricsFile = c.String(flagMetricsFile)
	}

	if err := app.config.Validate(); err != nil {
		return cli.NewExitError(errors.Wrap(err, "invalid configuration"), 1)
	}

	level, _ := corelog.ParseLevel(app.config.LogLevel)
	app.logs = corelog.NewBackend(app.config.Log)
	app.log = app.logs.Logger("TREE", level)
	merkletree.UseLogger(app.logs.Logger("MKTR", level))
	storage.UseLogger(app.logs.Logger("STOR", level))
	return nil
}

// Flush writes the collected metrics when a metrics file is configured
// and closes the log file.
func (app *App) Flush(*cli.Context) error {
	if app.logs != nil {
		defer app.logs.Close()
	}

	if app.config.MetricsFile == "" {
		return nil
	}
	if err := app.metrics.WriteToTextfile(app.config.MetricsFile); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

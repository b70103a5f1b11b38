// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/getarg/configuration"
	"github.com/bitmark-inc/getarg/fault"
	"github.com/bitmark-inc/getarg/version"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	format  string
	logging bool
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "getarg"
	app.Usage = "parse options and query them by type"
	app.Version = version.Version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` (.lua .conf .yaml .yml .hcl)",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "",
			Usage: " output `FORMAT` [json|yaml|text]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:            "dump",
			Usage:           "display every option, value and argument",
			ArgsUsage:       "[OPTIONS...] [ARGUMENTS...]",
			SkipFlagParsing: true,
			Action:          runDump,
		},
		{
			Name:            "string",
			Usage:           "display an option as a string",
			ArgsUsage:       "KEY DEFAULT [OPTIONS...]",
			SkipFlagParsing: true,
			Action:          runString,
		},
		{
			Name:            "int",
			Usage:           "display an option as an integer",
			ArgsUsage:       "KEY DEFAULT [OPTIONS...]",
			SkipFlagParsing: true,
			Action:          runInt,
		},
		{
			Name:            "bool",
			Usage:           "display an option as a boolean",
			ArgsUsage:       "KEY DEFAULT [OPTIONS...]",
			SkipFlagParsing: true,
			Action:          runBool,
		},
		{
			Name:            "flag",
			Usage:           "display an option as a boolean that defaults to true",
			ArgsUsage:       "KEY [OPTIONS...]",
			SkipFlagParsing: true,
			Action:          runFlag,
		},
		{
			Name:            "report",
			Usage:           "display the options declared in the configuration",
			ArgsUsage:       "[OPTIONS...]",
			SkipFlagParsing: true,
			Action:          runReport,
		},
		{
			Name:  "version",
			Usage: "display getarg version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version.Version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		m := &metadata{
			file:    c.GlobalString("config"),
			config:  configuration.Default(),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "" != m.file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", m.file)
			}
			config, err := configuration.GetConfiguration(m.file)
			if nil != err {
				return err
			}
			m.config = config
		}

		m.format = m.config.Format
		if format := strings.ToLower(c.GlobalString("format")); "" != format {
			if !configuration.ValidFormat(format) {
				return fault.ErrInvalidFormat
			}
			m.format = format
		}

		if m.config.HasLogging() {
			if err := logger.Initialise(m.config.Logging.LoggerConfiguration()); nil != err {
				return err
			}
			if err := fault.Initialise(); nil != err {
				logger.Finalise()
				return err
			}
			m.logging = true
			m.log = logger.New("main")
			m.log.Info("starting…")
			m.log.Infof("version: %s", version.Version)
			m.log.Debugf("configuration: %+v", m.config)
		}

		if verbose {
			fmt.Fprintf(e, "format: %s\n", m.format)
			fmt.Fprintf(e, "aliases: %d\n", len(m.config.Aliases))
			fmt.Fprintf(e, "declared options: %d\n", len(m.config.Options))
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// stop logging
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.logging {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		m.logging = false
		return nil
	}

	return app
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/getarg/configuration"
	"github.com/bitmark-inc/getarg/fault"
	"github.com/bitmark-inc/getarg/getoptions"
	"github.com/bitmark-inc/getarg/templates"
)

// the flag lookup is a boolean without a default
const typeFlag = "flag"

type dumpResult struct {
	Options   map[string]string   `json:"options" yaml:"options"`
	Values    map[string][]string `json:"values" yaml:"values"`
	Arguments []string            `json:"arguments" yaml:"arguments"`
}

type lookupResult struct {
	Name  string      `json:"name" yaml:"name"`
	Type  string      `json:"type" yaml:"type"`
	Set   bool        `json:"set" yaml:"set"`
	Value interface{} `json:"value" yaml:"value"`
}

func runDump(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	table := newTable(m, c.Args())
	return printOutput(m.w, m.format, templates.DumpTemplate, dump(table))
}

func runString(c *cli.Context) error {
	return runLookup(c, configuration.TypeString)
}

func runInt(c *cli.Context) error {
	return runLookup(c, configuration.TypeInt)
}

func runBool(c *cli.Context) error {
	return runLookup(c, configuration.TypeBool)
}

func runFlag(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	args := c.Args()
	if len(args) < 1 {
		return fault.ErrMissingKey
	}

	table := newTable(m, args[1:])
	result, err := lookup(table, typeFlag, args[0], "")
	if nil != err {
		return err
	}
	return printOutput(m.w, m.format, templates.LookupTemplate, result)
}

func runLookup(c *cli.Context, valueType string) error {
	m := c.App.Metadata["config"].(*metadata)

	args := c.Args()
	if len(args) < 1 {
		return fault.ErrMissingKey
	}
	if len(args) < 2 {
		return fault.ErrMissingDefault
	}

	table := newTable(m, args[2:])
	result, err := lookup(table, valueType, args[0], args[1])
	if nil != err {
		return err
	}
	return printOutput(m.w, m.format, templates.LookupTemplate, result)
}

func runReport(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	table := newTable(m, c.Args())
	results, err := report(table, m.config.Options)
	if nil != err {
		return err
	}
	return printOutput(m.w, m.format, templates.ReportTemplate, results)
}

// parse the arguments with the configured aliases
func newTable(m *metadata, args []string) *getoptions.Table {
	var log *logger.L
	if m.logging {
		log = logger.New("getoptions")
	}
	table := getoptions.New(log, getoptions.AliasMap(m.config.Aliases))
	table.Parse(args)
	return table
}

func dump(table *getoptions.Table) *dumpResult {
	result := &dumpResult{
		Options:   table.Map(),
		Values:    make(map[string][]string),
		Arguments: table.Arguments(),
	}
	for _, key := range table.Keys() {
		result.Values[key] = table.Values(key)
	}
	return result
}

// a single typed lookup, the default is given as text
func lookup(r getoptions.Reader, valueType string, key string, defaultValue string) (*lookupResult, error) {
	if "" == key {
		return nil, fault.ErrMissingKey
	}

	result := &lookupResult{
		Name: key,
		Type: valueType,
		Set:  r.IsSet(key),
	}

	switch valueType {
	case configuration.TypeString:
		result.Value = r.GetString(key, defaultValue)

	case configuration.TypeInt:
		d, err := strconv.ParseInt(strings.TrimSpace(defaultValue), 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidDefault
		}
		result.Value = r.GetInt(key, d)

	case configuration.TypeBool:
		d, err := parseDefaultBool(defaultValue)
		if nil != err {
			return nil, err
		}
		result.Value = r.GetBool(key, d)

	case typeFlag:
		result.Value = r.Flag(key)

	default:
		return nil, fault.ErrInvalidOptionType
	}

	return result, nil
}

// evaluate the declared options, an empty default is the zero value
func report(r getoptions.Reader, options []configuration.OptionType) ([]*lookupResult, error) {
	results := make([]*lookupResult, 0, len(options))
	for _, o := range options {
		defaultValue := o.Default
		if "" == defaultValue && configuration.TypeString != o.Type {
			defaultValue = "0"
		}
		result, err := lookup(r, o.Type, o.Name, defaultValue)
		if nil != err {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func parseDefaultBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fault.ErrInvalidDefault
}

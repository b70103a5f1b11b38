// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/getarg/configuration"
	"github.com/bitmark-inc/getarg/fault"
)

// write message in the selected format, text uses the template
func printOutput(handle io.Writer, format string, text string, message interface{}) error {
	switch format {
	case configuration.FormatJSON:
		return printJson(handle, message)
	case configuration.FormatYAML:
		return printYaml(handle, message)
	case configuration.FormatText:
		return printText(handle, text, message)
	}
	return fault.ErrInvalidFormat
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fault.Criticalf("json marshal error: %s", err)
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func printYaml(handle io.Writer, message interface{}) error {

	b, err := yaml.Marshal(message)
	if nil != err {
		fault.Criticalf("yaml marshal error: %s", err)
		return err
	}

	_, err = handle.Write(b)
	return err
}

func printText(handle io.Writer, text string, message interface{}) error {
	t, err := template.New("output").Parse(text)
	if nil != err {
		return err
	}
	return t.Execute(handle, message)
}

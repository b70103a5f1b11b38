// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/getarg/configuration"
	"github.com/bitmark-inc/getarg/fault"
)

const luaConfig = `
local levels = { main = "debug" }
return {
  data_directory = ".",
  format = "YAML",
  logging = {
    directory = "logs",
    size = 2048,
    count = 3,
    levels = levels,
  },
  aliases = { ["-v"] = "-verbose" },
  options = {
    { name = "-verbose", type = "bool", default = "0" },
    { name = "-port", type = "INT", default = "2130" },
    { name = "-name" },
  },
}
`

const yamlConfig = `
format: text
logging:
  file: other.log
  console: true
options:
  - name: "-LILY"
    type: bool
    default: "1"
`

const hclConfig = `
format = "json"
aliases = {
  "-v" = "-verbose"
}
logging {
  count = 4
  levels = {
    main = "debug"
  }
}
option "-verbose" {
  type = "bool"
}
option "-name" {
  default = "none"
}
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := os.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write %s", name)
	return fileName
}

func TestLuaConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "getarg.conf", luaConfig)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "read configuration")

	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, configuration.FormatYAML, c.Format, "format")
	assert.Equal(t, filepath.Join(dir, "logs"), c.Logging.Directory, "log directory")
	assert.DirExists(t, c.Logging.Directory, "log directory created")
	assert.Equal(t, "getarg.log", c.Logging.File, "default log file")
	assert.Equal(t, 2048, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "debug", c.Logging.Levels["main"], "log level")
	assert.True(t, c.HasLogging(), "has logging")

	assert.Equal(t, map[string]string{"-v": "-verbose"}, c.Aliases, "aliases")

	expected := []configuration.OptionType{
		{Name: "-verbose", Type: "bool", Default: "0"},
		{Name: "-port", Type: "int", Default: "2130"},
		{Name: "-name", Type: "string", Default: ""},
	}
	assert.Equal(t, expected, c.Options, "options")
}

func TestYAMLConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "getarg.yaml", yamlConfig)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "read configuration")

	assert.Equal(t, configuration.FormatText, c.Format, "format")
	assert.Equal(t, "other.log", c.Logging.File, "log file")
	assert.True(t, c.Logging.Console, "console")
	assert.Equal(t, 10, c.Logging.Count, "default log count")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "default log directory")
	assert.Equal(t, map[string]string{}, c.Aliases, "no aliases")
	assert.Equal(t, []configuration.OptionType{{Name: "-LILY", Type: "bool", Default: "1"}}, c.Options, "options")
}

func TestHCLConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "getarg.hcl", hclConfig)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "read configuration")

	assert.Equal(t, configuration.FormatJSON, c.Format, "format")
	assert.Equal(t, 4, c.Logging.Count, "log count")
	assert.Equal(t, 1024*1024, c.Logging.Size, "default log size")
	assert.Equal(t, "debug", c.Logging.Levels["main"], "log level")
	assert.Equal(t, "info", c.Logging.Levels["getoptions"], "default log level kept")
	assert.Equal(t, map[string]string{"-v": "-verbose"}, c.Aliases, "aliases")

	expected := []configuration.OptionType{
		{Name: "-verbose", Type: "bool", Default: ""},
		{Name: "-name", Type: "string", Default: "none"},
	}
	assert.Equal(t, expected, c.Options, "options")
}

func TestConfigurationErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{"missing.lua", "", fault.ErrNotFoundConfigFile},
		{"bad.ini", "format = json", fault.ErrUnknownConfigFormat},
		{"format.yaml", "format: xml\n", fault.ErrInvalidFormat},
		{"type.yaml", "options:\n  - name: \"-x\"\n    type: float\n", fault.ErrInvalidOptionType},
		{"name.yaml", "options:\n  - type: int\n", fault.ErrMissingKey},
		{"result.lua", "return 42\n", fault.ErrUnmarshalFail},
	}

	for i, item := range tests {
		fileName := filepath.Join(dir, item.name)
		if "" != item.content {
			writeFile(t, dir, item.name, item.content)
		}
		_, err := configuration.GetConfiguration(fileName)
		assert.Equal(t, item.expected, err, "%d: %s", i, item.name)
	}
}

func TestLogFileMustBePlainName(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "getarg.yaml", "logging:\n  file: sub/getarg.log\n")

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "path accepted as log file")
}

func TestDefault(t *testing.T) {
	c := configuration.Default()
	assert.Equal(t, configuration.FormatJSON, c.Format, "format")
	assert.False(t, c.HasLogging(), "no logging")
	assert.Equal(t, 0, len(c.Options), "no options")
}

func TestLoggerConfiguration(t *testing.T) {
	l := configuration.LoggerType{
		Directory: "/tmp",
		File:      "x.log",
		Size:      1,
		Count:     2,
		Console:   true,
		Levels:    map[string]string{"main": "info"},
	}
	c := l.LoggerConfiguration()
	assert.Equal(t, l.Directory, c.Directory, "directory")
	assert.Equal(t, l.File, c.File, "file")
	assert.Equal(t, l.Size, c.Size, "size")
	assert.Equal(t, l.Count, c.Count, "count")
	assert.Equal(t, l.Console, c.Console, "console")
	assert.Equal(t, l.Levels, c.Levels, "levels")
}

func TestValid(t *testing.T) {
	assert.True(t, configuration.ValidFormat("yaml"), "yaml")
	assert.False(t, configuration.ValidFormat("YAML"), "case sensitive")
	assert.True(t, configuration.ValidType("int"), "int")
	assert.False(t, configuration.ValidType("float"), "float")
}

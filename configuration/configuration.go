// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/getarg/fault"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // the directory holding the configuration file
	defaultFormat        = FormatJSON

	defaultLogDirectory = "log"
	defaultLogFile      = "getarg.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// option value types
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeBool   = "bool"
)

// LoggerType - log file settings
type LoggerType struct {
	Directory string            `gluamapper:"directory" yaml:"directory" json:"directory"`
	File      string            `gluamapper:"file" yaml:"file" json:"file"`
	Size      int               `gluamapper:"size" yaml:"size" json:"size"`
	Count     int               `gluamapper:"count" yaml:"count" json:"count"`
	Console   bool              `gluamapper:"console" yaml:"console" json:"console"`
	Levels    map[string]string `gluamapper:"levels" yaml:"levels" json:"levels"`
}

// OptionType - an option reported by its declared type
type OptionType struct {
	Name    string `gluamapper:"name" yaml:"name" json:"name"`
	Type    string `gluamapper:"type" yaml:"type" json:"type"`
	Default string `gluamapper:"default" yaml:"default" json:"default"`
}

// Configuration - the complete tool configuration
type Configuration struct {
	DataDirectory string            `gluamapper:"data_directory" yaml:"data_directory" json:"data_directory"`
	Format        string            `gluamapper:"format" yaml:"format" json:"format"`
	Logging       LoggerType        `gluamapper:"logging" yaml:"logging" json:"logging"`
	Aliases       map[string]string `gluamapper:"aliases" yaml:"aliases" json:"aliases"`
	Options       []OptionType      `gluamapper:"options" yaml:"options" json:"options"`
}

// Default - configuration used when no file is given, logging is
// left unconfigured
func Default() *Configuration {
	return &Configuration{
		DataDirectory: ".",
		Format:        defaultFormat,
		Aliases:       map[string]string{},
		Options:       []OptionType{},
	}
}

// HasLogging - true if a log file is configured
func (c *Configuration) HasLogging() bool {
	return "" != c.Logging.File
}

// new map for each caller since decoders merge into existing maps
func defaultLogLevels() map[string]string {
	return map[string]string{
		"main":            "info",
		"getoptions":      "info",
		logger.DefaultTag: "critical",
	}
}

// LoggerConfiguration - convert to the logger's own structure
func (l LoggerType) LoggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: l.Directory,
		File:      l.File,
		Size:      l.Size,
		Count:     l.Count,
		Console:   l.Console,
		Levels:    l.Levels,
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Format:        defaultFormat,

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if nil == options.Aliases {
		options.Aliases = map[string]string{}
	}
	if nil == options.Options {
		options.Options = []OptionType{}
	}

	options.Format = strings.ToLower(options.Format)
	if !ValidFormat(options.Format) {
		return nil, fault.ErrInvalidFormat
	}

	for i := range options.Options {
		o := &options.Options[i]
		if "" == o.Name {
			return nil, fault.ErrMissingKey
		}
		if "" == o.Type {
			o.Type = TypeString
		}
		o.Type = strings.ToLower(o.Type)
		if !ValidType(o.Type) {
			return nil, fault.ErrInvalidOptionType
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = filepath.Clean(dataDirectory) // same directory as the configuration file
	} else if "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else {
		options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create the log directory if it does not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// ValidFormat - true for a known output format
func ValidFormat(format string) bool {
	switch format {
	case FormatJSON, FormatYAML, FormatText:
		return true
	}
	return false
}

// ValidType - true for a known option type
func ValidType(t string) bool {
	switch t {
	case TypeString, TypeInt, TypeBool:
		return true
	}
	return false
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

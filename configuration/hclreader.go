// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// HCL decodes blocks and labels, so it has its own layout:
//
//   format = "yaml"
//   logging {
//     levels = { main = "debug" }
//   }
//   option "-verbose" {
//     type    = "bool"
//     default = "0"
//   }
type hclLogging struct {
	Directory *string           `hcl:"directory,optional"`
	File      *string           `hcl:"file,optional"`
	Size      *int              `hcl:"size,optional"`
	Count     *int              `hcl:"count,optional"`
	Console   *bool             `hcl:"console,optional"`
	Levels    map[string]string `hcl:"levels,optional"`
}

type hclOption struct {
	Name    string `hcl:"name,label"`
	Type    string `hcl:"type,optional"`
	Default string `hcl:"default,optional"`
}

type hclConfiguration struct {
	DataDirectory *string           `hcl:"data_directory,optional"`
	Format        *string           `hcl:"format,optional"`
	Logging       *hclLogging       `hcl:"logging,block"`
	Aliases       map[string]string `hcl:"aliases,optional"`
	Options       []hclOption       `hcl:"option,block"`
}

func readHCL(fileName string, config *Configuration) error {
	var file hclConfiguration
	if err := hclsimple.DecodeFile(fileName, nil, &file); nil != err {
		return err
	}

	setString(&config.DataDirectory, file.DataDirectory)
	setString(&config.Format, file.Format)

	if l := file.Logging; nil != l {
		setString(&config.Logging.Directory, l.Directory)
		setString(&config.Logging.File, l.File)
		if nil != l.Size {
			config.Logging.Size = *l.Size
		}
		if nil != l.Count {
			config.Logging.Count = *l.Count
		}
		if nil != l.Console {
			config.Logging.Console = *l.Console
		}
		if nil == config.Logging.Levels {
			config.Logging.Levels = make(map[string]string)
		}
		for tag, level := range l.Levels {
			config.Logging.Levels[tag] = level
		}
	}

	if nil != file.Aliases {
		config.Aliases = file.Aliases
	}

	for _, o := range file.Options {
		config.Options = append(config.Options, OptionType{
			Name:    o.Name,
			Type:    o.Type,
			Default: o.Default,
		})
	}
	return nil
}

func setString(item *string, value *string) {
	if nil != value {
		*item = *value
	}
}

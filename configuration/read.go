// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/getarg/fault"
)

type reader func(fileName string, config *Configuration) error

var readers = map[string]reader{
	".lua":  readLua,
	".conf": readLua,
	".yaml": readYAML,
	".yml":  readYAML,
	".hcl":  readHCL,
}

// ParseConfigurationFile - read a file with the reader for its
// extension and overwrite the matching items in config
func ParseConfigurationFile(fileName string, config *Configuration) error {
	if nil == config {
		return fault.ErrInvalidStructPointer
	}

	read, ok := readers[strings.ToLower(filepath.Ext(fileName))]
	if !ok {
		return fault.ErrUnknownConfigFormat
	}

	if _, err := os.Stat(fileName); nil != err {
		if os.IsNotExist(err) {
			return fault.ErrNotFoundConfigFile
		}
		return err
	}

	return read(fileName, config)
}

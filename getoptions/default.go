// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"sync"

	"github.com/bitmark-inc/getarg/fault"
	"github.com/bitmark-inc/logger"
)

// the process-wide table
var globalData struct {
	sync.Mutex
	log   *logger.L
	table *Table

	// set once during initialise
	initialised bool
}

func init() {
	globalData.table = New(nil, nil)
}

// Initialise - attach a logger channel to the process-wide table
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("getoptions")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")
	globalData.table.SetLogger(globalData.log)

	globalData.initialised = true
	return nil
}

// Finalise - detach the logger channel
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.table.SetLogger(nil)
	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.log = nil

	globalData.initialised = false
	return nil
}

// Default - the process-wide table
func Default() *Table {
	return globalData.table
}

// ParseParameters - replace the process-wide table with the options
// from args, args must not include the program name
func ParseParameters(args []string) {
	globalData.table.Parse(args)
}

// IsSet - see Table.IsSet
func IsSet(key string) bool {
	return globalData.table.IsSet(key)
}

// GetString - see Table.GetString
func GetString(key string, defaultValue string) string {
	return globalData.table.GetString(key, defaultValue)
}

// GetInt - see Table.GetInt
func GetInt(key string, defaultValue int64) int64 {
	return globalData.table.GetInt(key, defaultValue)
}

// GetBool - see Table.GetBool
func GetBool(key string, defaultValue bool) bool {
	return globalData.table.GetBool(key, defaultValue)
}

// Flag - see Table.Flag
func Flag(key string) bool {
	return globalData.table.Flag(key)
}

// Values - see Table.Values
func Values(key string) []string {
	return globalData.table.Values(key)
}

// Arguments - see Table.Arguments
func Arguments() []string {
	return globalData.table.Arguments()
}

// SoftSet - see Table.SoftSet
func SoftSet(key string, value string) bool {
	return globalData.table.SoftSet(key, value)
}

// SoftSetBool - see Table.SoftSetBool
func SoftSetBool(key string, value bool) bool {
	return globalData.table.SoftSetBool(key, value)
}

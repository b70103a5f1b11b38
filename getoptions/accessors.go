// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"sort"
)

// Reader - typed read access to an option table
type Reader interface {
	IsSet(key string) bool
	GetString(key string, defaultValue string) string
	GetInt(key string, defaultValue int64) int64
	GetBool(key string, defaultValue bool) bool
	Flag(key string) bool
}

// ensure Table satisfies the interface
var _ Reader = (*Table)(nil)

// the shared lookup
func (t *Table) lookup(key string) (string, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	value, ok := t.values[key]
	return value, ok
}

// IsSet - true if the key was given, even with an empty value
func (t *Table) IsSet(key string) bool {
	_, ok := t.lookup(key)
	return ok
}

// GetString - the stored value, an empty value is still returned as
// empty; defaultValue only when the key is absent
func (t *Table) GetString(key string, defaultValue string) string {
	if value, ok := t.lookup(key); ok {
		return value
	}
	return defaultValue
}

// GetInt - leading decimal number of the stored value, zero if it has
// none; defaultValue only when the key is absent
func (t *Table) GetInt(key string, defaultValue int64) int64 {
	if value, ok := t.lookup(key); ok {
		return atoi64(value)
	}
	return defaultValue
}

// GetBool - a bare flag is true, "0" is false, any other value is
// true; defaultValue only when the key is absent
func (t *Table) GetBool(key string, defaultValue bool) bool {
	if value, ok := t.lookup(key); ok {
		return isTrue(value)
	}
	return defaultValue
}

// Flag - GetBool with a default of true
func (t *Table) Flag(key string) bool {
	return t.GetBool(key, true)
}

// Values - every value given to key in argument order
func (t *Table) Values(key string) []string {
	t.lock.RLock()
	defer t.lock.RUnlock()
	values := t.multi[key]
	if nil == values {
		return nil
	}
	result := make([]string, len(values))
	copy(result, values)
	return result
}

// Keys - sorted list of the option keys present
func (t *Table) Keys() []string {
	t.lock.RLock()
	keys := make([]string, 0, len(t.values))
	for key := range t.values {
		keys = append(keys, key)
	}
	t.lock.RUnlock()
	sort.Strings(keys)
	return keys
}

// Map - copy of the key to last value mapping
func (t *Table) Map() map[string]string {
	t.lock.RLock()
	defer t.lock.RUnlock()
	result := make(map[string]string, len(t.values))
	for key, value := range t.values {
		result[key] = value
	}
	return result
}

// Arguments - the items that followed the options
func (t *Table) Arguments() []string {
	t.lock.RLock()
	defer t.lock.RUnlock()
	result := make([]string, len(t.arguments))
	copy(result, t.arguments)
	return result
}

// SoftSet - set key only if it is absent, returns true if it was set
func (t *Table) SoftSet(key string, value string) bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	if _, ok := t.values[key]; ok {
		return false
	}
	t.values[key] = value
	t.multi[key] = append(t.multi[key], value)
	if nil != t.log {
		t.log.Debugf("soft set: %q = %q", key, value)
	}
	return true
}

// SoftSetBool - SoftSet with "1" for true and "0" for false
func (t *Table) SoftSetBool(key string, value bool) bool {
	if value {
		return t.SoftSet(key, "1")
	}
	return t.SoftSet(key, "0")
}

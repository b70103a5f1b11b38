// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/getarg/getoptions"
)

func TestGetIntConversion(t *testing.T) {
	tests := []struct {
		value    string
		expected int64
	}{
		{"11", 11},
		{" 42", 42},
		{"\t-7", -7},
		{"+8", 8},
		{"12abc", 12},
		{"1.5", 1},
		{"0x10", 0},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"- 3", 0},
		{"9223372036854775807", math.MaxInt64},
		{"9223372036854775808", math.MaxInt64},
		{"99999999999999999999", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
		{"-99999999999999999999", math.MinInt64},
	}

	table := getoptions.New(nil, nil)
	for i, item := range tests {
		table.Parse([]string{"-n=" + item.value})
		assert.Equal(t, item.expected, table.GetInt("-n", 99), "%d: %q", i, item.value)
	}
}

func TestGetBoolConversion(t *testing.T) {
	tests := []struct {
		args     []string
		expected bool
	}{
		{[]string{"-b"}, true},
		{[]string{"-b="}, true},
		{[]string{"-b=0"}, false},
		{[]string{"-b=1"}, true},
		{[]string{"-b=00"}, true},
		{[]string{"-b=false"}, true},
		{[]string{"-b=no"}, true},
	}

	table := getoptions.New(nil, nil)
	for i, item := range tests {
		table.Parse(item.args)
		assert.Equal(t, item.expected, table.GetBool("-b", !item.expected), "%d: %v", i, item.args)
	}
}

func TestAbsentUsesDefault(t *testing.T) {
	table := getoptions.New(nil, nil)
	table.Parse([]string{"-present=1"})

	for _, key := range []string{"-absent", "absent", "", "--present"} {
		assert.Equal(t, "d", table.GetString(key, "d"), "string %q", key)
		assert.Equal(t, int64(-3), table.GetInt(key, -3), "int %q", key)
		assert.False(t, table.GetBool(key, false), "bool %q", key)
		assert.True(t, table.GetBool(key, true), "bool %q", key)
		assert.True(t, table.Flag(key), "flag %q", key)
		assert.False(t, table.IsSet(key), "is set %q", key)
	}
}

func TestSoftSet(t *testing.T) {
	table := getoptions.New(nil, nil)
	table.Parse([]string{"-a=1"})

	assert.False(t, table.SoftSet("-a", "2"), "present key not replaced")
	assert.Equal(t, "1", table.GetString("-a", ""), "present key value")

	assert.True(t, table.SoftSet("-b", "2"), "absent key set")
	assert.Equal(t, "2", table.GetString("-b", ""), "soft value")
	assert.Equal(t, []string{"2"}, table.Values("-b"), "soft value recorded")

	assert.True(t, table.SoftSetBool("-c", false), "absent bool set")
	assert.False(t, table.GetBool("-c", true), "soft false")
	assert.False(t, table.SoftSetBool("-c", true), "second soft set ignored")

	assert.True(t, table.SoftSetBool("-d", true), "absent bool set")
	assert.Equal(t, "1", table.GetString("-d", ""), "soft true")

	table.Parse([]string{})
	assert.False(t, table.IsSet("-b"), "soft values discarded by parse")
}

func TestCopiesAreIndependent(t *testing.T) {
	table := getoptions.New(nil, nil)
	table.Parse([]string{"-a=1", "-a=2", "arg"})

	m := table.Map()
	assert.Equal(t, map[string]string{"-a": "2"}, m, "map")
	m["-a"] = "changed"
	assert.Equal(t, "2", table.GetString("-a", ""), "map is a copy")

	values := table.Values("-a")
	values[0] = "changed"
	assert.Equal(t, []string{"1", "2"}, table.Values("-a"), "values are a copy")

	arguments := table.Arguments()
	arguments[0] = "changed"
	assert.Equal(t, []string{"arg"}, table.Arguments(), "arguments are a copy")
}

func TestTableIsReader(t *testing.T) {
	var r getoptions.Reader = getoptions.New(nil, nil)
	assert.True(t, r.Flag("-x"), "reader flag default")
}

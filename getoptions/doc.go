// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package getoptions - command-line option table
//
// Parses options of the forms:
//   -option               - bare flag, value is the empty string
//   -option=value         - set value
//   --option              - same as -option
//   --option=value        - same as -option=value
//   -nooption             - same as -option=0 unless -option is given
//   -nooption=0           - same as -option=1 unless -option is given
//
// Note:
//   Option processing stops at the first item that does not start
//   with "-"; it and everything after it are the arguments.
//   Keys are stored with a single leading dash, so both "-v" and
//   "--v" are looked up as "-v".
//   Repeated options keep the last value, all values are available
//   from Values() in the order given.
//
// Alias table:
//   This allows the option to be aliased e.g. -v -> -verbose
//
// Lookups never fail:
//   GetString             - value or default if absent
//   GetInt                - leading decimal digits, zero if none
//   GetBool               - "0" is false, anything else is true
package getoptions

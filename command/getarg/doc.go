// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// getarg - parse options and query them by type
//
// everything after the sub-command is handed to the option table
// unchanged, e.g.
//
//   getarg int -port 2130 -port=8080 -verbose
//   getarg --format=yaml dump -LILY --noBAR file.txt
//   getarg --config=getarg.conf report -verbose=0
package main

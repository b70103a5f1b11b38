// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the getarg tool configuration file
//
// the reader is selected by file extension:
//   .lua .conf   - Lua script returning a table, most of base Lua is
//                  available such as getenv to extract environment
//                  supplied items
//   .yaml .yml   - YAML document
//   .hcl         - HCL native syntax
package configuration

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"math"
)

// leading decimal number: optional white space, optional sign, then
// digits up to the first non-digit; saturates at the int64 limits
func atoi64(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i += 1
	}

	negative := false
	if i < len(s) && ('+' == s[i] || '-' == s[i]) {
		negative = '-' == s[i]
		i += 1
	}

	limit := uint64(math.MaxInt64)
	if negative {
		limit += 1
	}

	n := uint64(0)
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i += 1 {
		d := uint64(s[i] - '0')
		if n > (limit-d)/10 {
			n = limit
			break
		}
		n = n*10 + d
	}

	if !negative {
		return int64(n)
	}
	if n == limit {
		return math.MinInt64
	}
	return -int64(n)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// only "0" is false
func isTrue(s string) bool {
	return "0" != s
}

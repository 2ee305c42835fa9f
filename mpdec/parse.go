// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package mpdec

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/shuffledb/recordcmp/mpint"
)

// ErrExponentOutOfRange is returned by ParseDecimal when the literal's
// exponent does not fit in an int32.
var ErrExponentOutOfRange = errors.New("exponent out of range")

// ParseDecimal parses a base-10 literal such as "123.45" or "-6.02e23" into
// a Decimal, choosing CompactDec when the unsigned significand fits in a
// uint64 and BigDec otherwise. This mirrors the scanning approach of the
// teacher's own string parser: split off an optional exponent marker, then
// fold a decimal point into the scale, then parse the remaining digits as
// an unsigned magnitude. The sign is returned separately as -1 or +1; a
// zero magnitude is always returned with sign +1, so "-0" parses as zero.
//
// ParseDecimal is not on the comparator's hot path: it exists for tests,
// benchmarks, and the dispatcher harness to build decimals from readable
// literals, and unlike the comparison functions it allocates and returns
// an error.
func ParseDecimal(s string) (Decimal, int, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return nil, 0, errors.Wrapf(err, "parse exponent: %s", s[i+1:])
		}
		exp = e
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		exp -= len(s) - i - 1
		s = s[:i] + s[i+1:]
	}
	if exp > math.MaxInt32 || exp < math.MinInt32 {
		return nil, 0, ErrExponentOutOfRange
	}
	if s == "" {
		s = "0"
	}

	sign := 1
	if neg {
		sign = -1
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		if v == 0 {
			sign = 1
		}
		return NewCompactDec(v, int32(exp)), sign, nil
	}
	b := mpint.FromBytesBE(decimalDigitsToBigEndian(s))
	return NewBigDec(b, int32(exp)), sign, nil
}

// decimalDigitsToBigEndian converts a base-10 digit string into the
// minimal big-endian unsigned magnitude mpint.FromBytesBE expects, without
// depending on math/big.
func decimalDigitsToBigEndian(digits string) []byte {
	// Repeated divide-by-256 over a decimal digit buffer; small literals
	// only, so this need not be fast.
	buf := make([]byte, len(digits))
	for i, c := range digits {
		buf[i] = byte(c - '0')
	}
	var out []byte
	for len(buf) > 0 && !allZero(buf) {
		var rem int
		for i, d := range buf {
			cur := rem*10 + int(d)
			buf[i] = byte(cur / 256)
			rem = cur % 256
		}
		out = append(out, byte(rem))
		for len(buf) > 0 && buf[0] == 0 {
			buf = buf[1:]
		}
	}
	// out is little-endian; reverse to big-endian.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func allZero(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}
	return true
}

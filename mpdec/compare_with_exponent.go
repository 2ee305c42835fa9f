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

import "github.com/shuffledb/recordcmp/mpint"

// Debug turns on internal invariant checks specific to this package (the
// bit-length prefilter's monotonicity against the materialized product).
// Off by default; set to true from a test's TestMain.
var Debug = false

func assert(cond bool, msg string) {
	if Debug && !cond {
		panic("mpdec: " + msg)
	}
}

// compareWithExponentU64U64 returns the Sign of a - b*10^exponent, without
// ever materializing b*10^exponent: a/10^exponent <=> b, with a remainder
// check breaking ties, is equivalent and stays inside a machine word.
func compareWithExponentU64U64(a, b uint64, exponent uint32) Sign {
	if a == 0 || b == 0 {
		return mpint.CompareUint64(a, b)
	}
	if int(exponent) < len(mpint.CompactPowersOfTen) {
		s := mpint.CompactPowersOfTen[exponent]
		div, mod := a/s, a%s
		if d := mpint.CompareUint64(div, b); d != EqualTo {
			return d
		}
		return mpint.CompareUint64(mod, 0)
	}
	// 10^exponent >= 2^64 > a, and b >= 1, so a < b*10^exponent always.
	return LessThan
}

// compareWithExponentU64Big returns the Sign of a - b*10^exponent, where b
// may exceed 64 bits once scaled.
func compareWithExponentU64Big(a uint64, b mpint.BigUInt, exponent uint32) Sign {
	if a == 0 {
		if b.IsZero() {
			return EqualTo
		}
		return LessThan
	}
	if b.IsZero() {
		return GreaterThan
	}
	if int(exponent) < len(mpint.CompactPowersOfTen) {
		s := mpint.CompactPowersOfTen[exponent]
		div, mod := a/s, a%s
		if d := b.CompareUint64(div).Negate(); d != EqualTo {
			return d
		}
		return mpint.CompareUint64(mod, 0)
	}
	return LessThan
}

// compareWithExponentBigU64 returns the Sign of a - b*10^exponent, reducing
// to the BigUInt/BigUInt form since the exponent may inflate b beyond 64
// bits.
func compareWithExponentBigU64(a mpint.BigUInt, b uint64, exponent uint32) Sign {
	if a.IsZero() {
		return mpint.CompareUint64(0, b)
	}
	if b == 0 {
		return GreaterThan
	}
	return compareWithExponentBigBig(a, mpint.FromUint64(b), exponent)
}

// bitLenRange estimates the bit-length range of significand*10^exponent
// without constructing the product: log2(10) is between 3.3 and 10/3, and a
// product of m-bit and n-bit positive integers has either (m+n-1) or (m+n)
// bits.
func bitLenRange(significand mpint.BigUInt, exponent uint32) (lo, hi int) {
	if significand.IsZero() {
		return 0, 0
	}
	bits := significand.Bits()
	lo = bits + int(exponent*33/10) - 1
	hi = bits + int((exponent*10+2)/3)
	return lo, hi
}

// compareWithExponentBigBig returns the Sign of a - b*10^exponent.
func compareWithExponentBigBig(a, b mpint.BigUInt, exponent uint32) Sign {
	if exponent == 0 {
		return a.Compare(b)
	}
	if a.IsZero() {
		if b.IsZero() {
			return EqualTo
		}
		return LessThan
	}
	if b.IsZero() {
		return GreaterThan
	}
	aBits := a.Bits()
	lo, hi := bitLenRange(b, exponent)
	if aBits < lo {
		return LessThan
	}
	if aBits > hi {
		return GreaterThan
	}
	var scaled mpint.BigUInt
	if exponent <= 9 {
		// 10^9 < 2^32, fits a plain word multiply.
		scaled = b.MulUint32(uint32(mpint.CompactPowersOfTen[exponent]))
	} else {
		scaled = b.Mul(mpint.PowerOfTen(exponent))
	}
	assert(scaled.Bits() >= lo-1 && scaled.Bits() <= hi+1, "bit-length prefilter range disagreed with materialized product")
	return a.Compare(scaled)
}
